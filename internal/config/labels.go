package config

import (
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Environment tiers, ordered by how loudly the CLI should call them out.
type Tier int

const (
	TierOther Tier = iota
	TierDev
	TierStage
	TierProd
)

// TierFor maps an environment label to its tier. Matching is
// case-insensitive on the whole label; unknown labels land in TierOther.
func TierFor(env string) Tier {
	switch strings.ToLower(env) {
	case "prod":
		return TierProd
	case "dev", "development":
		return TierDev
	case "stage", "staging":
		return TierStage
	default:
		return TierOther
	}
}

// LabelTable maps context names to their environment labels as declared in
// the [contexts] section of config.toml. Lookups are case-sensitive because
// kubectl context names are.
type LabelTable map[string]string

// Env returns the label for a context and whether one is configured.
func (t LabelTable) Env(name string) (string, bool) {
	env, ok := t[name]
	return env, ok
}

// LoadLabels reads the label table from config.toml. A missing file,
// unparseable TOML or a malformed [contexts] section all yield an empty
// table; labels are advisory and must never block a context operation.
// Entries whose shape is wrong (a non-table value, or a missing or
// non-string env key) are skipped individually.
func LoadLabels(paths Paths) LabelTable {
	labels := LabelTable{}

	raw, err := os.ReadFile(paths.ConfigFile)
	if err != nil {
		return labels
	}

	var data map[string]interface{}
	if err := toml.Unmarshal(raw, &data); err != nil {
		return labels
	}

	contexts, ok := data["contexts"].(map[string]interface{})
	if !ok {
		return labels
	}

	for name, value := range contexts {
		entry, ok := value.(map[string]interface{})
		if !ok {
			continue
		}
		env, ok := entry["env"].(string)
		if !ok {
			continue
		}
		labels[name] = env
	}

	return labels
}
