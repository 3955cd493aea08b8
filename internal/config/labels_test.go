package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func tempPaths(t *testing.T) Paths {
	t.Helper()

	base := t.TempDir()

	return Paths{
		BaseDir:    base,
		StateFile:  filepath.Join(base, "state.json"),
		ConfigFile: filepath.Join(base, "config.toml"),
	}
}

func TestLoadLabelsMissingFile(t *testing.T) {
	paths := tempPaths(t)
	require.Empty(t, LoadLabels(paths))
}

func TestLoadLabelsInvalidTOML(t *testing.T) {
	paths := tempPaths(t)
	require.NoError(t, os.WriteFile(paths.ConfigFile, []byte("[contexts\nenv ="), 0o644))
	require.Empty(t, LoadLabels(paths))
}

func TestLoadLabelsContextsNotTable(t *testing.T) {
	paths := tempPaths(t)
	require.NoError(t, os.WriteFile(paths.ConfigFile, []byte(`contexts = "oops"`), 0o644))
	require.Empty(t, LoadLabels(paths))
}

func TestLoadLabelsSkipsMalformedEntries(t *testing.T) {
	paths := tempPaths(t)

	raw := `
[contexts]
plain = "not a table"

[contexts.noenv]
region = "us-east-1"

[contexts.badenv]
env = 42

[contexts.good]
env = "prod"
`
	require.NoError(t, os.WriteFile(paths.ConfigFile, []byte(raw), 0o644))

	labels := LoadLabels(paths)
	require.Equal(t, LabelTable{"good": "prod"}, labels)
}

func TestLoadLabelsPreservesCase(t *testing.T) {
	paths := tempPaths(t)

	raw := `
[contexts."Prod-EU-1"]
env = "Prod"

[contexts.minikube]
env = "dev"
`
	require.NoError(t, os.WriteFile(paths.ConfigFile, []byte(raw), 0o644))

	labels := LoadLabels(paths)

	env, ok := labels.Env("Prod-EU-1")
	require.True(t, ok)
	require.Equal(t, "Prod", env)

	_, ok = labels.Env("prod-eu-1")
	require.False(t, ok)

	env, ok = labels.Env("minikube")
	require.True(t, ok)
	require.Equal(t, "dev", env)
}

func TestTierFor(t *testing.T) {
	cases := map[string]Tier{
		"prod":        TierProd,
		"PROD":        TierProd,
		"Prod":        TierProd,
		"dev":         TierDev,
		"development": TierDev,
		"stage":       TierStage,
		"staging":     TierStage,
		"Staging":     TierStage,
		"production":  TierOther,
		"qa":          TierOther,
		"":            TierOther,
	}

	for env, want := range cases {
		require.Equal(t, want, TierFor(env), "env %q", env)
	}
}
