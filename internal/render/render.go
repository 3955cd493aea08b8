// Package render formats context listings, switch confirmations and
// diagnostics. Formatting never changes what an operation did; callers
// decide per stream whether color is in play.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/term"

	"kctx-cli/internal/config"
)

// Markers prepended to context names in listings.
const (
	MarkerCurrent = "●"
	MarkerLast    = "◌"
)

// ContextEntry is one row of the context listing.
type ContextEntry struct {
	Name    string `json:"name" yaml:"name"`
	Current bool   `json:"current" yaml:"current"`
	Last    bool   `json:"last" yaml:"last"`
	Env     string `json:"env,omitempty" yaml:"env,omitempty"`
}

// FormatMarker composes the marker cell for a context line. A context can
// be both current and last, in which case both markers show.
func FormatMarker(current, last bool) string {
	var parts []string

	if current {
		parts = append(parts, MarkerCurrent)
	}
	if last {
		parts = append(parts, MarkerLast)
	}

	return strings.Join(parts, " ")
}

func tierColor(tier config.Tier) *color.Color {
	switch tier {
	case config.TierProd:
		return color.New(color.FgRed)
	case config.TierDev:
		return color.New(color.FgGreen)
	case config.TierStage:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgCyan)
	}
}

// FormatEnvLabel renders an environment label as "[env]", colored by tier
// when useColor is set.
func FormatEnvLabel(env string, useColor bool) string {
	c := tierColor(config.TierFor(env))
	if useColor {
		c.EnableColor()
	} else {
		c.DisableColor()
	}

	return c.Sprint("[" + env + "]")
}

// FormatSwitchResult renders the confirmation line printed after a
// successful switch: the env label when one is configured, then the name.
func FormatSwitchResult(name, env string, useColor bool) string {
	if env == "" {
		return name
	}

	return FormatEnvLabel(env, useColor) + " " + name
}

// FormatProdWarning renders the warning emitted when a switch lands on a
// production-labeled context.
func FormatProdWarning(name, env string, useColor bool) string {
	return fmt.Sprintf("WARNING: context %q is labeled %s", name, FormatEnvLabel(env, useColor))
}

// WriteContextList writes one line per context: marker, env label, name,
// in the order the entries arrive.
func WriteContextList(w io.Writer, entries []ContextEntry, useColor bool) {
	table := tablewriter.NewWriter(w)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetRowSeparator("")
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)

	for _, entry := range entries {
		label := ""
		if entry.Env != "" {
			label = FormatEnvLabel(entry.Env, useColor)
		}

		table.Append([]string{FormatMarker(entry.Current, entry.Last), label, entry.Name})
	}

	table.Render()
}

// Interactive reports whether w is attached to a terminal.
func Interactive(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

// PrintError prints an error message to stderr with consistent formatting.
func PrintError(err error) {
	red := color.New(color.FgRed)
	if config.Global.ColorsEnabled && Interactive(os.Stderr) {
		red.EnableColor()
	} else {
		red.DisableColor()
	}

	fmt.Fprintf(os.Stderr, "%s %v\n", red.Sprint("Error:"), err)
}
