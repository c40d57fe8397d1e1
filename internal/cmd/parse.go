package cmd

import (
	"fmt"

	"github.com/renato0307/chord/internal/keys"
	"github.com/renato0307/chord/internal/shortcut"
)

// ParseCmd shows how a shortcut description is parsed
type ParseCmd struct {
	Description string `arg:"" help:"Shortcut description (e.g. 'ctrl+s, cmd+s')"`
	Format      string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

type parsedCombination struct {
	Code      int      `json:"code"`
	Key       string   `json:"key"`
	Modifiers []string `json:"modifiers"`
	Resolved  bool     `json:"resolved"`
	Source    string   `json:"source"`
}

// Run executes the parse command
func (p *ParseCmd) Run(cli *CLI) error {
	combos := shortcut.Parse(p.Description)

	parsed := make([]parsedCombination, len(combos))
	for i, c := range combos {
		mods := make([]string, 0, c.Modifiers.Len())
		for _, m := range c.Modifiers.Modifiers() {
			mods = append(mods, m.String())
		}
		parsed[i] = parsedCombination{
			Code:      int(c.Key),
			Key:       keys.Name(c.Key),
			Modifiers: mods,
			Resolved:  c.Resolved(),
			Source:    c.Source,
		}
	}

	if p.Format == "json" {
		return printJSON(parsed)
	}

	rows := make([][]string, len(parsed))
	for i, c := range parsed {
		mods := combos[i].Modifiers.String()
		if mods == "" {
			mods = "-"
		}
		resolved := "yes"
		if !c.Resolved {
			resolved = "no (never matches)"
		}
		rows[i] = []string{c.Source, c.Key, fmt.Sprintf("%d", c.Code), mods, resolved}
	}
	printTable([]string{"Segment", "Key", "Code", "Modifiers", "Resolved"}, rows)

	if err := shortcut.Validate(p.Description); err != nil {
		fmt.Fprintf(stdout, "\nWarning: %v\n", err)
	}
	return nil
}
