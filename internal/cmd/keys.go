package cmd

import (
	"fmt"

	"github.com/renato0307/chord/internal/keys"
)

// KeysCmd prints the key vocabulary
type KeysCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

type vocabularyEntry struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}

type vocabulary struct {
	FunctionKeys []vocabularyEntry `json:"function_keys"`
	Modifiers    []vocabularyEntry `json:"modifiers"`
	NamedKeys    []vocabularyEntry `json:"named_keys"`
}

// Run executes the keys command
func (k *KeysCmd) Run(cli *CLI) error {
	v := vocabulary{
		FunctionKeys: toVocabulary(keys.FunctionKeys()),
		NamedKeys:    toVocabulary(keys.NamedKeys()),
	}
	for _, m := range keys.Modifiers() {
		v.Modifiers = append(v.Modifiers, vocabularyEntry{Code: int(m.Modifier), Name: m.Name})
	}

	if k.Format == "json" {
		return printJSON(v)
	}

	for _, section := range []struct {
		title   string
		entries []vocabularyEntry
	}{
		{"Named keys", v.NamedKeys},
		{"Function keys", v.FunctionKeys},
		{"Modifiers", v.Modifiers},
	} {
		fmt.Fprintf(stdout, "%s\n\n", section.title)
		rows := make([][]string, len(section.entries))
		for i, e := range section.entries {
			rows[i] = []string{e.Name, fmt.Sprintf("%d", e.Code)}
		}
		printTable([]string{"Name", "Code"}, rows)
		fmt.Fprintln(stdout)
	}

	fmt.Fprintln(stdout, "Any other single character resolves to its uppercase code point.")
	return nil
}

func toVocabulary(entries []keys.Entry) []vocabularyEntry {
	out := make([]vocabularyEntry, len(entries))
	for i, e := range entries {
		out[i] = vocabularyEntry{Code: int(e.Code), Name: e.Name}
	}
	return out
}
