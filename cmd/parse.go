/*
Copyright © 2025 Ambor <saltbo@foxmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/eslsoft/conlang/internal/lexparse"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Check and normalize lexicon, affix and derived-word text blocks",
}

// parseKinds maps each subcommand to its parser and canonical formatter.
var parseKinds = []struct {
	use, short string
	parse      func(string) (any, string)
}{
	{"lexicon", fmt.Sprintf("Parse %q lines", lexparse.LexiconHint), func(text string) (any, string) {
		entries := lexparse.ParseLexicon(text)
		return entries, lexparse.FormatLexicon(entries)
	}},
	{"affixes", fmt.Sprintf("Parse %q lines", lexparse.AffixHint), func(text string) (any, string) {
		affixes := lexparse.ParseAffixes(text)
		return affixes, lexparse.FormatAffixes(affixes)
	}},
	{"derived", fmt.Sprintf("Parse %q lines", lexparse.DerivedWordHint), func(text string) (any, string) {
		derived := lexparse.ParseDerivedWords(text)
		return derived, lexparse.FormatDerivedWords(derived)
	}},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	for _, kind := range parseKinds {
		sub := &cobra.Command{
			Use:   kind.use,
			Short: kind.short,
			RunE: func(cmd *cobra.Command, args []string) error {
				text, err := readParseInput(cmd)
				if err != nil {
					return err
				}
				parsed, canonical := kind.parse(text)
				if asYAML, _ := cmd.Flags().GetBool("yaml"); asYAML {
					out, err := yaml.Marshal(parsed)
					if err != nil {
						return fmt.Errorf("encode yaml: %w", err)
					}
					cmd.Print(string(out))
					return nil
				}
				cmd.Print(canonical)
				return nil
			},
		}
		sub.Flags().StringP("file", "f", "", "read from this file instead of stdin")
		sub.Flags().Bool("yaml", false, "print the parsed rows as YAML")
		parseCmd.AddCommand(sub)
	}
}

func readParseInput(cmd *cobra.Command) (string, error) {
	path, _ := cmd.Flags().GetString("file")
	if path == "" || path == "-" {
		return argsOrStdin(cmd, nil)
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}
