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
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/eslsoft/conlang/internal/app"
	"github.com/spf13/cobra"
)

var translateCmd = &cobra.Command{
	Use:   "translate [text]",
	Short: "Substitute lexicon words into English text",
	Long: `translate replaces whole words found in the lexicon and leaves the rest as is.
Without --language the built-in sample lexicon is used. Text is read from stdin
when no argument is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		showLexicon, _ := cmd.Flags().GetBool("lexicon")
		return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
			if ref, _ := cmd.Flags().GetString("language"); ref != "" {
				lang, err := c.Profiles.Get(ctx, ref)
				if err != nil {
					return err
				}
				if err := c.Translator.LoadLexicon(ctx, lang.ID, lang.Lexicon); err != nil {
					return err
				}
			}

			if showLexicon {
				var rows [][]string
				for _, e := range c.Translator.Lexicon() {
					rows = append(rows, []string{e.Source, e.Target, e.Notes})
				}
				cmd.Println(renderTable([]string{"ENGLISH", "CONLANG", "NOTES"}, rows))
				return nil
			}

			text, err := argsOrStdin(cmd, args)
			if err != nil {
				return err
			}
			out, err := c.Translator.Translate(text)
			if err != nil {
				return err
			}
			cmd.Println(out)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(translateCmd)
	translateCmd.Flags().StringP("language", "l", "", "translate with this language's lexicon")
	translateCmd.Flags().Bool("lexicon", false, "print the active lexicon instead of translating")
}

// argsOrStdin joins the positional arguments, falling back to the whole of stdin.
func argsOrStdin(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
