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
	"bufio"
	"context"
	"strings"

	"github.com/eslsoft/conlang/internal/app"
	"github.com/eslsoft/conlang/internal/naming"
	"github.com/eslsoft/conlang/internal/phonology"
	"github.com/spf13/cobra"
)

var clustersCmd = &cobra.Command{
	Use:   "clusters <consonant>...",
	Short: "List the two-consonant clusters a wizard would offer",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		consonants := strings.Fields(strings.Join(args, " "))
		withSingles, _ := cmd.Flags().GetBool("with-singles")
		options := phonology.GenerateClusters(consonants)
		if withSingles {
			options = phonology.PositionOptions(consonants)
		}
		for _, c := range options {
			cmd.Println(c)
		}
		return nil
	},
}

var ipaCmd = &cobra.Command{
	Use:   "ipa [text]",
	Short: "Convert Latin orthography to IPA; reads stdin line by line without arguments",
	RunE: func(cmd *cobra.Command, args []string) error {
		showHistory, _ := cmd.Flags().GetBool("history")
		return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
			if len(args) > 0 {
				cmd.Println(c.Converter.Convert(strings.Join(args, " ")))
			} else {
				scanner := bufio.NewScanner(cmd.InOrStdin())
				for scanner.Scan() {
					if strings.TrimSpace(scanner.Text()) == "" {
						continue
					}
					cmd.Println(c.Converter.Convert(scanner.Text()))
				}
				if err := scanner.Err(); err != nil {
					return err
				}
			}
			if showHistory {
				cmd.PrintErrln("Recent conversions:")
				for _, conv := range c.Converter.History() {
					cmd.PrintErrln("  " + conv.String())
				}
			}
			return nil
		})
	},
}

var nameCmd = &cobra.Command{
	Use:   "name",
	Short: "Generate random language names",
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		gen := naming.NewGenerator(nil)
		for range max(count, 1) {
			cmd.Println(gen.Generate())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clustersCmd, ipaCmd, nameCmd)
	clustersCmd.Flags().Bool("with-singles", false, "prefix the single consonants, as offered per syllable position")
	ipaCmd.Flags().Bool("history", false, "print the recent conversions to stderr")
	nameCmd.Flags().IntP("count", "n", 1, "how many names to generate")
}
