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
	"github.com/eslsoft/conlang/internal/entity"
	"github.com/eslsoft/conlang/internal/repository"
	"github.com/spf13/cobra"
)

var dictionaryCmd = &cobra.Command{
	Use:     "dictionary",
	Aliases: []string{"dict"},
	Short:   "Manage a language's working dictionary",
}

var dictionaryAddCmd = &cobra.Command{
	Use:   "add <word>",
	Short: "Add a dictionary entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ipa, _ := cmd.Flags().GetString("ipa")
		pos, _ := cmd.Flags().GetString("pos")
		definition, _ := cmd.Flags().GetString("definition")

		return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
			lang, err := resolveLanguage(ctx, cmd, c)
			if err != nil {
				return err
			}
			entry, err := c.Dictionary.AddEntry(ctx, &entity.DictionaryEntry{
				LanguageID:   lang.ID,
				Word:         args[0],
				IPA:          ipa,
				PartOfSpeech: entity.PartOfSpeech(pos),
				Definition:   definition,
			})
			if err != nil {
				return err
			}
			cmd.Printf("Added %s /%s/ (%s)\n", entry.Word, entry.IPA, entry.PartOfSpeech)
			return nil
		})
	},
}

var dictionaryRemoveCmd = &cobra.Command{
	Use:   "remove <word>...",
	Short: "Remove dictionary entries by word",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
			lang, err := resolveLanguage(ctx, cmd, c)
			if err != nil {
				return err
			}
			n, err := c.Dictionary.RemoveEntries(ctx, lang.ID, args)
			if err != nil {
				return err
			}
			cmd.Printf("Removed %d entries\n", n)
			return nil
		})
	},
}

var dictionarySearchCmd = &cobra.Command{
	Use:   "search [keyword]",
	Short: "Search words and definitions",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		keyword := strings.Join(args, " ")
		return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
			lang, err := resolveLanguage(ctx, cmd, c)
			if err != nil {
				return err
			}
			entries, err := c.Dictionary.Search(ctx, lang.ID, keyword)
			if err != nil {
				return err
			}
			return printEntries(cmd.OutOrStdout(), entries)
		})
	},
}

var dictionaryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List dictionary entries page by page",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetInt32("page")
		size, _ := cmd.Flags().GetInt32("page-size")

		return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
			lang, err := resolveLanguage(ctx, cmd, c)
			if err != nil {
				return err
			}
			entries, total, err := c.Dictionary.List(ctx, &repository.ListDictionaryQuery{
				Pagination: repository.Pagination{PageNo: page, PageSize: size},
				LanguageID: lang.ID,
			})
			if err != nil {
				return err
			}
			if err := printEntries(cmd.OutOrStdout(), entries); err != nil {
				return err
			}
			cmd.Printf("%d of %d entries\n", len(entries), total)
			return nil
		})
	},
}

var dictionaryFilterCmd = &cobra.Command{
	Use:   "filter <expression>",
	Short: "Filter entries with an expression such as pos == \"verb\" && word.startsWith(\"r\")",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		orderBy, _ := cmd.Flags().GetString("order-by")
		return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
			lang, err := resolveLanguage(ctx, cmd, c)
			if err != nil {
				return err
			}
			entries, err := c.Dictionary.Filter(ctx, lang.ID, args[0], orderBy)
			if err != nil {
				return err
			}
			return printEntries(cmd.OutOrStdout(), entries)
		})
	},
}

var dictionaryLoadCmd = &cobra.Command{
	Use:   "load",
	Short: "Replace the dictionary with the language's seed lexicon",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
			lang, err := resolveLanguage(ctx, cmd, c)
			if err != nil {
				return err
			}
			if err := c.Dictionary.LoadLexicon(ctx, lang.ID, lang.Lexicon); err != nil {
				return err
			}
			cmd.Printf("Loaded %d lexicon entries into %s\n", len(lang.Lexicon), lang.DisplayName())
			return nil
		})
	},
}

var dictionarySeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Add the sample entries to the dictionary",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
			lang, err := resolveLanguage(ctx, cmd, c)
			if err != nil {
				return err
			}
			n, err := c.Dictionary.SeedSamples(ctx, lang.ID)
			if err != nil {
				return err
			}
			cmd.Printf("Added %d sample entries\n", n)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(dictionaryCmd)
	dictionaryCmd.AddCommand(
		dictionaryAddCmd,
		dictionaryRemoveCmd,
		dictionarySearchCmd,
		dictionaryListCmd,
		dictionaryFilterCmd,
		dictionaryLoadCmd,
		dictionarySeedCmd,
	)
	dictionaryCmd.PersistentFlags().StringP("language", "l", "", "language ID or name")

	dictionaryAddCmd.Flags().String("ipa", "", "IPA transcription")
	dictionaryAddCmd.Flags().String("pos", string(entity.PartOfSpeechNoun), "part of speech")
	dictionaryAddCmd.Flags().StringP("definition", "d", "", "definition")

	dictionaryListCmd.Flags().Int32("page", 1, "page number")
	dictionaryListCmd.Flags().Int32("page-size", 50, "page size (0 lists everything)")

	dictionaryFilterCmd.Flags().String("order-by", "", "sort order, e.g. \"word desc\"")
}

func printEntries(out io.Writer, entries []*entity.DictionaryEntry) error {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Word, "/" + e.IPA + "/", string(e.PartOfSpeech), e.Definition})
	}
	_, err := fmt.Fprintln(out, renderTable([]string{"WORD", "IPA", "POS", "DEFINITION"}, rows))
	return err
}
