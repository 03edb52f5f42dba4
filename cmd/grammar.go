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

	"github.com/eslsoft/conlang/internal/app"
	"github.com/eslsoft/conlang/internal/entity"
	"github.com/eslsoft/conlang/internal/usecase"
	"github.com/spf13/cobra"
)

var grammarCmd = &cobra.Command{
	Use:   "grammar",
	Short: "Work with a language's grammar notes",
}

var grammarOutlineCmd = &cobra.Command{
	Use:   "outline",
	Short: "List the headings of the grammar notes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
			lang, err := resolveLanguage(ctx, cmd, c)
			if err != nil {
				return err
			}
			if err := c.Notebook.LoadGrammarNotes(ctx, lang.Grammar.Notes); err != nil {
				return err
			}
			for _, heading := range c.Notebook.Outline() {
				cmd.Printf("%4d  %s\n", c.Notebook.FindSection(heading)+1, heading)
			}
			return nil
		})
	},
}

var grammarShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the grammar notes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
			lang, err := resolveLanguage(ctx, cmd, c)
			if err != nil {
				return err
			}
			cmd.Print(lang.Grammar.Notes)
			return nil
		})
	},
}

var grammarTemplateCmd = &cobra.Command{
	Use:       "template [name]",
	Short:     "Print a section template, or append it to a language's notes with --save",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: usecase.GrammarTemplateNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			for _, name := range usecase.GrammarTemplateNames() {
				cmd.Println(name)
			}
			return nil
		}
		save, _ := cmd.Flags().GetBool("save")
		if !save {
			tmpl, ok := usecase.GrammarTemplate(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", entity.ErrUnknownTemplate, args[0])
			}
			cmd.Print(tmpl)
			return nil
		}

		return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
			lang, err := resolveLanguage(ctx, cmd, c)
			if err != nil {
				return err
			}
			if err := c.Notebook.LoadGrammarNotes(ctx, lang.Grammar.Notes); err != nil {
				return err
			}
			if err := c.Notebook.InsertTemplate(args[0]); err != nil {
				return err
			}
			lang.Grammar.Notes = c.Notebook.Text()
			if _, err := c.Profiles.Save(ctx, lang); err != nil {
				return err
			}
			cmd.Printf("Appended %s template to %s\n", args[0], lang.DisplayName())
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(grammarCmd)
	grammarCmd.AddCommand(grammarOutlineCmd, grammarShowCmd, grammarTemplateCmd)
	grammarCmd.PersistentFlags().StringP("language", "l", "", "language ID or name")
	grammarTemplateCmd.Flags().Bool("save", false, "append the template to the language's notes")
}
