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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/eslsoft/conlang/internal/app"
	"github.com/eslsoft/conlang/internal/entity"
	"github.com/eslsoft/conlang/internal/profiledoc"
	"github.com/eslsoft/conlang/internal/repository"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a language profile from a draft document or the interactive wizard",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		interactive, _ := cmd.Flags().GetBool("interactive")
		if (file == "") == !interactive {
			return errors.New("use exactly one of --file or --interactive")
		}

		return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
			var (
				draft *entity.LanguageDraft
				err   error
			)
			if interactive {
				draft, err = runWizard()
			} else {
				draft, err = readDraft(file)
			}
			if err != nil {
				return err
			}

			profile, err := c.Profiles.Create(ctx, draft)
			if err != nil {
				return err
			}
			c.Logger.WithField("language", profile.DisplayName()).Info("language profile created")
			cmd.Print(profiledoc.Summary(profile))

			save := c.Settings.AutoSave
			if cmd.Flags().Changed("save") {
				save, _ = cmd.Flags().GetBool("save")
			}
			if out, _ := cmd.Flags().GetString("output"); out != "" {
				if err := writeProfileFile(out, profile); err != nil {
					return err
				}
				c.Settings.AddRecentFile(out)
				cmd.Printf("Wrote %s\n", out)
			}
			if save {
				if _, err := c.Profiles.Save(ctx, profile); err != nil {
					return err
				}
				if err := c.Workspace.Open(ctx, profile); err != nil {
					return err
				}
				cmd.Printf("Saved %s (%s)\n", profile.DisplayName(), profile.ID)
			}
			if file != "" {
				c.Settings.AddRecentFile(file)
			}
			if err := c.Settings.Save(); err != nil {
				c.Logger.WithError(err).Warn("failed to save settings")
			}
			return nil
		})
	},
}

var openCmd = &cobra.Command{
	Use:   "open <file>",
	Short: "Load a profile document written by new --output or show --format",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
			profile, err := readProfileFile(args[0])
			if err != nil {
				return err
			}
			saved, err := c.Profiles.Save(ctx, profile)
			if err != nil {
				return err
			}
			if err := c.Workspace.Open(ctx, saved); err != nil {
				return err
			}
			c.Settings.AddRecentFile(args[0])
			if err := c.Settings.Save(); err != nil {
				c.Logger.WithError(err).Warn("failed to save settings")
			}
			cmd.Print(profiledoc.Summary(saved))
			return nil
		})
	},
}

var showCmd = &cobra.Command{
	Use:   "show <language>",
	Short: "Print a stored language profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
			profile, err := c.Profiles.Get(ctx, args[0])
			if err != nil {
				return err
			}
			name, _ := cmd.Flags().GetString("format")
			if name == "summary" {
				cmd.Print(profiledoc.Summary(profile))
				return nil
			}
			format, err := profiledoc.ParseFormat(name)
			if err != nil {
				return err
			}
			return profiledoc.EncodeProfile(cmd.OutOrStdout(), profile, format)
		})
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored language profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		keyword, _ := cmd.Flags().GetString("keyword")
		page, _ := cmd.Flags().GetInt32("page")
		size, _ := cmd.Flags().GetInt32("page-size")

		return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
			items, total, err := c.Profiles.List(ctx, &repository.ListLanguageQuery{
				Pagination: repository.Pagination{PageNo: page, PageSize: size},
				Keyword:    keyword,
			})
			if err != nil {
				return err
			}
			cmd.Println(renderTable([]string{"ID", "NAME", "LEXICON", "WORD ORDER", "STRESS", "UPDATED"}, languageRows(items)))
			cmd.Printf("%d language(s)\n", total)
			return nil
		})
	},
}

func languageRows(items []*entity.LanguageSummary) [][]string {
	rows := make([][]string, 0, len(items))
	for _, s := range items {
		rows = append(rows, []string{
			s.ID, s.DisplayName, strconv.Itoa(s.LexiconSize), string(s.WordOrder), s.StressLabel,
			s.UpdatedAt.Local().Format("2006-01-02 15:04"),
		})
	}
	return rows
}

var deleteCmd = &cobra.Command{
	Use:   "delete <language>",
	Short: "Delete a stored language profile and its dictionary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
			if err := c.Profiles.Delete(ctx, args[0]); err != nil {
				return err
			}
			cmd.Printf("Deleted %s\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(newCmd, openCmd, showCmd, listCmd, deleteCmd)

	newCmd.Flags().StringP("file", "f", "", "draft document (.yaml, .yml or .json)")
	newCmd.Flags().BoolP("interactive", "i", false, "run the interactive wizard")
	newCmd.Flags().Bool("save", false, "store the profile (defaults to the auto_save setting)")
	newCmd.Flags().StringP("output", "o", "", "also write the profile document to this path")

	showCmd.Flags().String("format", "summary", "output format: summary, yaml or json")

	listCmd.Flags().String("keyword", "", "filter by name")
	listCmd.Flags().Int32("page", 1, "page number")
	listCmd.Flags().Int32("page-size", 0, "page size (0 lists everything)")
}

func readDraft(path string) (*entity.LanguageDraft, error) {
	format, err := profiledoc.FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open draft: %w", err)
	}
	defer f.Close()
	return profiledoc.DecodeDraft(f, format)
}

func readProfileFile(path string) (*entity.LanguageProfile, error) {
	format, err := profiledoc.FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open profile: %w", err)
	}
	defer f.Close()
	return profiledoc.DecodeProfile(f, format)
}

func writeProfileFile(path string, profile *entity.LanguageProfile) (err error) {
	format, err := profiledoc.FormatFromPath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create profile file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return profiledoc.EncodeProfile(f, profile, format)
}
