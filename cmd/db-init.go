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
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/eslsoft/conlang/internal/app"
	"github.com/eslsoft/conlang/internal/entity"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// dbInitCmd migrates the store and optionally bulk-loads a word list into a language's dictionary.
var dbInitCmd = &cobra.Command{
	Use:   "db-init",
	Short: "Migrate the database and optionally import a word list",
	Long: `db-init creates the tables and, with --words, imports a tab separated word list
into the dictionary of --language. Each line is either

  word<TAB>ipa<TAB>definition
  word<TAB>ipa<TAB>pos<TAB>definition

A definition may start with a marker such as "n." or "vt." instead of a pos column.
--words also accepts an http(s) URL. Note: go-sqlite3 needs CGO_ENABLED=1.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		source, _ := cmd.Flags().GetString("words")
		seed, _ := cmd.Flags().GetBool("seed-samples")

		return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
			c.Logger.Info("database migration finished")
			if source == "" && !seed {
				return nil
			}

			lang, err := resolveLanguage(ctx, cmd, c)
			if err != nil {
				return err
			}
			if seed {
				n, err := c.Dictionary.SeedSamples(ctx, lang.ID)
				if err != nil {
					return err
				}
				c.Logger.WithField("added", n).Info("sample entries seeded")
			}
			if source == "" {
				return nil
			}
			return importWordList(ctx, c, lang.ID, source)
		})
	},
}

func init() {
	rootCmd.AddCommand(dbInitCmd)
	dbInitCmd.Flags().String("words", "", "word list file or http(s) URL to import")
	dbInitCmd.Flags().StringP("language", "l", "", "language ID or name receiving the words")
	dbInitCmd.Flags().Bool("seed-samples", false, "also add the sample dictionary entries")
}

func importWordList(ctx context.Context, c *app.Container, languageID, source string) error {
	start := time.Now()
	log := c.Logger.WithField("source", source)
	log.Info("importing word list")

	rc, err := openWordList(ctx, source)
	if err != nil {
		return err
	}
	defer rc.Close()

	records, skipped, err := parseWordList(rc)
	if err != nil {
		return err
	}

	added, duplicates := 0, 0
	for i := range records {
		records[i].LanguageID = languageID
		if _, err := c.Dictionary.AddEntry(ctx, &records[i]); err != nil {
			if errors.Is(err, entity.ErrDuplicateDictionaryEntry) {
				duplicates++
				continue
			}
			return fmt.Errorf("import %q: %w", records[i].Word, err)
		}
		added++
		if added%500 == 0 {
			log.WithField("added", added).Info("import progress")
		}
	}
	log.WithFields(logrus.Fields{
		"added":      added,
		"duplicates": duplicates,
		"skipped":    skipped,
		"elapsed":    time.Since(start).Round(time.Millisecond).String(),
	}).Info("word list imported")
	return nil
}

func openWordList(ctx context.Context, source string) (io.ReadCloser, error) {
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		f, err := os.Open(filepath.Clean(source))
		if err != nil {
			return nil, fmt.Errorf("open word list: %w", err)
		}
		return f, nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("download failed: %s", resp.Status)
	}
	return resp.Body, nil
}

// parseWordList reads word list lines. Blank lines, '#' comments, multi-word
// headwords and rows missing IPA or definition are skipped and counted.
func parseWordList(r io.Reader) ([]entity.DictionaryEntry, int, error) {
	var (
		records []entity.DictionaryEntry
		skipped int
	)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}

		var rec entity.DictionaryEntry
		switch len(fields) {
		case 3:
			rec = entity.DictionaryEntry{Word: fields[0], IPA: fields[1]}
			rec.PartOfSpeech, rec.Definition = entity.SplitPartOfSpeech(fields[2])
		case 4:
			pos, _ := entity.ParsePartOfSpeech(fields[2])
			rec = entity.DictionaryEntry{Word: fields[0], IPA: fields[1], PartOfSpeech: pos, Definition: fields[3]}
		default:
			skipped++
			continue
		}
		rec.IPA = strings.Trim(rec.IPA, "/[]")
		if !isSingleWord(rec.Word) || !rec.Complete() {
			skipped++
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("read word list: %w", err)
	}
	return records, skipped, nil
}

func isSingleWord(w string) bool {
	if w == "" || strings.ContainsAny(w, " \t\n") {
		return false
	}
	// Exclude obvious multi-item constructs containing commas or semicolons
	return !strings.ContainsAny(w, ",;")
}
