package cmd

import (
	"strings"
	"testing"
	"time"

	"github.com/eslsoft/conlang/internal/entity"
)

func Test_renderTable(t *testing.T) {
	out := renderTable([]string{"WORD", "IPA"}, [][]string{{"vala", "/ˈva.la/"}, {"reni", "/ˈre.ni/"}})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, rule and 2 rows, got %q", out)
	}
	if !strings.HasPrefix(lines[0], "WORD") || !strings.Contains(lines[0], "IPA") {
		t.Fatalf("bad header %q", lines[0])
	}
	if strings.Trim(lines[1], "─ ") != "" {
		t.Fatalf("expected a header rule, got %q", lines[1])
	}
	// Columns line up with the header.
	col := strings.Index(lines[0], "IPA")
	for _, row := range lines[2:] {
		if got := strings.Index(row, "/"); len([]rune(row[:got])) != len([]rune(lines[0][:col])) {
			t.Fatalf("misaligned row %q under %q", row, lines[0])
		}
	}
}

func Test_languageRows(t *testing.T) {
	updated := time.Date(2025, 3, 4, 5, 6, 0, 0, time.Local)
	rows := languageRows([]*entity.LanguageSummary{{
		ID: "abc", DisplayName: "Valar", LexiconSize: 12, WordOrder: entity.WordOrderSOV, StressLabel: "initial", UpdatedAt: updated,
	}})
	want := []string{"abc", "Valar", "12", "SOV", "initial", "2025-03-04 05:06"}
	if len(rows) != 1 || strings.Join(rows[0], "|") != strings.Join(want, "|") {
		t.Fatalf("got %v want %v", rows, want)
	}
}
