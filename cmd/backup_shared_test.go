package cmd

import (
	"errors"
	"testing"

	"github.com/spf13/viper"
)

func Test_tablesFromConfig(t *testing.T) {
	t.Cleanup(viper.Reset)

	viper.Set("backup.test.tables", []string{" Languages ", "dictionary_entries,languages", ""})
	got := tablesFromConfig("backup.test.tables")
	if len(got) != 2 || got[0] != "languages" || got[1] != "dictionary_entries" {
		t.Fatalf("unexpected tables %v", got)
	}

	viper.Set("backup.test.tables", []string{" ", ","})
	if got := tablesFromConfig("backup.test.tables"); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func Test_gzipFor(t *testing.T) {
	cases := []struct {
		path     string
		explicit bool
		want     bool
	}{
		{"backup.jsonl", false, false},
		{"backup.jsonl.GZ", false, true},
		{"backup.jsonl", true, true},
		{"-", false, false},
		{"-", true, true},
	}
	for _, c := range cases {
		if got := gzipFor(c.path, c.explicit); got != c.want {
			t.Fatalf("gzipFor(%q, %v) = %v, want %v", c.path, c.explicit, got, c.want)
		}
	}
}

func Test_closeAll(t *testing.T) {
	first, second := errors.New("first"), errors.New("second")
	calls := 0
	var err error
	closeAll([]func() error{
		func() error { calls++; return first },
		func() error { calls++; return second },
	}, &err)
	if calls != 2 || !errors.Is(err, first) {
		t.Fatalf("calls=%d err=%v", calls, err)
	}
}
