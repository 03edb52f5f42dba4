package cmd

import (
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// tablesFromConfig reads a table list bound to key. Entries may be comma
// separated, repeated, or both; names are trimmed, lower-cased and deduplicated.
func tablesFromConfig(key string) []string {
	var names []string
	for _, value := range viper.GetStringSlice(key) {
		for _, part := range strings.Split(value, ",") {
			if name := strings.ToLower(strings.TrimSpace(part)); name != "" {
				names = append(names, name)
			}
		}
	}
	if len(names) == 0 {
		return nil
	}
	return lo.Uniq(names)
}

// gzipFor reports whether a backup path should be (de)compressed.
// Stdio never infers compression from a name.
func gzipFor(path string, explicit bool) bool {
	if explicit || path == "-" {
		return explicit
	}
	return strings.HasSuffix(strings.ToLower(path), ".gz")
}

// closeAll runs closers in order and keeps the first error in *err.
func closeAll(closers []func() error, err *error) {
	for _, closer := range closers {
		if cerr := closer(); cerr != nil && *err == nil {
			*err = cerr
		}
	}
}

func bindFlagToViper(key string, flag *pflag.Flag) {
	if flag == nil {
		return
	}
	cobra.CheckErr(viper.BindPFlag(key, flag))
}
