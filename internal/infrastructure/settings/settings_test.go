package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	logger, hook := test.NewNullLogger()
	s := Load(filepath.Join(t.TempDir(), "config.json"), logger)

	assert.Equal(t, "default", s.Theme)
	assert.Equal(t, []string{}, s.RecentFiles)
	assert.True(t, s.AutoSave)
	assert.Equal(t, "en", s.Language)
	assert.Empty(t, hook.AllEntries())
}

func TestLoadMalformedFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme": "dark",`), 0o644))

	logger, hook := test.NewNullLogger()
	s := Load(path, logger)

	assert.Equal(t, "default", s.Theme)
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestLoadPartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme": "dark", "auto_save": false}`), 0o644))

	s := Load(path, nil)
	assert.Equal(t, "dark", s.Theme)
	assert.False(t, s.AutoSave)
	assert.Equal(t, "en", s.Language)
	assert.Equal(t, []string{}, s.RecentFiles)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	s := Load(path, nil)
	require.NoError(t, s.Set("language", "fr"))
	require.NoError(t, s.Set("auto_save", "false"))
	s.AddRecentFile("/tmp/a.yaml")
	require.NoError(t, s.Save())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.ElementsMatch(t, []string{"theme", "recent_files", "auto_save", "language"}, keys(doc))

	again := Load(path, nil)
	assert.Equal(t, "fr", again.Language)
	assert.False(t, again.AutoSave)
	assert.Equal(t, []string{"/tmp/a.yaml"}, again.RecentFiles)
}

func TestSaveRoundTripKeepsBlankValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	s := Load(path, nil)
	require.NoError(t, s.Set("theme", ""))
	require.NoError(t, s.Set("language", "  "))
	require.NoError(t, s.Save())
	assert.Equal(t, "", s.Theme)

	again := Load(path, nil)
	assert.Equal(t, "", again.Theme)
	assert.Equal(t, "", again.Language)
	assert.Equal(t, []string{}, again.RecentFiles)
}

func TestAddRecentFile(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "config.json"), nil)
	for i := 0; i < 12; i++ {
		s.AddRecentFile(fmt.Sprintf("/work/lang-%d.yaml", i))
	}
	s.AddRecentFile("/work/lang-5.yaml")
	s.AddRecentFile("  ")

	require.Len(t, s.RecentFiles, MaxRecentFiles)
	assert.Equal(t, "/work/lang-5.yaml", s.RecentFiles[0])
	assert.Equal(t, "/work/lang-11.yaml", s.RecentFiles[1])
	assert.NotContains(t, s.RecentFiles, "/work/lang-1.yaml")
}

func TestSetRejectsUnknownKeys(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "config.json"), nil)
	assert.ErrorIs(t, s.Set("volume", "11"), ErrUnknownKey)
	assert.Error(t, s.Set("auto_save", "sometimes"))
	assert.True(t, s.AutoSave)
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
