package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// MaxRecentFiles bounds the recent_files list.
const MaxRecentFiles = 10

// ErrUnknownKey is returned by Set for keys outside the settings document.
var ErrUnknownKey = errors.New("unknown settings key")

// Settings is the user preference document stored next to the workspace data.
type Settings struct {
	Theme       string   `json:"theme"`
	RecentFiles []string `json:"recent_files"`
	AutoSave    bool     `json:"auto_save"`
	Language    string   `json:"language"`

	path   string
	logger *logrus.Logger
}

// Defaults returns a detached settings value with every key at its default.
func Defaults() Settings {
	return Settings{
		Theme:       "default",
		RecentFiles: []string{},
		AutoSave:    true,
		Language:    "en",
	}
}

// Load reads path. A missing file yields defaults; a malformed one is logged
// and defaults are kept.
func Load(path string, logger *logrus.Logger) *Settings {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	s := Defaults()
	s.path = path
	s.logger = logger

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.WithError(err).WithField("path", path).Warn("failed to read settings, using defaults")
		}
		return &s
	}

	decoded := Defaults()
	if err := json.Unmarshal(data, &decoded); err != nil {
		logger.WithError(err).WithField("path", path).Warn("failed to parse settings, using defaults")
		return &s
	}
	s.Theme = decoded.Theme
	s.RecentFiles = decoded.RecentFiles
	s.AutoSave = decoded.AutoSave
	s.Language = decoded.Language
	s.normalize()
	return &s
}

// Path is the file Save writes to.
func (s *Settings) Path() string { return s.path }

// Save writes the settings as indented JSON, creating the directory if needed.
func (s *Settings) Save() error {
	s.normalize()
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(s.path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// AddRecentFile moves path to the front of the recent list.
func (s *Settings) AddRecentFile(path string) {
	path = strings.TrimSpace(path)
	if path == "" {
		return
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	recent := append([]string{path}, lo.Without(s.RecentFiles, path)...)
	if len(recent) > MaxRecentFiles {
		recent = recent[:MaxRecentFiles]
	}
	s.RecentFiles = recent
}

// Set assigns one scalar key from its string form.
func (s *Settings) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "theme":
		s.Theme = value
	case "language":
		s.Language = value
	case "auto_save":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("auto_save: %w", err)
		}
		s.AutoSave = b
	default:
		return fmt.Errorf("%w %q", ErrUnknownKey, key)
	}
	return nil
}

// normalize only tidies the recent list; scalar values round-trip as stored.
func (s *Settings) normalize() {
	s.RecentFiles = lo.Uniq(lo.Compact(s.RecentFiles))
	if len(s.RecentFiles) > MaxRecentFiles {
		s.RecentFiles = s.RecentFiles[:MaxRecentFiles]
	}
}
