// Package profiledoc reads and writes language documents: wizard drafts and
// complete profiles, as YAML or JSON.
package profiledoc

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/eslsoft/conlang/internal/entity"
	"github.com/goccy/go-yaml"
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

var ErrUnknownFormat = errors.New("unknown document format")

// ParseFormat accepts "yaml", "yml" or "json".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownFormat, name)
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// DecodeDraft reads one wizard draft.
func DecodeDraft(r io.Reader, format Format) (*entity.LanguageDraft, error) {
	var draft entity.LanguageDraft
	if err := decode(r, format, &draft); err != nil {
		return nil, fmt.Errorf("decode draft: %w", err)
	}
	return &draft, nil
}

// DecodeProfile reads a complete profile. The profile is not validated.
func DecodeProfile(r io.Reader, format Format) (*entity.LanguageProfile, error) {
	var profile entity.LanguageProfile
	if err := decode(r, format, &profile); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &profile, nil
}

// EncodeProfile writes profile in the requested format.
func EncodeProfile(w io.Writer, profile *entity.LanguageProfile, format Format) error {
	switch format {
	case FormatYAML:
		encoder := yaml.NewEncoder(w, yaml.Indent(2), yaml.IndentSequence(true))
		if err := encoder.Encode(profile); err != nil {
			return err
		}
		return encoder.Close()
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		encoder.SetEscapeHTML(false)
		return encoder.Encode(profile)
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

func decode(r io.Reader, format Format, v any) error {
	switch format {
	case FormatYAML:
		return yaml.NewDecoder(r, yaml.Strict()).Decode(v)
	case FormatJSON:
		decoder := json.NewDecoder(r)
		decoder.DisallowUnknownFields()
		return decoder.Decode(v)
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}
