package usecase

import (
	"fmt"
	"strings"

	"github.com/eslsoft/conlang/internal/entity"
	"github.com/sirupsen/logrus"
)

// SpeechVoices are the selectable synthesis voices.
var SpeechVoices = []string{"Neutral", "Soft", "Resonant"}

// SpeechStub simulates text-to-speech. It only reports what it would do.
type SpeechStub struct {
	logger *logrus.Logger
}

func NewSpeechStub(logger *logrus.Logger) *SpeechStub {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &SpeechStub{logger: logger}
}

func (s *SpeechStub) Preview(text, voice string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "Enter text to preview.", nil
	}
	v, err := resolveVoice(voice)
	if err != nil {
		return "", err
	}
	s.logger.WithFields(logrus.Fields{"voice": v, "chars": len(text)}).Info("speech preview requested")
	return fmt.Sprintf("Previewing '%s' voice (simulation).", v), nil
}

func (s *SpeechStub) Export(text, voice string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "Enter text before exporting.", nil
	}
	v, err := resolveVoice(voice)
	if err != nil {
		return "", err
	}
	s.logger.WithFields(logrus.Fields{"voice": v, "chars": len(text)}).Info("speech export requested")
	return fmt.Sprintf("Prepared export with '%s' voice (simulation).", v), nil
}

// resolveVoice defaults a blank voice to the first one and matches case-insensitively.
func resolveVoice(voice string) (string, error) {
	voice = strings.TrimSpace(voice)
	if voice == "" {
		return SpeechVoices[0], nil
	}
	for _, v := range SpeechVoices {
		if strings.EqualFold(v, voice) {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w %q", entity.ErrUnknownVoice, voice)
}
