package app

import (
	"github.com/eslsoft/conlang/internal/infrastructure/config"
	"github.com/eslsoft/conlang/internal/infrastructure/database"
	"github.com/eslsoft/conlang/internal/infrastructure/settings"
	"github.com/eslsoft/conlang/internal/naming"
	"github.com/eslsoft/conlang/internal/phonology"
	"github.com/eslsoft/conlang/internal/usecase"
	"github.com/eslsoft/conlang/internal/usecase/backup"
	"github.com/sirupsen/logrus"
)

// Container aggregates the application dependencies produced by Wire.
type Container struct {
	Config     *config.Config
	Logger     *logrus.Logger
	DB         *database.DB
	Settings   *settings.Settings
	Profiles   usecase.ProfileUsecase
	Dictionary usecase.DictionaryUsecase
	Translator *usecase.Translator
	Notebook   *usecase.GrammarNotebook
	Speech     *usecase.SpeechStub
	Workspace  *usecase.Workspace
	Converter  *phonology.Converter
	Backup     *backup.Service
}

func provideNameGenerator() *naming.Generator {
	return naming.NewGenerator(nil)
}

func provideSettings(cfg *config.Config, logger *logrus.Logger) *settings.Settings {
	return settings.Load(cfg.Settings.Path, logger)
}

func provideConverter() *phonology.Converter {
	return phonology.NewConverter()
}

// provideWorkspace wires every panel that reacts to an opened profile.
func provideWorkspace(dictionary usecase.DictionaryUsecase, translator *usecase.Translator, notebook *usecase.GrammarNotebook) *usecase.Workspace {
	return usecase.NewWorkspace(dictionary, translator, notebook)
}

func provideBackup(db *database.DB) (*backup.Service, error) {
	return backup.NewService(db)
}
