//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"github.com/eslsoft/conlang/internal/adapter/repository"
	"github.com/eslsoft/conlang/internal/infrastructure/config"
	"github.com/eslsoft/conlang/internal/infrastructure/database"
	"github.com/eslsoft/conlang/internal/infrastructure/logging"
	"github.com/eslsoft/conlang/internal/usecase"
)

var infrastructureSet = wire.NewSet(
	logging.NewLogger,
	database.NewDB,
	provideSettings,
)

var repositorySet = wire.NewSet(
	repository.NewLanguageRepository,
	repository.NewDictionaryRepository,
)

var usecaseSet = wire.NewSet(
	provideNameGenerator,
	usecase.NewProfileUsecase,
	usecase.NewDictionaryUsecase,
	usecase.NewTranslator,
	usecase.NewGrammarNotebook,
	usecase.NewSpeechStub,
	provideWorkspace,
	provideConverter,
	provideBackup,
)

// Initialize builds the application container using Wire.
func Initialize(cfg *config.Config) (*Container, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		usecaseSet,
		wire.Struct(new(Container), "*"),
	)
	return nil, nil, nil
}
