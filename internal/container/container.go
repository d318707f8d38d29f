package container

import (
	"unbored/internal/bored"
	"unbored/internal/config"
	"unbored/internal/repository"
	"unbored/internal/service"
	"unbored/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *logger.Logger
	Client      *bored.Client
	Repository  repository.ActivityRepository
	List        *service.ListService
	Focus       *service.FocusCoordinator
	Suggestions *service.SuggestionService
}

// New creates a new dependency injection container. The focus coordinator
// is subscribed to list events so that deleting the focused activity hands
// focus back to the type picker.
func New(cfg *config.Config, logger *logger.Logger) *Container {
	client := bored.NewClient(cfg, logger)
	repo := repository.NewFileRepository(cfg.ActivityFile(), logger)
	list := service.NewListService(repo, logger)
	focus := service.NewFocusCoordinator()
	suggestions := service.NewSuggestionService(client, list, logger)

	list.Subscribe(focus.HandleListEvent)

	return &Container{
		Config:      cfg,
		Logger:      logger,
		Client:      client,
		Repository:  repo,
		List:        list,
		Focus:       focus,
		Suggestions: suggestions,
	}
}
