package cmd

import (
	"fmt"

	adapterexpo "github.com/renato0307/revue/internal/adapters/expo"
	adaptergithub "github.com/renato0307/revue/internal/adapters/github"
	adapterstorage "github.com/renato0307/revue/internal/adapters/storage"
	adaptersystem "github.com/renato0307/revue/internal/adapters/system"
	"github.com/renato0307/revue/internal/config"
	"github.com/renato0307/revue/internal/ports"
	"github.com/renato0307/revue/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Adapters
	Clock  ports.Clock
	Expo   ports.ExpoGateway
	GitHub ports.GitHubGateway

	// Services
	BuildService    *services.BuildService
	PRService       *services.PRService
	SettingsService *services.SettingsService
	Verifier        *services.CredentialVerifier

	// Internal - for cleanup only
	settingsRepo ports.SettingsRepository
}

// NewContainer creates a new Container with all dependencies wired.
// Services are shared by every dashboard, including SSH sessions.
func NewContainer(settings *config.Settings) (*Container, error) {
	if settings == nil {
		settings = &config.Settings{}
	}

	settingsRepo, err := adapterstorage.NewSQLiteRepository(config.GetDBPath())
	if err != nil {
		return nil, err
	}

	github, err := adaptergithub.NewGateway(settings.GitHubAPIURL)
	if err != nil {
		settingsRepo.Close()
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}
	expo := adapterexpo.NewGateway(settings.ExpoAPIURL)

	enricher := services.NewEnricher(github, services.DefaultEnrichmentConcurrency)

	return &Container{
		Clock:           adaptersystem.Clock{},
		Expo:            expo,
		GitHub:          github,
		BuildService:    services.NewBuildService(expo, services.NewAppIDCache()),
		PRService:       services.NewPRService(github, enricher),
		SettingsService: services.NewSettingsService(settingsRepo),
		Verifier:        services.NewCredentialVerifier(github, expo),
		settingsRepo:    settingsRepo,
	}, nil
}

// NewDashboard creates the pollers of one UI instance
func (c *Container) NewDashboard() *services.Dashboard {
	return services.NewDashboard(c.PRService, c.BuildService, c.Clock)
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.settingsRepo != nil {
		return c.settingsRepo.Close()
	}
	return nil
}
