package app

import (
	"context"

	"github.com/doeshing/calcli/internal/domain"
	"github.com/doeshing/calcli/internal/infrastructure/config"
	"github.com/doeshing/calcli/internal/infrastructure/history"
	"github.com/doeshing/calcli/internal/pkg/logger"
	"github.com/doeshing/calcli/internal/ports"
	"github.com/doeshing/calcli/internal/services"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config        domain.Config
	ConfigLoader  *config.FileLoader
	Calculator    *services.Calculator
	DoctorService *services.DoctorService
	HistoryStore  ports.HistoryStore
	Logger        ports.Logger
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logger.NewFile(cfg.LogFile(), verbose || cfg.Logging.Verbose)

	store, err := buildStore(cfg)
	if err != nil {
		return nil, err
	}

	calculator := services.NewCalculator(cfg, store, log)

	doctorService := &services.DoctorService{
		ConfigProvider: cfgLoader,
		HistoryStore:   store,
	}

	return &Container{
		Config:        cfg,
		ConfigLoader:  cfgLoader,
		Calculator:    calculator,
		DoctorService: doctorService,
		HistoryStore:  store,
		Logger:        log,
	}, nil
}

func buildStore(cfg domain.Config) (ports.HistoryStore, error) {
	if cfg.History.Backend == domain.BackendSQLite {
		return history.NewSQLiteStore(cfg.HistoryFile())
	}
	return history.NewCSVStore(cfg.HistoryFile(), cfg.History.Encoding), nil
}
