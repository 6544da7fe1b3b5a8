package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/doeshing/calcli/internal/domain"
	"github.com/doeshing/calcli/internal/ports"
)

// DoctorService runs environment diagnostics.
type DoctorService struct {
	ConfigProvider ports.ConfigProvider
	HistoryStore   ports.HistoryStore
}

// Run executes checks and returns a report.
func (s *DoctorService) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	if err := cfg.Validate(); err != nil {
		checks = append(checks, fail("Config file", err.Error()))
	} else {
		checks = append(checks, ok("Config file", fmt.Sprintf("loaded, format version %s", cfg.ConfigFormatVersion)))
	}

	checks = append(checks, historyDirCheck(cfg.History.Dir))
	checks = append(checks, s.historyFileCheck())
	checks = append(checks, precisionCheck(cfg.Input.Precision))

	return domain.HealthReport{Checks: checks}, nil
}

func historyDirCheck(dir string) domain.HealthCheck {
	if err := os.MkdirAll(dir, domain.DirectoryPermissions); err != nil {
		return fail("History directory", fmt.Sprintf("cannot create: %v", err))
	}
	probe := filepath.Join(dir, ".calcli-doctor")
	if err := os.WriteFile(probe, nil, 0o600); err != nil {
		return fail("History directory", fmt.Sprintf("not writable: %v", err))
	}
	os.Remove(probe)
	return ok("History directory", dir)
}

func (s *DoctorService) historyFileCheck() domain.HealthCheck {
	if s.HistoryStore == nil {
		return warn("History file", "store not initialized")
	}
	records, err := s.HistoryStore.Load()
	if err != nil {
		// Missing or empty history is a normal state for a new install.
		if errors.Is(err, domain.ErrHistoryNotFound) || errors.Is(err, domain.ErrHistoryEmpty) {
			return warn("History file", err.Error())
		}
		return fail("History file", err.Error())
	}
	return ok("History file", fmt.Sprintf("%d records at %s", len(records), s.HistoryStore.Path()))
}

func precisionCheck(n int) domain.HealthCheck {
	if err := domain.ValidatePrecision(n); err != nil {
		return fail("Precision", err.Error())
	}
	return ok("Precision", fmt.Sprintf("%d decimal places", n))
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
