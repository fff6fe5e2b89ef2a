package services

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/architeacher/datatable/internal/config"
	"github.com/architeacher/datatable/internal/domain/model"
	"github.com/architeacher/datatable/internal/ports"
)

const (
	cacheDependency   = "cache"
	sourceCheckPrefix = "source:"
)

var _ ports.HealthChecker = (*HealthChecker)(nil)

// HealthChecker reports on the table sources, the shared cache and the live sessions.
// A source that is down makes the service unready; a cache that is down only degrades it.
type HealthChecker struct {
	registry  *TableRegistry
	cache     ports.RecordsCache
	sessions  ports.SessionRepository
	app       config.App
	startedAt time.Time
}

// NewHealthChecker accepts a nil cache when caching is disabled.
func NewHealthChecker(registry *TableRegistry, cache ports.RecordsCache, sessions ports.SessionRepository, app config.App) *HealthChecker {
	return &HealthChecker{
		registry:  registry,
		cache:     cache,
		sessions:  sessions,
		app:       app,
		startedAt: time.Now().UTC(),
	}
}

// Liveness only reports that the process answers.
func (h *HealthChecker) Liveness(context.Context) (*model.LivenessReport, error) {
	return &model.LivenessReport{
		Status:    model.HealthStatusOK,
		Timestamp: time.Now().UTC(),
		Version:   config.ServiceVersion,
	}, nil
}

func (h *HealthChecker) Readiness(ctx context.Context) (*model.ReadinessReport, error) {
	checks := h.checkDependencies(ctx)

	return &model.ReadinessReport{
		Status:    overallStatus(checks),
		Timestamp: time.Now().UTC(),
		Version:   config.ServiceVersion,
		Checks:    checks,
	}, nil
}

func (h *HealthChecker) Health(ctx context.Context) (*model.HealthReport, error) {
	checks := h.checkDependencies(ctx)
	now := time.Now().UTC()
	uptime := now.Sub(h.startedAt)

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	report := &model.HealthReport{
		Status:    overallStatus(checks),
		Timestamp: now,
		Version: model.VersionInfo{
			API:   h.app.APIVersion,
			Build: config.CommitSHA,
			Go:    runtime.Version(),
		},
		Uptime: model.UptimeInfo{
			StartedAt:       h.startedAt,
			Duration:        uptime.Round(time.Second).String(),
			DurationSeconds: uint64(uptime.Seconds()),
		},
		Checks: checks,
		System: model.SystemInfo{
			Goroutines: uint(runtime.NumGoroutine()),
			CPUCores:   uint(runtime.NumCPU()),
			AllocMB:    float64(mem.Alloc) / 1024 / 1024,
			SysMB:      float64(mem.Sys) / 1024 / 1024,
			GCCycles:   mem.NumGC,
		},
	}

	if h.sessions != nil {
		report.Sessions = h.sessions.Len()
	}

	return report, nil
}

func (h *HealthChecker) checkDependencies(ctx context.Context) map[string]model.DependencyCheck {
	checks := make(map[string]model.DependencyCheck)

	for _, name := range h.registry.Names() {
		t, err := h.registry.Lookup(name)
		if err != nil {
			continue
		}

		pinger, ok := t.Source.(ports.Pinger)
		if !ok {
			continue
		}

		checks[sourceCheckPrefix+name] = timed(func() error { return pinger.Ping(ctx) })
	}

	if h.cache != nil {
		checks[cacheDependency] = timed(func() error {
			if !h.cache.IsHealthy(ctx) {
				return fmt.Errorf("cache is not reachable")
			}

			return nil
		})
	}

	return checks
}

func timed(check func() error) model.DependencyCheck {
	start := time.Now()
	err := check()

	result := model.DependencyCheck{
		Status:      model.DependencyStatusUp,
		LatencyMs:   uint64(time.Since(start).Milliseconds()),
		Message:     "ok",
		LastChecked: time.Now().UTC(),
	}

	if err != nil {
		result.Status = model.DependencyStatusDown
		result.Message = ""
		result.Error = err.Error()
	}

	return result
}

func overallStatus(checks map[string]model.DependencyCheck) model.HealthStatus {
	status := model.HealthStatusOK

	for name, check := range checks {
		if check.Status == model.DependencyStatusUp {
			continue
		}

		if name == cacheDependency {
			status = model.HealthStatusDegraded

			continue
		}

		return model.HealthStatusDown
	}

	return status
}
