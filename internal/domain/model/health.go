package model

import "time"

type (
	HealthStatus string

	DependencyStatus string

	DependencyCheck struct {
		Status      DependencyStatus `json:"status"`
		LatencyMs   uint64           `json:"latency_ms"`
		Message     string           `json:"message,omitempty"`
		LastChecked time.Time        `json:"last_checked"`
		Error       string           `json:"error,omitempty"`
	}

	LivenessReport struct {
		Status    HealthStatus `json:"status"`
		Timestamp time.Time    `json:"timestamp"`
		Version   string       `json:"version"`
	}

	ReadinessReport struct {
		Status    HealthStatus               `json:"status"`
		Timestamp time.Time                  `json:"timestamp"`
		Version   string                     `json:"version"`
		Checks    map[string]DependencyCheck `json:"checks"`
	}

	HealthReport struct {
		Status    HealthStatus               `json:"status"`
		Timestamp time.Time                  `json:"timestamp"`
		Version   VersionInfo                `json:"version"`
		Uptime    UptimeInfo                 `json:"uptime"`
		Checks    map[string]DependencyCheck `json:"checks"`
		Sessions  int                        `json:"sessions"`
		System    SystemInfo                 `json:"system"`
	}

	VersionInfo struct {
		API   string `json:"api"`
		Build string `json:"build"`
		Go    string `json:"go"`
	}

	UptimeInfo struct {
		StartedAt       time.Time `json:"started_at"`
		Duration        string    `json:"duration"`
		DurationSeconds uint64    `json:"duration_seconds"`
	}

	SystemInfo struct {
		Goroutines uint    `json:"goroutines"`
		CPUCores   uint    `json:"cpu_cores"`
		AllocMB    float64 `json:"alloc_mb"`
		SysMB      float64 `json:"sys_mb"`
		GCCycles   uint32  `json:"gc_cycles"`
	}
)

const (
	HealthStatusOK       HealthStatus = "ok"
	HealthStatusDegraded HealthStatus = "degraded"
	HealthStatusDown     HealthStatus = "down"

	DependencyStatusUp   DependencyStatus = "up"
	DependencyStatusDown DependencyStatus = "down"
)
