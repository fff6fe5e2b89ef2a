package ports

//counterfeiter:generate -o ../mocks/health_checker.go . HealthChecker
//counterfeiter:generate -o ../mocks/metrics_client.go github.com/architeacher/datatable/pkg/metrics.Client

import (
	"context"

	"github.com/architeacher/datatable/internal/domain/model"
)

type HealthChecker interface {
	Liveness(ctx context.Context) (*model.LivenessReport, error)
	Readiness(ctx context.Context) (*model.ReadinessReport, error)
	Health(ctx context.Context) (*model.HealthReport, error)
}
