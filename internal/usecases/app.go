package usecases

import (
	"github.com/architeacher/datatable/internal/domain/model"
	"github.com/architeacher/datatable/internal/ports"
	"github.com/architeacher/datatable/internal/usecases/commands"
	"github.com/architeacher/datatable/internal/usecases/queries"
	"github.com/architeacher/datatable/pkg/decorator"
	"github.com/architeacher/datatable/pkg/logger"
	"github.com/architeacher/datatable/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	Commands struct {
		CreateSession         commands.CreateSessionCommandHandler
		SortSession           commands.SortSessionCommandHandler
		EditSessionFilter     commands.EditSessionFilterCommandHandler
		ApplySessionFilter    commands.ApplySessionFilterCommandHandler
		ClearSessionFilter    commands.ClearSessionFilterCommandHandler
		ChangeSessionPage     commands.ChangeSessionPageCommandHandler
		ChangeSessionPageSize commands.ChangeSessionPageSizeCommandHandler
		RefreshSession        commands.RefreshSessionCommandHandler
		DeleteSession         commands.DeleteSessionCommandHandler
		InvalidateRecords     commands.InvalidateRecordsCommandHandler
	}

	Queries struct {
		ListTables        queries.ListTablesQueryHandler
		ListRecords       queries.ListRecordsQueryHandler
		ListColumns       queries.ListColumnsQueryHandler
		ExportRecords     queries.ExportRecordsQueryHandler
		GetSession        queries.GetSessionQueryHandler
		FetchLiveness     queries.FetchLivenessQueryHandler
		FetchReadiness    queries.FetchReadinessQueryHandler
		FetchHealthReport queries.FetchHealthReportQueryHandler
	}

	WebApplication struct {
		Commands Commands
		Queries  Queries
	}

	// RecordsCaching enables the result cache of ListRecords; a nil Cache disables it.
	RecordsCaching struct {
		Cache  decorator.Cache[queries.ListRecordsQuery, *model.Page[model.Post]]
		Store  ports.RecordsCache
		Config decorator.CacheConfig
	}
)

func NewWebApplication(
	tableSvc ports.TableService,
	sessionSvc ports.SessionService,
	healthChecker ports.HealthChecker,
	caching RecordsCaching,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) *WebApplication {
	listRecords := queries.NewListRecordsQueryHandler(tableSvc, log, metricsClient, tracerProvider)
	if caching.Cache != nil && caching.Config.Enabled {
		listRecords = queries.NewListRecordsQueryHandlerWithCache(tableSvc, caching.Cache, caching.Config, log, metricsClient, tracerProvider)
	}

	return &WebApplication{
		Commands: Commands{
			CreateSession:         commands.NewCreateSessionCommandHandler(sessionSvc, log, metricsClient, tracerProvider),
			SortSession:           commands.NewSortSessionCommandHandler(sessionSvc, log, metricsClient, tracerProvider),
			EditSessionFilter:     commands.NewEditSessionFilterCommandHandler(sessionSvc, log, metricsClient, tracerProvider),
			ApplySessionFilter:    commands.NewApplySessionFilterCommandHandler(sessionSvc, log, metricsClient, tracerProvider),
			ClearSessionFilter:    commands.NewClearSessionFilterCommandHandler(sessionSvc, log, metricsClient, tracerProvider),
			ChangeSessionPage:     commands.NewChangeSessionPageCommandHandler(sessionSvc, log, metricsClient, tracerProvider),
			ChangeSessionPageSize: commands.NewChangeSessionPageSizeCommandHandler(sessionSvc, log, metricsClient, tracerProvider),
			RefreshSession:        commands.NewRefreshSessionCommandHandler(sessionSvc, log, metricsClient, tracerProvider),
			DeleteSession:         commands.NewDeleteSessionCommandHandler(sessionSvc, log, metricsClient, tracerProvider),
			InvalidateRecords:     commands.NewInvalidateRecordsCommandHandler(caching.Store, log, metricsClient, tracerProvider),
		},
		Queries: Queries{
			ListTables:        queries.NewListTablesQueryHandler(tableSvc, log, metricsClient, tracerProvider),
			ListRecords:       listRecords,
			ListColumns:       queries.NewListColumnsQueryHandler(tableSvc, log, metricsClient, tracerProvider),
			ExportRecords:     queries.NewExportRecordsQueryHandler(tableSvc, log, metricsClient, tracerProvider),
			GetSession:        queries.NewGetSessionQueryHandler(sessionSvc, log, metricsClient, tracerProvider),
			FetchLiveness:     queries.NewFetchLivenessQueryHandler(healthChecker, log, metricsClient, tracerProvider),
			FetchReadiness:    queries.NewFetchReadinessQueryHandler(healthChecker, log, metricsClient, tracerProvider),
			FetchHealthReport: queries.NewFetchHealthReportQueryHandler(healthChecker, log, metricsClient, tracerProvider),
		},
	}
}
