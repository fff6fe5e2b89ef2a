package decorator

import (
	"context"
	"time"

	"github.com/architeacher/datatable/pkg/logger"
)

type (
	commandLoggingDecorator[C Command, R any] struct {
		base   CommandHandler[C, R]
		logger logger.Logger
	}

	queryLoggingDecorator[Q Query, R Result] struct {
		base   QueryHandler[Q, R]
		logger logger.Logger
	}
)

func (d commandLoggingDecorator[C, R]) Handle(ctx context.Context, cmd C) (result R, err error) {
	log := d.logger.WithContext(ctx)
	actionName := generateActionName(cmd)
	start := time.Now()

	log.Debug().Str("command", actionName).Interface("command_body", cmd).Msg("executing command")

	defer func() {
		if err != nil {
			log.Error().Err(err).Str("command", actionName).Dur("duration", time.Since(start)).Msg("failed to execute command")

			return
		}

		log.Info().Str("command", actionName).Dur("duration", time.Since(start)).Msg("command executed successfully")
	}()

	return d.base.Handle(ctx, cmd)
}

func (d queryLoggingDecorator[Q, R]) Execute(ctx context.Context, query Q) (result R, err error) {
	log := d.logger.WithContext(ctx)
	actionName := generateActionName(query)
	start := time.Now()

	log.Debug().Str("query", actionName).Interface("query_body", query).Msg("executing query")

	defer func() {
		if err != nil {
			log.Error().Err(err).Str("query", actionName).Dur("duration", time.Since(start)).Msg("failed to execute query")

			return
		}

		log.Debug().Str("query", actionName).Dur("duration", time.Since(start)).Msg("query executed successfully")
	}()

	return d.base.Execute(ctx, query)
}
