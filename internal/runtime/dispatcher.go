package runtime

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

type ServiceCtx struct {
	deps              *dependencies
	dependencyOptions []DependencyOption
	shutdownChannel   chan os.Signal
	serverCtx         context.Context
	serverStopFunc    context.CancelFunc
	serverReady       chan struct{}
}

func New(opts ...ServiceOption) *ServiceCtx {
	ctx := &ServiceCtx{
		shutdownChannel: make(chan os.Signal, 1),
	}

	for _, opt := range opts {
		opt(ctx)
	}

	return ctx
}

func (c *ServiceCtx) Run() {
	if err := c.build(); err != nil {
		log.Fatalf("failed to build service: %v", err)
	}

	c.startService()
	c.shutdownHook()
	c.monitorConfigChanges()

	select {
	case <-c.serverCtx.Done():
	case <-c.shutdownChannel:
		defer close(c.shutdownChannel)
	}

	c.shutdown()
}

func (c *ServiceCtx) build() error {
	c.serverCtx, c.serverStopFunc = context.WithCancel(context.Background())

	var err error

	c.deps, err = initializeDependencies(defaultOptions(c.serverCtx), c.dependencyOptions...)
	if err != nil {
		return fmt.Errorf("initializing dependencies: %w", err)
	}

	return nil
}

func (c *ServiceCtx) startService() {
	go func() {
		cfg := c.deps.config.PublicHTTPServer
		addr := net.JoinHostPort(cfg.Host, fmt.Sprintf("%d", cfg.Port))

		listener, err := net.Listen("tcp", addr)
		if err != nil {
			log.Fatalf("failed to listen on %s: %v", addr, err)
		}

		c.deps.infra.logger.Info().
			Str("address", addr).
			Str("source", c.deps.config.Source.Kind).
			Msg("starting the http server")

		if c.serverReady != nil {
			close(c.serverReady)
		}

		if err := c.deps.infra.publicHTTPServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("public http server error: %v", err)
		}
	}()

	c.startAdminServer()
	c.startGRPCHealthServer()
}

func (c *ServiceCtx) startAdminServer() {
	if c.deps.infra.adminHTTPServer == nil {
		return
	}

	go func() {
		cfg := c.deps.config.AdminHTTPServer
		addr := net.JoinHostPort(cfg.Host, fmt.Sprintf("%d", cfg.Port))

		listener, err := net.Listen("tcp", addr)
		if err != nil {
			log.Fatalf("failed to listen on admin server %s: %v", addr, err)
		}

		c.deps.infra.logger.Info().
			Str("address", addr).
			Msg("starting the admin http server")

		if err := c.deps.infra.adminHTTPServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("admin http server error: %v", err)
		}
	}()
}

func (c *ServiceCtx) startGRPCHealthServer() {
	if c.deps.infra.grpcServer == nil {
		return
	}

	go c.deps.infra.healthHandler.Run(c.serverCtx)

	go func() {
		cfg := c.deps.config.GRPCHealthServer
		addr := net.JoinHostPort(cfg.Host, fmt.Sprintf("%d", cfg.Port))

		listener, err := net.Listen("tcp", addr)
		if err != nil {
			log.Fatalf("failed to listen on grpc health server %s: %v", addr, err)
		}

		c.deps.infra.logger.Info().
			Str("address", addr).
			Msg("starting the gRPC health server")

		if err := c.deps.infra.grpcServer.Serve(listener); err != nil {
			log.Fatalf("gRPC health server error: %v", err)
		}
	}()
}

func (c *ServiceCtx) monitorConfigChanges() {
	if c.deps.configLoader == nil {
		return
	}

	reloadErrors := c.deps.configLoader.WatchConfigSignals(c.serverCtx)
	go func() {
		for err := range reloadErrors {
			if err != nil {
				c.deps.infra.logger.Error().Err(err).Msg("config reload failed")
			} else {
				c.deps.infra.logger.Info().Msg("config reloaded successfully")
			}
		}
	}()
}

func (c *ServiceCtx) shutdownHook() {
	signal.Notify(c.shutdownChannel, syscall.SIGINT, syscall.SIGTERM)
}

func (c *ServiceCtx) shutdown() {
	c.deps.infra.logger.Info().Msg("shutting down service...")

	// Cancel context that underlying processes would start cleanup.
	c.serverStopFunc()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), c.deps.config.PublicHTTPServer.ShutdownTimeout)
	defer cancel()

	go func() {
		<-shutdownCtx.Done()

		if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
			c.deps.infra.logger.Error().Msg("graceful shutdown timed out.. forcing exit.")
			os.Exit(1)
		}
	}()

	c.stopServers(shutdownCtx)
	c.cleanup(shutdownCtx)

	c.deps.infra.logger.Info().Msg("service shutdown complete")
}

// stopServers drains the listeners before the resources they use go away.
func (c *ServiceCtx) stopServers(ctx context.Context) {
	for name, srv := range map[string]*http.Server{
		"public_http_server": c.deps.infra.publicHTTPServer,
		"admin_http_server":  c.deps.infra.adminHTTPServer,
	} {
		if srv == nil {
			continue
		}

		if err := srv.Shutdown(ctx); err != nil {
			c.deps.infra.logger.Error().Err(err).Str("resource", name).Msg("failed to shutdown the server gracefully")
		}
	}

	if c.deps.infra.grpcServer != nil {
		c.deps.infra.grpcServer.GracefulStop()
	}
}

// WaitForServer blocks until the public http server is listening.
// Only services built with WithWaitingForServer ever unblock.
func (c *ServiceCtx) WaitForServer() {
	if c.serverReady != nil {
		<-c.serverReady
	}
}

func (c *ServiceCtx) cleanup(shutdownCtx context.Context) {
	c.deps.infra.logger.Info().Msg("cleaning up resources...")

	c.deps.cleanup(shutdownCtx)

	c.deps.infra.logger.Info().Msg("cleanup completed")
}
