// Package main runs the list board HTTP API. Dependencies are wired with
// samber/do; the lists are loaded once in the background when
// board.fetch_on_start is set. SIGINT or SIGTERM drains the server and
// flushes telemetry.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/samber/do/v2"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/jsamuelsen11/list-creation-service/internal/adapters/clients/acl"
	adapthttp "github.com/jsamuelsen11/list-creation-service/internal/adapters/http"
	"github.com/jsamuelsen11/list-creation-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/list-creation-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/list-creation-service/internal/app"
	"github.com/jsamuelsen11/list-creation-service/internal/platform/config"
	"github.com/jsamuelsen11/list-creation-service/internal/platform/health"
	"github.com/jsamuelsen11/list-creation-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/list-creation-service/internal/platform/logging"
	"github.com/jsamuelsen11/list-creation-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/list-creation-service/internal/ports"
)

// listAPIName identifies the remote list service in traces, metrics and
// readiness output.
const listAPIName = "list-api"

const telemetryFlushTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "list-creation-service: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE must be set to one of local, dev, qa, prod")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := startTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("starting telemetry: %w", err)
	}
	defer otel.flush(logger)

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)
	provide(injector, cfg, logger)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("wiring server: %w", err)
	}
	do.MustInvoke[ports.HealthRegistry](injector).Register(do.MustInvoke[*acl.ListsClient](injector))

	if cfg.Board.FetchOnStart {
		go loadLists(ctx, do.MustInvoke[ports.BoardService](injector), logger)
	}

	logger.Info("service starting",
		slog.String("profile", profile),
		slog.String("addr", server.Addr()),
		slog.String("list_api", cfg.Client.BaseURL),
	)
	if err := server.Run(ctx); err != nil {
		return err
	}
	logger.Info("service stopped")
	return nil
}

// provide registers every service constructor with the injector.
func provide(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		return httpclient.New(&cfg.Client, listAPIName, do.MustInvoke[*telemetry.Metrics](i), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.ListsClient, error) {
		return acl.NewListsClient(do.MustInvoke[*httpclient.Client](i), cfg.Client.ListsPath, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.BoardService, error) {
		return app.NewBoardService(do.MustInvoke[*acl.ListsClient](i), app.BoardOptions{
			ClearSelectionOnCancel: cfg.Board.ClearSelectionOnCancel,
			FetchTimeout:           cfg.Board.FetchTimeout,
			Metrics:                do.MustInvoke[*telemetry.Metrics](i),
		}, logger), nil
	})

	do.Provide(injector, func(do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		return adapthttp.NewRouter(
			handlers.NewBoardHandler(do.MustInvoke[ports.BoardService](i)),
			handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(do.MustInvoke[*telemetry.Metrics](i)),
			middleware.Logging(logger),
			chimw.Timeout(cfg.Server.RequestTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), logger), nil
	})
}

// loadLists performs the startup fetch. On failure the board stays in the
// failed state until a client calls POST /api/v1/board/refresh.
func loadLists(ctx context.Context, svc ports.BoardService, logger *slog.Logger) {
	state, err := svc.Refresh(ctx)
	if err != nil {
		logger.WarnContext(ctx, "startup list fetch failed", slog.Any("error", err))
		return
	}
	logger.InfoContext(ctx, "startup list fetch complete", slog.Int("lists", len(state.Lists)))
}

// telemetryProviders owns the OpenTelemetry SDK providers. The zero value
// stands for disabled telemetry.
type telemetryProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

func startTelemetry(ctx context.Context, cfg *config.Config) (*telemetryProviders, error) {
	tc := cfg.Telemetry
	if !tc.Enabled {
		return &telemetryProviders{}, nil
	}

	p := &telemetryProviders{}
	var err error
	if p.tracer, err = telemetry.InitTracer(ctx, tc.ServiceName, tc.Exporter, tc.Endpoint); err != nil {
		return nil, fmt.Errorf("tracer: %w", err)
	}
	if p.meter, err = telemetry.InitMeter(ctx, tc.ServiceName, tc.Exporter, tc.Endpoint); err != nil {
		_ = p.shutdown(ctx)
		return nil, fmt.Errorf("meter: %w", err)
	}
	if p.metrics, err = telemetry.NewMetrics(p.meter, tc.ServiceName); err != nil {
		_ = p.shutdown(ctx)
		return nil, fmt.Errorf("metrics: %w", err)
	}
	return p, nil
}

func (p *telemetryProviders) shutdown(ctx context.Context) error {
	var errs []error
	if p.tracer != nil {
		errs = append(errs, p.tracer.Shutdown(ctx))
	}
	if p.meter != nil {
		errs = append(errs, p.meter.Shutdown(ctx))
	}
	return errors.Join(errs...)
}

// flush shuts the providers down on a fresh context, since the run context
// is already cancelled by the time it is called.
func (p *telemetryProviders) flush(logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), telemetryFlushTimeout)
	defer cancel()

	if err := p.shutdown(ctx); err != nil {
		logger.Error("flushing telemetry", slog.Any("error", err))
	}
}
