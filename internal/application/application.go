package application

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"shopscout/internal/config"
	"shopscout/internal/domain/service/deal"
	"shopscout/internal/infrastructure/automation"
	"shopscout/internal/infrastructure/completion"
	"shopscout/internal/server"
	"shopscout/pkg/application/modules"
	"shopscout/pkg/contextx"
	"shopscout/pkg/httpx"
	"shopscout/pkg/logx"
	"shopscout/pkg/middlewarex"
)

const (
	appName    = "shopscout"
	appVersion = "0.1.0"

	httpServerReadHeaderTimeout = 5 * time.Second
)

func Run(ctx context.Context, log *slog.Logger) error {
	ctx = contextx.WithLogger(ctx, log)

	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

	masker := logx.NewSensitiveDataMasker()

	// 2. Outbound clients. Авторизация снаружи, логирование внутри: в дампах
	// запросов заголовок Authorization уже стоит и маскируется.
	proposer := completion.NewClient(cfg.Completion, outboundHTTPClient(cfg.Completion.APIKey, masker, cfg.HTTP.LogFieldMaxLen))
	verifier := automation.NewClient(cfg.Automation, outboundHTTPClient(cfg.Automation.APIKey, masker, cfg.HTTP.LogFieldMaxLen))

	// 3. Domain service
	dealService := deal.NewService(proposer, verifier)

	// 4. HTTP API
	srv := server.NewServer(server.NewDealServer(dealService))

	router := chi.NewRouter()
	router.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.RequestLogging(masker, cfg.HTTP.LogFieldMaxLen),
		middlewarex.ResponseLogging(masker, cfg.HTTP.LogFieldMaxLen),
	)
	srv.RegisterRoutes(router)

	httpServer := &http.Server{ //nolint:exhaustruct
		Addr:              cfg.HTTP.ListenAddress(),
		Handler:           router,
		ReadHeaderTimeout: httpServerReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.Run(ctx, g, httpServer)

	modules.ProbeServer{
		Name:          appName,
		Version:       appVersion,
		ListenAddress: cfg.HTTP.ProbeListenAddress,
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.HTTP.MetricListenAddress,
	}.Run(ctx, g)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}

func outboundHTTPClient(token string, masker logx.SensitiveDataMasker, logFieldMaxLen int) *http.Client {
	return &http.Client{ //nolint:exhaustruct
		Transport: httpx.NewAuthBearerRoundTripper(
			httpx.NewLoggingRoundTripper(
				http.DefaultTransport,
				httpx.WithSensitiveDataMasker(masker),
				httpx.WithLogFieldMaxLen(logFieldMaxLen),
			),
			httpx.NewStaticTokenAuthenticator(token),
		),
	}
}
