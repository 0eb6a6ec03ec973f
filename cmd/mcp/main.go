package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"market-pulse/internal/config"
	"market-pulse/internal/di"
	"market-pulse/pkg/logger"
	"market-pulse/pkg/tracing"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
)

var version = "dev"

var (
	loadEnvFunc    = godotenv.Load
	loadConfigFunc = config.Load
	initTracerFunc = tracing.InitTracer
	wireFunc       = di.Wire
	runServerFunc  = func(ctx context.Context, server *mcp.Server) error {
		return server.Run(ctx, &mcp.StdioTransport{})
	}
)

// stdout carries the protocol, so logs go to stderr.
func main() {
	_ = loadEnvFunc()

	cfg := loadConfigFunc()
	logger.SetGlobalLogger(logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty, Output: os.Stderr}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp, tracer, err := initTracerFunc(ctx, tracing.Options{
		Enabled:     cfg.TracingEnabled,
		Endpoint:    cfg.OTLPEndpoint,
		ServiceName: tracing.DefaultServiceName + "-mcp",
		Version:     version,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize tracer")
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			log.Warn().Err(err).Msg("Error shutting down tracer provider")
		}
	}()

	container := wireFunc(ctx, cfg, tracer)
	defer container.Close()

	log.Info().Str("version", version).Msg("MCP server starting on stdio")
	if err := runServerFunc(ctx, newServer(container.Market, version)); err != nil && ctx.Err() == nil {
		log.Error().Err(err).Msg("MCP server stopped")
	}
	log.Info().Msg("MCP server exited")
}
