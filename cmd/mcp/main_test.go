package main

import (
	"context"
	"testing"
	"time"

	"market-pulse/internal/config"
	"market-pulse/internal/di"
	"market-pulse/pkg/tracing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

func TestMainBootstrap(t *testing.T) {
	origLoadEnv := loadEnvFunc
	origLoadConfig := loadConfigFunc
	origInitTracer := initTracerFunc
	origWire := wireFunc
	origRun := runServerFunc
	t.Cleanup(func() {
		loadEnvFunc = origLoadEnv
		loadConfigFunc = origLoadConfig
		initTracerFunc = origInitTracer
		wireFunc = origWire
		runServerFunc = origRun
	})

	var serviceName string
	ran := false
	loadEnvFunc = func(...string) error { return nil }
	loadConfigFunc = func() *config.Config { return &config.Config{LogLevel: "error"} }
	initTracerFunc = func(ctx context.Context, opts tracing.Options) (*sdktrace.TracerProvider, trace.Tracer, error) {
		serviceName = opts.ServiceName
		tp := sdktrace.NewTracerProvider()
		return tp, tp.Tracer("test"), nil
	}
	wireFunc = func(context.Context, *config.Config, trace.Tracer) *di.Container { return &di.Container{} }
	runServerFunc = func(ctx context.Context, server *mcp.Server) error {
		ran = server != nil
		return nil
	}

	done := make(chan struct{})
	go func() {
		main()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("main did not exit")
	}
	if !ran {
		t.Fatal("server was not run")
	}
	if serviceName != "market-pulse-mcp" {
		t.Fatalf("unexpected service name %q", serviceName)
	}
}
