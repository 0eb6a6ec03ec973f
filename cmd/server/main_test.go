package main

import (
	"context"
	"net/http"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"market-pulse/internal/bot"
	"market-pulse/internal/config"
	"market-pulse/internal/di"
	"market-pulse/internal/job"
	"market-pulse/pkg/tracing"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	tele "gopkg.in/telebot.v3"
)

func TestMainBootstrap(t *testing.T) {
	gin.SetMode(gin.TestMode)
	calls := stubServerDeps(t)

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

	if atomic.LoadInt32(&calls.warmer) != 1 || atomic.LoadInt32(&calls.telegram) != 1 || atomic.LoadInt32(&calls.httpStart) != 1 {
		t.Fatalf("unexpected startup calls: %+v", calls)
	}
	if calls.addr != ":9099" {
		t.Fatalf("expected server on :9099, got %s", calls.addr)
	}
	if calls.tracingEnabled {
		t.Fatal("tracing option should follow config")
	}
}

type startupCalls struct {
	warmer         int32
	telegram       int32
	httpStart      int32
	addr           string
	tracingEnabled bool
}

func stubServerDeps(t *testing.T) *startupCalls {
	t.Helper()
	calls := &startupCalls{}
	started := make(chan struct{})

	origLoadEnv := loadEnvFunc
	origLoadConfig := loadConfigFunc
	origInitTracer := initTracerFunc
	origWire := wireFunc
	origStartWarmer := startWarmerFunc
	origStartTelegram := startTelegramBotFunc
	origNewRouter := newRouterFunc
	origSetupSignal := setupSignalNotify
	origWait := waitForSignalFunc
	origStartHTTP := startHTTPServerFunc
	origShutdownHTTP := shutdownHTTPServerFunc
	t.Cleanup(func() {
		loadEnvFunc = origLoadEnv
		loadConfigFunc = origLoadConfig
		initTracerFunc = origInitTracer
		wireFunc = origWire
		startWarmerFunc = origStartWarmer
		startTelegramBotFunc = origStartTelegram
		newRouterFunc = origNewRouter
		setupSignalNotify = origSetupSignal
		waitForSignalFunc = origWait
		startHTTPServerFunc = origStartHTTP
		shutdownHTTPServerFunc = origShutdownHTTP
	})

	loadEnvFunc = func(...string) error { return nil }
	loadConfigFunc = func() *config.Config {
		return &config.Config{Port: 9099, UpstreamTimeoutSecs: 1, WatchlistTTLSecs: 60, LogLevel: "error"}
	}
	initTracerFunc = func(ctx context.Context, opts tracing.Options) (*sdktrace.TracerProvider, trace.Tracer, error) {
		calls.tracingEnabled = opts.Enabled
		tp := sdktrace.NewTracerProvider()
		return tp, tp.Tracer("test"), nil
	}
	wireFunc = func(ctx context.Context, cfg *config.Config, tracer trace.Tracer) *di.Container {
		return &di.Container{}
	}
	startWarmerFunc = func(*job.CacheWarmer, context.Context) { atomic.AddInt32(&calls.warmer, 1) }
	startTelegramBotFunc = func(string, bot.MarketReader) (*tele.Bot, error) {
		atomic.AddInt32(&calls.telegram, 1)
		return nil, nil
	}
	newRouterFunc = func(...gin.OptionFunc) *gin.Engine { return gin.New() }
	setupSignalNotify = func(c chan<- os.Signal, sig ...os.Signal) {}
	waitForSignalFunc = func(<-chan os.Signal) { <-started }
	startHTTPServerFunc = func(srv *http.Server) error {
		calls.addr = srv.Addr
		atomic.AddInt32(&calls.httpStart, 1)
		close(started)
		return http.ErrServerClosed
	}
	shutdownHTTPServerFunc = func(*http.Server, context.Context) error { return nil }
	return calls
}
