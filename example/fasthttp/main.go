// FILE: example/fasthttp/main.go
package main

import (
	"fmt"
	"strings"
	"time"

	log "github.com/lixenwraith/simplelog"
	"github.com/lixenwraith/simplelog/compat"
	"github.com/valyala/fasthttp"
)

func main() {
	// Create and configure logger
	logger, err := log.NewBuilder().
		Name("fasthttp").
		Directory("./fasthttp_logs").
		LevelString("info").
		RollingLog(true).
		Build()
	if err != nil {
		panic(err)
	}
	defer logger.Shutdown()

	// Create fasthttp adapter with custom level detection
	fasthttpAdapter, err := compat.NewBuilder().
		WithLogger(logger).
		BuildFastHTTP(
			compat.WithDefaultLevel(log.LevelInfo),
			compat.WithLevelDetector(customLevelDetector),
		)
	if err != nil {
		panic(err)
	}

	// Configure fasthttp server
	server := &fasthttp.Server{
		Handler: func(ctx *fasthttp.RequestCtx) {
			requestHandler(logger, ctx)
		},
		Logger: fasthttpAdapter,

		// Other server settings
		Name:              "MyServer",
		Concurrency:       fasthttp.DefaultConcurrency,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		TCPKeepalive:      true,
		ReduceMemoryUsage: true,
	}

	// Start server
	fmt.Println("Starting server on :8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		logger.LogError(err, log.LevelError, log.CategoryAPI, "")
	}
}

func requestHandler(logger *log.Logger, ctx *fasthttp.RequestCtx) {
	logger.Log(fmt.Sprintf("%s %s", ctx.Method(), ctx.Path()), log.LevelDebug, log.CategoryAPI, "")
	ctx.SetContentType("text/plain")
	fmt.Fprintf(ctx, "Hello, world! Path: %s\n", ctx.Path())
}

func customLevelDetector(msg string) (log.Level, bool) {
	// fasthttp message patterns first
	if strings.Contains(msg, "connection cannot be served") {
		return log.LevelWarn, true
	}
	if strings.Contains(msg, "error when serving connection") {
		return log.LevelError, true
	}

	// Use default detection
	return compat.DetectLogLevel(msg)
}
