// FILE: example/fasthttp/main.go
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/lixenwraith/hexlog"
	"github.com/lixenwraith/hexlog/compat"
	"github.com/valyala/fasthttp"
)

var bodyLog *compat.FastHTTPAdapter

func main() {
	logger := hexlog.NewLogger()
	err := logger.ApplyConfigString(
		"levels=error|warning|info|flash",
		"show_timestamp=true",
		"show_function_name=true",
		"sanitization=txt",
	)
	if err != nil {
		panic(err)
	}

	// Server messages and request body dumps share one logger
	bodyLog = compat.NewFastHTTPAdapter(
		logger,
		compat.WithDefaultLevel(hexlog.LevelInfo),
		compat.WithLevelDetector(customLevelDetector),
		compat.WithFastHTTPHexLevel(hexlog.LevelFlash),
	)

	server := &fasthttp.Server{
		Handler: requestHandler,
		Logger:  bodyLog,

		Name:              "HexlogServer",
		Concurrency:       fasthttp.DefaultConcurrency,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		TCPKeepalive:      true,
		ReduceMemoryUsage: true,
	}

	fmt.Println("Starting server on :8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		panic(err)
	}
}

func requestHandler(ctx *fasthttp.RequestCtx) {
	if body := ctx.PostBody(); len(body) > 0 {
		bodyLog.Printf("%s %s body %d bytes", ctx.Method(), ctx.Path(), len(body))
		bodyLog.Dump(body)
	}
	ctx.SetContentType("text/plain")
	fmt.Fprintf(ctx, "Hello, world! Path: %s\n", ctx.Path())
}

func customLevelDetector(msg string) hexlog.Level {
	if strings.Contains(msg, "connection cannot be served") {
		return hexlog.LevelWarning
	}
	if strings.Contains(msg, "error when serving connection") {
		return hexlog.LevelError
	}

	return compat.DetectLogLevel(msg)
}
