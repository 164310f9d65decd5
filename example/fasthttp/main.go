package main

import (
	"fmt"

	"github.com/logexpress/logx"
	"github.com/logexpress/logx/compat"
	"github.com/valyala/fasthttp"
)

func main() {
	// Create and configure the application logger
	logger, err := logx.NewBuilder().
		Directory("/var/log/fasthttp").
		LevelString("info").
		Build()
	if err != nil {
		panic(err)
	}

	// Create a fasthttp adapter with the default keyword level detection
	fasthttpAdapter := compat.NewFastHTTPAdapter(
		logger,
		compat.WithDefaultLevel(logx.LevelInfo),
	)

	server := &fasthttp.Server{
		Handler: requestHandler,
		Logger:  fasthttpAdapter,
	}

	logger.Info("fasthttp server listening on :8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		logger.ErrorStack(err)
	}
}

func requestHandler(ctx *fasthttp.RequestCtx) {
	fmt.Fprintf(ctx, "Hello from logx!\n")
}
