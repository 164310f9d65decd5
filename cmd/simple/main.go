package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/logexpress/logx"
)

func main() {
	fmt.Println("--- Simple LogX Example ---")

	logger, err := logx.NewBuilder().
		Directory("./simple_logs").
		Level(logx.LevelAll).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}

	logger.WriteHeaderBanner()

	logger.Trace("This is a trace message.")
	logger.Debug("This is a debug message.")
	logger.Info("This is an info message.")
	logger.Warn("This is a warning message")
	logger.Error("This is an error message")
	logger.ErrorStack(errors.New("this is an error logged with its stack trace"))
	logger.Fatal("This is a fatal message")

	logger.SetLogLevel(logx.LevelWarn) // Raise the threshold to WARN

	logger.Trace("This trace message won't be logged.")
	logger.Debug("This debug message won't be logged.")
	logger.Info("This info message won't be logged.")
	logger.Warn("This is a warning message after changing log level.")
	logger.Error("This is an error message after changing log level.")
	logger.Fatal("This is a fatal message after changing log level.")

	fmt.Println("--- Example Finished ---")
	fmt.Println("Check the log file in './simple_logs'.")
}
