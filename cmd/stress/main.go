package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/logexpress/logx"
)

const (
	workers         = 8
	messagesPerGoro = 500
	rotationLimitKB = 64
)

func main() {
	logger, err := logx.NewBuilder().
		Directory("./stress_logs").
		MaxSizeKB(rotationLimitKB).
		EnableConsole(false).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < messagesPerGoro; i++ {
				logger.Info(fmt.Sprintf("worker %d message %d", id, i))
			}
		}(w)
	}
	wg.Wait()

	stats := logger.Stats()
	fmt.Printf("writes=%d rotations=%d write_failures=%d rotation_failures=%d\n",
		stats.TotalWrites, stats.TotalRotations, stats.WriteFailures, stats.RotationFailures)
}
