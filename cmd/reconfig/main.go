package main

import (
	"fmt"
	"sync/atomic"
	"time"

	log "github.com/lixenwraith/simplelog"
)

// Swap the default logger repeatedly while a producer keeps logging
func main() {
	var count atomic.Int64

	// Initialize the logger with defaults first
	err := log.InitWithDefaults("directory=./reconfig_logs", "name=reconfig_0")
	if err != nil {
		fmt.Printf("Initial Init error: %v\n", err)
		return
	}

	// Log something constantly
	stop := make(chan struct{})
	go func() {
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			log.Info(fmt.Sprintf("Test log %d", i))
			count.Add(1)
			time.Sleep(time.Millisecond)
		}
	}()

	// Each Init shuts the previous logger down after the swap
	for i := 1; i <= 10; i++ {
		err := log.InitWithDefaults(
			"directory=./reconfig_logs",
			fmt.Sprintf("name=reconfig_%d", i),
			fmt.Sprintf("flush_interval_ms=%d", 10*i),
		)
		if err != nil {
			fmt.Printf("Init error: %v\n", err)
		}
		// Minimal delay between reconfigurations
		time.Sleep(10 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)
	close(stop)

	var stats log.Stats
	if l := log.Default(); l != nil {
		stats, _ = l.Stats()
	}

	// Gracefully shut down the logger
	err = log.Shutdown(time.Second)
	if err != nil {
		fmt.Printf("Shutdown error: %v\n", err)
	}

	// Entries that raced a swap may be counted as dropped by the retired logger
	fmt.Printf("Total logs attempted: %d\n", count.Load())
	fmt.Printf("Last logger before shutdown: state=%s enqueued=%d written=%d\n", stats.State, stats.Enqueued, stats.Written)
}
