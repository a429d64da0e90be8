package main

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	log "github.com/lixenwraith/simplelog"
)

const configFile = "simple_config.toml"

// Example TOML content
var tomlContent = `
# Example simple_config.toml
[log]
  level = -4 # Debug
  name = "simple"
  directory = "./simple_logs"
  format = "txt"
  rolling_log = false
  enable_console = true
  console_color = true
  flush_interval_ms = 100
  # Other settings use defaults
`

func main() {
	fmt.Println("--- Simple Logger Example ---")

	// --- Setup Config ---
	// Create dummy config file
	if err := os.WriteFile(configFile, []byte(tomlContent), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write dummy config: %v\n", err)
		// Continue with defaults
	} else {
		fmt.Printf("Created dummy config file: %s\n", configFile)
	}

	cfg, err := log.NewConfigFromFile(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// --- Initialize Logger ---
	if err := log.Init(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Logger initialized, writing to %s\n", log.Default().FilePath())

	// --- Logging ---
	log.Debug("debug message, visible because level = -4")
	log.Info("application starting")
	log.Log("user signed in", log.LevelInfo, log.CategoryAuth, "")
	log.Log("cache warmed", log.LevelInfo, log.CategoryNone, "cache")
	log.LogValue(map[string]int{"workers": 4, "queue": 0}, log.LevelDebug, log.CategoryDebug, "")

	wrapped := fmt.Errorf("load profile: %w", errors.New("record not found"))
	log.LogError(wrapped, log.LevelError, log.CategoryDatabase, "")

	// --- Concurrent Logging ---
	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 3; j++ {
				log.Log(fmt.Sprintf("goroutine %d message %d", id, j), log.LevelInfo, log.CategoryGeneral, "")
				time.Sleep(5 * time.Millisecond)
			}
		}(i)
	}
	wg.Wait()

	log.Warn("shutting down")

	// --- Shutdown ---
	// Drains the queue before returning
	if err := log.Shutdown(2 * time.Second); err != nil {
		fmt.Fprintf(os.Stderr, "Logger shutdown error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("--- Example Finished ---")
	fmt.Printf("Check log files in '%s'.\n", cfg.Directory)
}
