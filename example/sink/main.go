// FILE: example/sink/main.go
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	log "github.com/lixenwraith/simplelog"
)

const logDirectory = "./temp_logs"

// main drives each sink on its own, without a Logger in front
func main() {
	// Ensure a clean state by removing the previous log directory.
	if err := os.RemoveAll(logDirectory); err != nil {
		fmt.Printf("Warning: could not remove old log directory: %v\n", err)
	}

	fmt.Println("--- Running Sink Examples ---")
	testConsole(log.TargetStdout, true)
	testConsole(log.TargetStderr, false)
	testFileSink()
	testAsyncFileSink()

	fmt.Println("\n--- Sink Examples Complete ---")
	fmt.Printf("Check the '%s' directory for log files.\n", logDirectory)
}

func baseConfig(name string) *log.Config {
	cfg := log.DefaultConfig()
	cfg.Directory = logDirectory
	cfg.Name = name
	cfg.Level = log.LevelDebug
	return cfg
}

// emit sends one entry per level through any sink's call surface
func emit(logf func(string, log.Level, log.Category, string), phase string) {
	logf(phase+": debug", log.LevelDebug, log.CategoryDebug, "")
	logf(phase+": info", log.LevelInfo, log.CategoryGeneral, "")
	logf(phase+": warn", log.LevelWarn, log.CategoryNone, "example")
	logf(phase+": error", log.LevelError, log.CategoryDatabase, "")
}

func testConsole(target string, color bool) {
	fmt.Printf("\n--- Console sink (%s, color=%t) ---\n", target, color)
	cfg := baseConfig("console")
	cfg.ConsoleTarget = target
	cfg.ConsoleColor = color

	sink := log.NewConsoleSink(cfg)
	defer sink.Close()
	emit(sink.Log, "console")
}

func testFileSink() {
	fmt.Println("\n--- Synchronous file sink ---")
	sink, err := log.NewFileSink(baseConfig("sync"))
	if err != nil {
		fmt.Printf("File sink error: %v\n", err)
		return
	}
	emit(sink.Log, "sync")
	sink.LogError(errors.New("disk quota exceeded"), log.LevelError, log.CategoryGeneral, "")
	if err := sink.Close(); err != nil {
		fmt.Printf("Close error: %v\n", err)
	}
	fmt.Printf("Wrote %s\n", sink.Path())
}

func testAsyncFileSink() {
	fmt.Println("\n--- Asynchronous file sink ---")
	cfg := baseConfig("async")
	cfg.Format = log.FormatJSON

	sink, err := log.NewAsyncFileSink(cfg)
	if err != nil {
		fmt.Printf("Async sink error: %v\n", err)
		return
	}
	emit(sink.Log, "async")
	sink.LogValue(map[string]int{"retries": 3}, log.LevelInfo, log.CategoryAPI, "")

	if err := sink.Shutdown(time.Second); err != nil {
		fmt.Printf("Shutdown error: %v\n", err)
	}
	stats := sink.Stats()
	fmt.Printf("Wrote %s (state=%s written=%d failed=%d)\n", sink.Path(), stats.State, stats.Written, stats.Failed)
}
