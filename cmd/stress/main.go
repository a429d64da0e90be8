package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	log "github.com/lixenwraith/simplelog"
)

const maxMessageSize = 2000

var levels = []log.Level{
	log.LevelDebug,
	log.LevelInfo,
	log.LevelWarn,
	log.LevelError,
}

var categories = []log.Category{
	log.CategoryGeneral,
	log.CategoryAuth,
	log.CategoryNetwork,
	log.CategoryDatabase,
	log.CategoryUI,
	log.CategoryAPI,
	log.CategoryDebug,
}

type options struct {
	producers int
	messages  int
	directory string
	format    string
	async     bool
	rolling   bool
	level     string
	timeout   time.Duration
}

var opts options

var rootCmd = &cobra.Command{
	Use:   "stress",
	Short: "Hammer the file sinks with concurrent producers",
	Long: `stress starts a number of producer goroutines that log random messages
through a single logger, shuts it down, and reports the sink counters.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(opts)
	},
}

func init() {
	f := rootCmd.Flags()
	f.IntVarP(&opts.producers, "producers", "p", 50, "number of concurrent producers")
	f.IntVarP(&opts.messages, "messages", "n", 2000, "messages per producer")
	f.StringVarP(&opts.directory, "dir", "d", "./stress_logs", "log directory (removed before the run)")
	f.StringVar(&opts.format, "format", log.FormatTxt, "output format: txt or json")
	f.BoolVar(&opts.async, "async", true, "use the asynchronous file sink")
	f.BoolVar(&opts.rolling, "rolling", false, "write to a daily rolling file")
	f.StringVar(&opts.level, "level", "debug", "minimum level")
	f.DurationVar(&opts.timeout, "timeout", 30*time.Second, "shutdown timeout")
}

func generateRandomMessage(rng *rand.Rand, size int) string {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 "
	var sb strings.Builder
	sb.Grow(size)
	for i := 0; i < size; i++ {
		sb.WriteByte(chars[rng.Intn(len(chars))])
	}
	return sb.String()
}

// produce logs a fixed number of random entries
func produce(logger *log.Logger, id, count int, sent *atomic.Int64) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano() + int64(id)))
	for i := 0; i < count; i++ {
		msg := fmt.Sprintf("producer=%d seq=%d %s", id, i, generateRandomMessage(rng, rng.Intn(maxMessageSize)+10))
		logger.Log(msg, levels[rng.Intn(len(levels))], categories[rng.Intn(len(categories))], "")
		sent.Add(1)
	}
}

func run(o options) error {
	if o.producers <= 0 || o.messages <= 0 {
		return fmt.Errorf("producers and messages must be positive")
	}
	_ = os.RemoveAll(o.directory)

	logger, err := log.NewBuilder().
		Name("stress").
		Directory(o.directory).
		Format(o.format).
		LevelString(o.level).
		RollingLog(o.rolling).
		Async(o.async).
		FlushIntervalMs(50).
		Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	fmt.Printf("Starting stress test: %d producers x %d messages, async=%t, format=%s\n",
		o.producers, o.messages, o.async, o.format)
	fmt.Printf("Writing to: %s\n", logger.FilePath())

	var sent atomic.Int64
	start := time.Now()

	var g errgroup.Group
	for i := 0; i < o.producers; i++ {
		id := i
		g.Go(func() error {
			produce(logger, id, o.messages, &sent)
			return nil
		})
	}
	_ = g.Wait()
	produced := time.Since(start)

	shutdownErr := logger.Shutdown(o.timeout)
	drained := time.Since(start)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRow(table.Row{"Sent", sent.Load()})
	t.AppendRow(table.Row{"Produce time", produced.Round(time.Millisecond)})
	t.AppendRow(table.Row{"Drain time", drained.Round(time.Millisecond)})
	if stats, ok := logger.Stats(); ok {
		t.AppendSeparator()
		t.AppendRow(table.Row{"State", stats.State})
		t.AppendRow(table.Row{"Enqueued", stats.Enqueued})
		t.AppendRow(table.Row{"Written", stats.Written})
		t.AppendRow(table.Row{"Failed", stats.Failed})
		t.AppendRow(table.Row{"Dropped", stats.Dropped})
		t.AppendRow(table.Row{"Pending", stats.Pending})
	}
	if secs := drained.Seconds(); secs > 0 {
		t.AppendFooter(table.Row{"Throughput", fmt.Sprintf("%.0f msg/s", float64(sent.Load())/secs)})
	}
	t.Render()

	if shutdownErr != nil {
		return fmt.Errorf("logger shutdown: %w", shutdownErr)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
