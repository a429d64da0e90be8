// FILE: lixenwraith/simplelog/compat/zap.go
package compat

import (
	"fmt"
	"sort"
	"strings"
	"time"

	log "github.com/lixenwraith/simplelog"
	"go.uber.org/zap/zapcore"
)

var _ zapcore.Core = (*ZapCore)(nil)

// ZapCore implements zapcore.Core on top of a simplelog Logger.
// The zap logger name becomes the entry's custom category and fields are
// appended to the message as sorted key=value pairs.
type ZapCore struct {
	logger       *log.Logger
	fields       []zapcore.Field
	syncTimeout  time.Duration
	emptyNameCat log.Category // Category for loggers without a name
}

// ZapOption allows customizing core behavior
type ZapOption func(*ZapCore)

// WithSyncTimeout bounds how long Sync waits for the file writer
func WithSyncTimeout(timeout time.Duration) ZapOption {
	return func(c *ZapCore) {
		c.syncTimeout = timeout
	}
}

// WithUnnamedCategory sets the category used when the zap logger has no name
func WithUnnamedCategory(category log.Category) ZapOption {
	return func(c *ZapCore) {
		c.emptyNameCat = category
	}
}

// NewZapCore creates a zap core writing to logger
func NewZapCore(logger *log.Logger, opts ...ZapOption) *ZapCore {
	core := &ZapCore{
		logger:       logger,
		syncTimeout:  time.Second,
		emptyNameCat: log.CategoryGeneral,
	}

	for _, opt := range opts {
		opt(core)
	}

	return core
}

// zapLevel maps zap levels onto the four log levels; DPanic and above map to Error
func zapLevel(l zapcore.Level) log.Level {
	switch {
	case l <= zapcore.DebugLevel:
		return log.LevelDebug
	case l == zapcore.InfoLevel:
		return log.LevelInfo
	case l == zapcore.WarnLevel:
		return log.LevelWarn
	default:
		return log.LevelError
	}
}

// Enabled implements zapcore.LevelEnabler
func (c *ZapCore) Enabled(l zapcore.Level) bool {
	return c.logger.Enabled(zapLevel(l))
}

// With returns a core that adds fields to every entry
func (c *ZapCore) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.fields = make([]zapcore.Field, 0, len(c.fields)+len(fields))
	clone.fields = append(clone.fields, c.fields...)
	clone.fields = append(clone.fields, fields...)
	return &clone
}

// Check adds this core to ce when the level is enabled
func (c *ZapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write converts a zap entry into a log entry
func (c *ZapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.fields {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}

	ts := ent.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	category, custom := c.emptyNameCat, ""
	if ent.LoggerName != "" {
		category, custom = log.CategoryNone, ent.LoggerName
	}

	c.logger.Write(log.NewEntryAt(ts, ent.Message+renderFields(enc.Fields), zapLevel(ent.Level), category, custom))
	return nil
}

// Sync flushes the underlying logger
func (c *ZapCore) Sync() error {
	return c.logger.Flush(c.syncTimeout)
}

// renderFields formats fields as " key=value" pairs in key order
func renderFields(fields map[string]any) string {
	if len(fields) == 0 {
		return ""
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteByte(' ')
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(fmt.Sprint(fields[k]))
	}
	return sb.String()
}
