package observability

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogOptions configures NewLogger.
type LogOptions struct {
	Name  string
	Level string
	// File enables rotating file output instead of stderr.
	File       string
	MaxSize    int // megabytes
	MaxAge     int // days
	MaxBackups int
	JSON       bool
}

// NewLogger builds the process logger. The returned closer releases the
// log file, if any.
func NewLogger(opts LogOptions) (hclog.Logger, io.Closer) {
	var out io.Writer = os.Stderr
	var closer io.Closer = io.NopCloser(nil)
	if opts.File != "" {
		lj := &lumberjack.Logger{
			LocalTime:  true,
			MaxSize:    opts.MaxSize,
			MaxAge:     opts.MaxAge,
			MaxBackups: opts.MaxBackups,
			Filename:   opts.File,
			Compress:   true,
		}
		out, closer = lj, lj
	}

	level := hclog.LevelFromString(opts.Level)
	if level == hclog.NoLevel {
		level = hclog.Info
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       opts.Name,
		Level:      level,
		Output:     out,
		JSONFormat: opts.JSON,
	}), closer
}
