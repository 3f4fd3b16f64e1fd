// Package log prints diagnostics for the user and builds the structured
// logger handed to the interpreter.
package log

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"git.sr.ht/~mango/zpm/config"
)

var (
	CrashOnError           = false
	Output       io.Writer = os.Stderr
)

// Err prints a diagnostic to Output according to format.  It also prepends
// the program name and appends a newline.  This is much like the errx(3)
// function from C unless CrashOnError is false in which case this will act
// like warnx(3).
func Err(format string, args ...any) {
	fmt.Fprintf(Output, "zpm: "+format+"\n", args...)

	if CrashOnError {
		os.Exit(1)
	}
}

// New builds a logger writing to the standard error.  If debug is set the
// configured level is overridden with the debug level.
func New(cfg config.Logger, debug bool) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		var err error
		if level, err = zapcore.ParseLevel(cfg.Level); err != nil {
			return nil, fmt.Errorf("log setting: %w", err)
		}
	}
	if debug {
		level = zapcore.DebugLevel
	}

	cc := zap.NewProductionConfig()
	cc.DisableCaller = true
	cc.DisableStacktrace = true
	cc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cc.Encoding = cfg.Encoding
	if cc.Encoding == "" {
		cc.Encoding = "console"
	}
	cc.Level = zap.NewAtomicLevelAt(level)
	cc.Sampling = nil
	cc.OutputPaths = []string{"stderr"}
	cc.ErrorOutputPaths = []string{"stderr"}

	return cc.Build()
}
