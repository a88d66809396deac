package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const timestampFormat = "02-01-2006 15:04:05"

func init() {
	formatter := new(log.TextFormatter)
	formatter.TimestampFormat = timestampFormat
	formatter.FullTimestamp = true
	log.SetFormatter(formatter)
	log.SetOutput(os.Stderr)
}

// Configure sets the log level and, if file is not empty, mirrors log output
// into a size-rotated log file.
func Configure(level, file string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", level)
	}
	log.SetLevel(lvl)

	if file == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return errors.Wrapf(err, "failed to create log directory %q", filepath.Dir(file))
	}

	log.SetOutput(io.MultiWriter(os.Stderr, &lumberjack.Logger{
		Filename:   file,
		MaxSize:    10, // MB
		MaxBackups: 5,
		MaxAge:     14, // days
		Compress:   true,
	}))

	return nil
}
