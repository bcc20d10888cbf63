package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/writer"
	"github.com/snowzach/rotatefilehook"
)

// SetupLogging keeps stdout free for the game. Without a log file, entries at
// the configured level go to stderr. With one, the file gets the configured
// level and stderr only warnings and worse.
func SetupLogging(log *logrus.Logger, c *Config, stderr io.Writer) error {
	level, err := c.LogLevel()
	if err != nil {
		return err
	}

	log.SetLevel(level)
	log.SetOutput(io.Discard)
	log.ReplaceHooks(make(logrus.LevelHooks))

	stderrLevel := level
	if c.Log.File != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   c.Log.File,
			MaxSize:    c.Log.MaxSizeMB,
			MaxBackups: c.Log.MaxBackups,
			MaxAge:     c.Log.MaxAgeDays,
			Level:      level,
			Formatter: &logrus.JSONFormatter{
				TimestampFormat: time.RFC3339,
			},
		})
		if err != nil {
			return fmt.Errorf("unable to open log file %s: %w", c.Log.File, err)
		}
		log.AddHook(hook)
		stderrLevel = min(level, logrus.WarnLevel)
	}

	if stderr == nil {
		stderr = os.Stderr
	}
	log.SetFormatter(&logrus.TextFormatter{ForceColors: c.Development()})
	log.AddHook(&writer.Hook{
		Writer:    stderr,
		LogLevels: logrus.AllLevels[:stderrLevel+1],
	})

	return nil
}
