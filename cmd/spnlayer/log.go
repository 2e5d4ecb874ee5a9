package main

import (
	"io"

	"github.com/sirupsen/logrus"
)

// newLogger returns a text logger writing to out. An unknown level falls
// back to info.
func newLogger(out io.Writer, level string) *logrus.Entry {
	log := logrus.New()
	log.Out = out
	log.Formatter = &logrus.TextFormatter{DisableTimestamp: true}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	return log.WithFields(logrus.Fields{
		"version": VERSION,
	})
}
