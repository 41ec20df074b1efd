package cmd

import (
	"io"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// setupLogging configures the global logrus logger. With a log file, output
// goes to a size-rotated file. In interactive mode without a log file,
// output is discarded so it does not tear the screen.
// The returned func closes the log file, if any.
func setupLogging(level, file string, interactive bool) (func(), error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return func() {}, err
	}
	logrus.SetLevel(lvl)

	switch {
	case file != "":
		w := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    32, // MB
			MaxBackups: 3,
			Compress:   true,
		}
		logrus.SetOutput(w)
		logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
		return func() { _ = w.Close() }, nil
	case interactive:
		logrus.SetOutput(io.Discard)
	}
	return func() {}, nil
}
