// Package logging prints coloured lifecycle messages on top of the standard logger.
package logging

import (
	"io"
	"log"
	"os"

	"github.com/fatih/color"
)

var std = log.New(os.Stderr, "", log.LstdFlags)

var (
	info = color.New(color.FgCyan).SprintfFunc()
	warn = color.New(color.FgYellow).SprintfFunc()
	fail = color.New(color.FgRed, color.Bold).SprintfFunc()
)

// SetOutput redirects all messages to w.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

// Logger returns the underlying logger so it can be handed to net/http.
func Logger() *log.Logger {
	return std
}

func Infof(format string, args ...interface{}) {
	std.Print(info(format, args...))
}

func Warnf(format string, args ...interface{}) {
	std.Print(warn(format, args...))
}

func Errorf(format string, args ...interface{}) {
	std.Print(fail(format, args...))
}
