//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

package utils

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Logger implements the logging facility. The verbose and debug
// messages are printed only when enabled in the logger params.
type Logger struct {
	out    io.Writer
	prefix string
	params *Params
}

// NewLogger creates a new logger outputting to the argument
// io.Writer. All messages are prefixed with prefix.
func NewLogger(out io.Writer, prefix string, params *Params) *Logger {
	if params == nil {
		params = NewParams()
	}
	return &Logger{
		out:    out,
		prefix: prefix,
		params: params,
	}
}

func (l *Logger) printf(kind, format string, a ...interface{}) string {
	msg := fmt.Sprintf(format, a...)
	if len(msg) > 0 && msg[len(msg)-1] != '\n' {
		msg += "\n"
	}
	if len(l.prefix) > 0 {
		fmt.Fprintf(l.out, "%s: %s%s", l.prefix, kind, msg)
	} else {
		fmt.Fprintf(l.out, "%s%s", kind, msg)
	}
	return msg
}

// Errorf logs an error message and returns it as an error. The
// returned error holds the first line of the message.
func (l *Logger) Errorf(format string, a ...interface{}) error {
	msg := l.printf("", format, a...)

	idx := strings.IndexRune(msg, '\n')
	if idx > 0 {
		msg = msg[:idx]
	}
	return errors.New(msg)
}

// Warningf logs a warning message.
func (l *Logger) Warningf(format string, a ...interface{}) {
	l.printf("warning: ", format, a...)
}

// Verbosef logs a message if verbose output is enabled.
func (l *Logger) Verbosef(format string, a ...interface{}) {
	if l.params.Verbose {
		l.printf("", format, a...)
	}
}

// Debugf logs a message if diagnostics output is enabled.
func (l *Logger) Debugf(format string, a ...interface{}) {
	if l.params.Diagnostics {
		l.printf("debug: ", format, a...)
	}
}
