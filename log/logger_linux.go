// Copyright (c) linknl authors.
// MIT License

//go:build linux
// +build linux

package log

import (
	"fmt"
	"io"
	"log/syslog"
	"os"
)

const logFilePerm = os.FileMode(0o664)

const syslogTag = "linknl"

// SetTarget sets the log target.
func (logger *Logger) SetTarget(target int) error {
	var out io.Writer
	var err error

	switch target {
	case TargetStderr:
		out = os.Stderr
	case TargetStdout:
		out = os.Stdout
	case TargetSyslog:
		out, err = syslog.New(syslog.LOG_INFO, syslogTag)
	case TargetLogfile:
		fileName := logger.getLogFileName()
		out, err = os.OpenFile(fileName, os.O_CREATE|os.O_APPEND|os.O_RDWR, logFilePerm)
	default:
		err = fmt.Errorf("invalid log target %d", target)
	}

	if err == nil {
		logger.target = target
		logger.l.SetOutput(out)
		if closer, ok := out.(io.WriteCloser); ok {
			logger.out = closer
		}
	}

	return err
}
