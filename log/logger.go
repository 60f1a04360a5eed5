// Copyright (c) linknl authors.
// MIT License

// Package log provides a small leveled logger used throughout linknl, with
// optional rotation when logging to a file. It exists so that the netlink
// package can log socket lifecycle and protocol events without depending on
// whatever logging convention the eventual caller prefers.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"sync"
)

// Log level.
const (
	LevelAlert = iota
	LevelError
	LevelWarning
	LevelInfo
	LevelDebug
)

// Log target.
const (
	TargetStderr = iota
	TargetSyslog
	TargetLogfile
	TargetStdout
)

const (
	logFileExtension = ".log"

	// Log file rotation default limits, in bytes.
	maxLogFileSize  = 5 * 1024 * 1024
	maxLogFileCount = 8
	rotationCheckFrq = 8
)

// Logger is a small leveled wrapper around the standard library logger.
type Logger struct {
	l            *log.Logger
	out          io.WriteCloser
	name         string
	level        int
	target       int
	maxFileSize  int
	maxFileCount int
	callCount    int
	directory    string
	mutex        sync.Mutex
}

// NewLogger creates a new Logger writing to the given target.
func NewLogger(name string, level int, target int, directory string) *Logger {
	logger := &Logger{
		name:         name,
		level:        level,
		maxFileSize:  maxLogFileSize,
		maxFileCount: maxLogFileCount,
		directory:    directory,
	}
	logger.l = log.New(nil, fmt.Sprintf("[%v] ", os.Getpid()), log.LstdFlags)
	logger.SetTarget(target)

	return logger
}

// SetName sets the log name.
func (logger *Logger) SetName(name string) {
	logger.name = name
}

// SetLevel sets the log chattiness.
func (logger *Logger) SetLevel(level int) {
	logger.level = level
}

// SetLogFileLimits sets the log file rotation limits.
func (logger *Logger) SetLogFileLimits(maxFileSize int, maxFileCount int) {
	logger.maxFileSize = maxFileSize
	logger.maxFileCount = maxFileCount
}

// Close closes the log stream.
func (logger *Logger) Close() {
	if logger.out != nil {
		logger.out.Close()
	}
}

// SetLogDirectory sets the directory logs are written to.
func (logger *Logger) SetLogDirectory(directory string) {
	logger.directory = directory
}

// GetLogDirectory returns the directory logs are written to.
func (logger *Logger) GetLogDirectory() string {
	return logger.directory
}

func (logger *Logger) getLogFileName() string {
	return path.Join(logger.directory, logger.name+logFileExtension)
}

// rotate checks the active log file size and rotates it if necessary.
func (logger *Logger) rotate() {
	if logger.target != TargetLogfile || logger.out == nil {
		return
	}

	fileName := logger.getLogFileName()
	fileInfo, err := os.Stat(fileName)
	if err != nil {
		return
	}

	if fileInfo.Size() < int64(logger.maxFileSize) {
		return
	}

	logger.out.Close()
	var fn1, fn2 string
	for n := logger.maxFileCount - 1; n >= 0; n-- {
		fn2 = fn1
		if n == 0 {
			fn1 = fileName
		} else {
			fn1 = fmt.Sprintf("%v.%v", fileName, n)
		}
		if fn2 != "" {
			os.Remove(fn2)
			os.Rename(fn1, fn2)
		}
	}

	logger.SetTarget(TargetLogfile)
}

// Request logs a structured request.
func (logger *Logger) Request(tag string, request interface{}, err error) {
	if err == nil {
		logger.Printf("[%s] received %T %+v", tag, request, request)
	} else {
		logger.Printf("[%s] failed to decode %T: %s", tag, request, err)
	}
}

// Response logs a structured response.
func (logger *Logger) Response(tag string, response interface{}, err error) {
	if err == nil {
		logger.Printf("[%s] sent %T %+v", tag, response, response)
	} else {
		logger.Printf("[%s] failed to encode %T: %s", tag, response, err)
	}
}

func (logger *Logger) logf(format string, args ...interface{}) {
	logger.mutex.Lock()
	defer logger.mutex.Unlock()

	if logger.callCount%rotationCheckFrq == 0 {
		logger.rotate()
	}
	logger.callCount++

	logger.l.Printf(format, args...)
}

// Logf logs a formatted string unconditionally.
func (logger *Logger) Logf(format string, args ...interface{}) {
	logger.logf(format, args...)
}

// Printf logs a formatted string at info level.
func (logger *Logger) Printf(format string, args ...interface{}) {
	if logger.level >= LevelInfo {
		logger.logf(format, args...)
	}
}

// Debugf logs a formatted string at debug level.
func (logger *Logger) Debugf(format string, args ...interface{}) {
	if logger.level >= LevelDebug {
		logger.logf(format, args...)
	}
}

// Errorf logs a formatted string at error level.
func (logger *Logger) Errorf(format string, args ...interface{}) {
	if logger.level >= LevelError {
		logger.logf(format, args...)
	}
}
