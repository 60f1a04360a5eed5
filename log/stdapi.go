// Copyright (c) linknl authors.
// MIT License

package log

// stdLog is a package-level logger for callers that don't need their own instance.
var stdLog = NewLogger("linknl", LevelInfo, TargetStderr, "")

// Std returns the package-level logger.
func Std() *Logger {
	return stdLog
}

// SetStd replaces the package-level logger, e.g. with one pointed at a log file.
func SetStd(l *Logger) {
	stdLog = l
}

func SetLevel(level int) {
	stdLog.SetLevel(level)
}

func SetLogFileLimits(maxFileSize int, maxFileCount int) {
	stdLog.SetLogFileLimits(maxFileSize, maxFileCount)
}

func Close() {
	stdLog.Close()
}

func Logf(format string, args ...interface{}) {
	stdLog.Logf(format, args...)
}

func Printf(format string, args ...interface{}) {
	stdLog.Printf(format, args...)
}

func Debugf(format string, args ...interface{}) {
	stdLog.Debugf(format, args...)
}

func Errorf(format string, args ...interface{}) {
	stdLog.Errorf(format, args...)
}
