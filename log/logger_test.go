// Copyright (c) linknl authors.
// MIT License

package log

import (
	"fmt"
	"os"
	"strings"
	"testing"
)

const logName = "test"

// TestLogFileRotatesWhenSizeLimitIsReached tests that the log file rotates
// once the size limit is reached.
func TestLogFileRotatesWhenSizeLimitIsReached(t *testing.T) {
	dir := t.TempDir()
	l := NewLogger(logName, LevelInfo, TargetLogfile, dir)
	if l == nil {
		t.Fatal("failed to create logger")
	}

	l.SetLogFileLimits(512, 2)

	for i := 1; i <= 100; i++ {
		l.Logf("LogText %v", i)
	}
	l.Close()

	if _, err := os.Stat(l.getLogFileName()); err != nil {
		t.Error("failed to find active log file")
	}
	if _, err := os.Stat(l.getLogFileName() + ".1"); err != nil {
		t.Error("failed to find the 1st rotated log file")
	}
}

// TestPrintfIncludesPid tests that logged lines are tagged with the process id.
func TestPrintfIncludesPid(t *testing.T) {
	dir := t.TempDir()
	l := NewLogger(logName, LevelInfo, TargetLogfile, dir)
	l.Printf("LogText %v", 1)
	l.Close()

	logBytes, err := os.ReadFile(l.getLogFileName())
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}

	expected := fmt.Sprintf("[%v]", os.Getpid())
	if !strings.Contains(string(logBytes), expected) {
		t.Fatalf("unexpected log contents: %s", logBytes)
	}
}
