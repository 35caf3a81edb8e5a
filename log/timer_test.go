package log

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"
)

type mockLogger struct {
	bytes.Buffer
}

func (l *mockLogger) write(level string, v ...interface{}) {
	l.WriteString(level + " " + fmt.Sprint(v...) + "\n")
}
func (l *mockLogger) Debug(v ...interface{})   { l.write("DEBUG", v...) }
func (l *mockLogger) Notice(v ...interface{})  { l.write("NOTICE", v...) }
func (l *mockLogger) Info(v ...interface{})    { l.write("INFO", v...) }
func (l *mockLogger) Warning(v ...interface{}) { l.write("WARNING", v...) }
func (l *mockLogger) Error(v ...interface{})   { l.write("ERROR", v...) }
func (l *mockLogger) Debugf(f string, v ...interface{}) {
	l.write("DEBUG", fmt.Sprintf(f, v...))
}
func (l *mockLogger) Noticef(f string, v ...interface{}) {
	l.write("NOTICE", fmt.Sprintf(f, v...))
}
func (l *mockLogger) Infof(f string, v ...interface{}) {
	l.write("INFO", fmt.Sprintf(f, v...))
}
func (l *mockLogger) Warningf(f string, v ...interface{}) {
	l.write("WARNING", fmt.Sprintf(f, v...))
}
func (l *mockLogger) Errorf(f string, v ...interface{}) {
	l.write("ERROR", fmt.Sprintf(f, v...))
}

func TestTimerStartStop(t *testing.T) {
	logger := &mockLogger{}
	tm := NewTimer(logger).(*loggingTimer)

	clock := time.Unix(0, 0)
	tm.now = func() time.Time { return clock }

	tm.Start("render")
	clock = clock.Add(25 * time.Millisecond)
	elapsed := tm.Stop("render")

	if elapsed != 25*time.Millisecond {
		t.Fatalf("expected elapsed time to be 25ms; got %s", elapsed)
	}

	expLog := "INFO render: 25ms\n"
	if logger.String() != expLog {
		t.Fatalf("expected log output %q; got %q", expLog, logger.String())
	}
}

func TestTimerStopWithoutStart(t *testing.T) {
	logger := &mockLogger{}
	tm := NewTimer(logger)

	if elapsed := tm.Stop("render"); elapsed != 0 {
		t.Fatalf("expected elapsed time to be 0; got %s", elapsed)
	}

	if !strings.HasPrefix(logger.String(), "WARNING") {
		t.Fatalf("expected a warning to be logged; got %q", logger.String())
	}
}

func TestTimerStopTwice(t *testing.T) {
	logger := &mockLogger{}
	tm := NewTimer(logger)

	tm.Start("decode")
	tm.Stop("decode")
	if elapsed := tm.Stop("decode"); elapsed != 0 {
		t.Fatalf("expected second stop to return 0; got %s", elapsed)
	}
}
