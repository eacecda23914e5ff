package logging

import (
	"strings"
	"testing"
)

func TestSetLogger(t *testing.T) {
	old := DefaultLogger
	defer SetLogger(old)

	l := &logger{level: LevelDebug}
	SetLogger(l)
	if DefaultLogger != l {
		t.Error("SetLogger did not replace DefaultLogger")
	}
}

func TestSetLevel(t *testing.T) {
	SetLevel(LevelTrace)
	func() {
		defer func() {
			if err := recover(); err != nil {
				t.Errorf("SetLevel panicked: %s", err)
			}
		}()
		SetLevel(1000)
	}()
	SetLevel(LevelInfo)
}

func TestLoggerLevels(t *testing.T) {
	l := &logger{level: LevelTrace}
	l.Fatal("logger fatal test")
	l.Error("logger error test")
	l.Warn("logger warn test")
	l.Info("logger info test")
	l.Debug("logger debug test")
	l.Trace("logger trace test")
}

func TestPackageHelpers(t *testing.T) {
	Errorf("log.Errorf %d", 1)
	Warnf("log.Warnf")
	Infof("log.Infof")
	Debugf("log.Debugf")
	Tracef("log.Tracef")
}

func TestRegisterCallback(t *testing.T) {
	saved := callbacks
	defer func() { callbacks = saved }()
	callbacks = nil

	var got []Event
	RegisterCallback(func(ev Event) { got = append(got, ev) })

	Errorf("boom %d", 7)
	if len(got) != 1 {
		t.Fatalf("callback received %d events, want 1", len(got))
	}
	ev := got[0]
	if ev.Level != LevelError {
		t.Errorf("event level = %d, want %d", ev.Level, LevelError)
	}
	if ev.Message != "boom 7" {
		t.Errorf("event message = %q, want %q", ev.Message, "boom 7")
	}
	if !strings.HasSuffix(ev.File, "log_test.go") || ev.Line == 0 {
		t.Errorf("event source = %s:%d, want this file", ev.File, ev.Line)
	}
}

func TestCallbackFanOut(t *testing.T) {
	saved := callbacks
	defer func() { callbacks = saved }()
	callbacks = nil

	first, second := 0, 0
	RegisterCallback(func(Event) { first++ })
	RegisterCallback(func(Event) { second++ })

	Warnf("once")
	if first != 1 || second != 1 {
		t.Errorf("fan-out counts = (%d, %d), want (1, 1)", first, second)
	}
}

func TestCallbackIgnoresDefaultLevel(t *testing.T) {
	saved := callbacks
	defer func() { callbacks = saved }()
	callbacks = nil

	// Callbacks see every event even when the default logger filters it.
	SetLevel(LevelError)
	defer SetLevel(LevelInfo)

	seen := 0
	RegisterCallback(func(Event) { seen++ })

	Tracef("filtered from default output")
	if seen != 1 {
		t.Errorf("callback saw %d events, want 1", seen)
	}
}
