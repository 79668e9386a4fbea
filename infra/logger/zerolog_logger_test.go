package logger

import (
	"testing"
)

func TestZerologLoggerMethods(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	l := NewZerologLogger("test")
	if l == nil {
		t.Fatalf("nil logger")
	}
	l.Debugf("debug %d", 1)
	l.Infof("info %s", "test")
	l.Warnf("warn")
	l.Errorf("error")
}

func TestNewReturnsZerolog(t *testing.T) {
	l := New("component")
	if _, ok := l.(*ZerologLogger); !ok {
		t.Fatalf("expected *ZerologLogger got %T", l)
	}
}

func TestNopLogger(t *testing.T) {
	var l Logger = NopLogger{}
	l.Debugf("ignored")
	l.Infof("ignored")
	l.Warnf("ignored")
	l.Errorf("ignored")
}
