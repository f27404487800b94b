package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestNewFansOutByLevel(t *testing.T) {
	var stdout, errs bytes.Buffer
	log := New(&stdout, "debug",
		slog.NewJSONHandler(&errs, &slog.HandlerOptions{Level: slog.LevelError}),
	).With("session_id", "s-1")

	log.Debug("noise")
	log.Error("broken")

	if strings.Count(stdout.String(), "\n") != 2 {
		t.Fatalf("stdout sink got %q", stdout.String())
	}
	if strings.Count(errs.String(), "\n") != 1 || !strings.Contains(errs.String(), `"session_id":"s-1"`) {
		t.Fatalf("error sink got %q", errs.String())
	}
}

type failingHandler struct{ slog.Handler }

func (failingHandler) Handle(context.Context, slog.Record) error { return errors.New("sink down") }

func TestFanoutKeepsGoingAfterFailure(t *testing.T) {
	var buf bytes.Buffer
	ok := slog.NewJSONHandler(&buf, nil)
	f := fanout{failingHandler{ok}, ok}

	err := f.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelInfo, "hello", 0))
	if err == nil || !strings.Contains(err.Error(), "sink down") {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(buf.String(), "hello") {
		t.Fatalf("second handler skipped: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{"debug": slog.LevelDebug, "WARN": slog.LevelWarn, "error": slog.LevelError, "": slog.LevelInfo}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
