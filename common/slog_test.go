package common

import (
	"log/slog"
	"testing"
)

func TestSlogRecord(t *testing.T) {
	rec, reset := SlogRecord(slog.LevelInfo)
	slog.Debug("dropped")
	slog.Info("kept", "n", 3)
	reset()
	slog.Info("after reset")

	got := rec.Records()
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	if got[0].Message != "kept" {
		t.Errorf("expected message kept, got %q", got[0].Message)
	}
	if n := got[0].Attrs["n"]; n.Kind() != slog.KindInt64 || n.Int64() != 3 {
		t.Errorf("expected n=3, got %v", n)
	}
	if slog.Default().Handler() == slog.Handler(rec) {
		t.Error("expected default handler restored")
	}
}
