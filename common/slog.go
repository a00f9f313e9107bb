package common

import (
	"context"
	"log/slog"
	"sync"
)

// SlogRecorder is a slog.Handler that keeps every record at or above its level.
type SlogRecorder struct {
	level slog.Level

	mu      sync.Mutex
	records []slog.Record
}

func (h *SlogRecorder) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *SlogRecorder) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r.Clone())
	return nil
}

// WithAttrs and WithGroup are not needed by the recorder; it returns itself.
func (h *SlogRecorder) WithAttrs(_ []slog.Attr) slog.Handler { return h }
func (h *SlogRecorder) WithGroup(_ string) slog.Handler      { return h }

// Records returns the messages recorded so far with their attributes flattened.
func (h *SlogRecorder) Records() []RecordedLog {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]RecordedLog, 0, len(h.records))
	for _, r := range h.records {
		rl := RecordedLog{Level: r.Level, Message: r.Message, Attrs: map[string]slog.Value{}}
		r.Attrs(func(a slog.Attr) bool {
			rl.Attrs[a.Key] = a.Value
			return true
		})
		out = append(out, rl)
	}
	return out
}

type RecordedLog struct {
	Level   slog.Level
	Message string
	Attrs   map[string]slog.Value
}

// SlogRecord installs a SlogRecorder as the default logger and returns it
// along with a func restoring the previous default.
//
//	rec, reset := common.SlogRecord(slog.LevelDebug)
//	defer reset()
func SlogRecord(level slog.Level) (rec *SlogRecorder, reset func()) {
	old := slog.Default()
	rec = &SlogRecorder{level: level}
	slog.SetDefault(slog.New(rec))
	return rec, func() {
		slog.SetDefault(old)
	}
}
