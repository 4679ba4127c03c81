package audit

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/BruksfildServices01/matcha-inventory/internal/models"
)

// Sink persists one audit entry.
type Sink interface {
	Log(ctx context.Context, ev Event) error
}

// EntryWriter persists audit rows. repository.AuditLogGormRepository
// implements it against Postgres.
type EntryWriter interface {
	Create(ctx context.Context, entry *models.AuditLog) error
}

// Logger writes audit entries through an EntryWriter.
type Logger struct {
	entries EntryWriter
}

func New(entries EntryWriter) *Logger {
	return &Logger{entries: entries}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		Actor:    ev.Actor,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metaJSON,
	}

	return l.entries.Create(ctx, &entry)
}

// SlogSink records audit entries as structured log lines. Used when no
// audit database is configured.
type SlogSink struct {
	log *slog.Logger
}

func NewSlogSink(log *slog.Logger) *SlogSink {
	return &SlogSink{log: log}
}

func (s *SlogSink) Log(ctx context.Context, ev Event) error {
	s.log.InfoContext(ctx, "audit",
		"actor", ev.Actor,
		"action", ev.Action,
		"entity", ev.Entity,
		"entity_id", ev.EntityID,
		"metadata", ev.Metadata,
	)
	return nil
}
