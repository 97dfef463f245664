package model

import "time"

// ReconcileRun records the outcome of a single reconcile invocation.
type ReconcileRun struct {
	ID        string    `json:"id" yaml:"id"`
	Kind      string    `json:"kind" yaml:"kind"` // "zone" or "host"
	Name      string    `json:"name" yaml:"name"`
	State     string    `json:"state" yaml:"state"` // requested state (present/enabled/disabled/absent)
	Changed   bool      `json:"changed" yaml:"changed"`
	Failed    bool      `json:"failed" yaml:"failed"`
	DryRun    bool      `json:"dry_run" yaml:"dry_run"`
	Msg       string    `json:"msg,omitempty" yaml:"msg,omitempty"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// Operation-scoped options for listing reconcile history.
type HistoryListOptions struct {
	Kind  string
	Name  string
	Limit int
}

type HistoryListOption func(*HistoryListOptions)

// Option helpers
func WithHistoryKind(kind string) HistoryListOption {
	return func(o *HistoryListOptions) { o.Kind = kind }
}
func WithHistoryName(name string) HistoryListOption {
	return func(o *HistoryListOptions) { o.Name = name }
}
func WithHistoryLimit(limit int) HistoryListOption {
	return func(o *HistoryListOptions) { o.Limit = limit }
}
