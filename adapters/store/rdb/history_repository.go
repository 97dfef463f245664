package rdb

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/csops-dev/csops/domain"
	"github.com/csops-dev/csops/domain/model"
)

// HistoryRepository is a GORM-backed implementation of domain.HistoryRepository.
type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func toRecord(r *model.ReconcileRun) *ReconcileRunRecord {
	return &ReconcileRunRecord{
		ID:        r.ID,
		Kind:      r.Kind,
		Name:      r.Name,
		State:     r.State,
		Changed:   r.Changed,
		Failed:    r.Failed,
		DryRun:    r.DryRun,
		Msg:       r.Msg,
		CreatedAt: r.CreatedAt,
	}
}

func toModel(r *ReconcileRunRecord) *model.ReconcileRun {
	return &model.ReconcileRun{
		ID:        r.ID,
		Kind:      r.Kind,
		Name:      r.Name,
		State:     r.State,
		Changed:   r.Changed,
		Failed:    r.Failed,
		DryRun:    r.DryRun,
		Msg:       r.Msg,
		CreatedAt: r.CreatedAt,
	}
}

func (r *HistoryRepository) Append(ctx context.Context, run *model.ReconcileRun) error {
	rec := toRecord(run)
	if rec.ID == "" {
		// Generate a unique ID if not provided
		rec.ID = "run-" + uuid.NewString()
		run.ID = rec.ID
	}
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *HistoryRepository) List(ctx context.Context, opts ...model.HistoryListOption) ([]*model.ReconcileRun, error) {
	var o model.HistoryListOptions
	for _, opt := range opts {
		opt(&o)
	}
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if o.Kind != "" {
		q = q.Where("kind = ?", o.Kind)
	}
	if o.Name != "" {
		q = q.Where("name = ?", o.Name)
	}
	if o.Limit > 0 {
		q = q.Limit(o.Limit)
	}
	var recs []ReconcileRunRecord
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]*model.ReconcileRun, 0, len(recs))
	for i := range recs {
		out = append(out, toModel(&recs[i]))
	}
	return out, nil
}

// Ensure interface satisfaction.
var _ domain.HistoryRepository = (*HistoryRepository)(nil)
