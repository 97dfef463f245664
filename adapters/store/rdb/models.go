package rdb

import "time"

// ReconcileRunRecord is the RDB persistence model for domain ReconcileRun.
// Table name: reconcile_runs
type ReconcileRunRecord struct {
	ID        string    `gorm:"primaryKey;type:text;not null"`
	Kind      string    `gorm:"type:text;not null;index"`
	Name      string    `gorm:"type:text;not null;index"`
	State     string    `gorm:"type:text;not null"`
	Changed   bool      `gorm:"not null"`
	Failed    bool      `gorm:"not null"`
	DryRun    bool      `gorm:"not null"`
	Msg       string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null;index"`
}

func (ReconcileRunRecord) TableName() string { return "reconcile_runs" }
