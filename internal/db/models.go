package db

import "time"

// Idea is a persisted sustainability proposal. Rows are append-only: the
// submission endpoint creates them and nothing in this service updates or
// deletes them afterwards.
type Idea struct {
	ID             uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Title          string    `json:"title" gorm:"type:text;not null"`
	Category       string    `json:"category" gorm:"type:text;not null;index"`
	Description    string    `json:"description" gorm:"type:text;not null"`
	ImpactMetric   *string   `json:"impact_metric,omitempty" gorm:"type:text"`
	SubmitterName  *string   `json:"submitter_name,omitempty" gorm:"type:text"`
	SubmitterEmail *string   `json:"submitter_email,omitempty" gorm:"type:text"`
	Upvotes        int       `json:"upvotes" gorm:"not null;default:0"`
	CreatedAt      time.Time `json:"created_at"`
}

func (Idea) TableName() string { return "ideas" }
