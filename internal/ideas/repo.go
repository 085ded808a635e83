package ideas

import (
	"fmt"

	"github.com/sustainovate/sustainovate-backend/internal/db"
	"gorm.io/gorm"
)

// Submission carries the caller-supplied fields of a new idea. The required
// fields are validated at the transport boundary before a Submission is
// built; optional fields persist as NULL when nil.
type Submission struct {
	Title          string
	Category       string
	Description    string
	ImpactMetric   *string
	SubmitterName  *string
	SubmitterEmail *string
}

// Repo persists and reads ideas through an injected store handle.
type Repo struct {
	db *gorm.DB
}

func NewRepo(d *gorm.DB) *Repo {
	return &Repo{db: d}
}

// Insert appends a new idea and returns its generated id. Upvotes and
// created_at are assigned by the store, not by the caller.
func (r *Repo) Insert(sub Submission) (uint, error) {
	idea := db.Idea{
		Title:          sub.Title,
		Category:       sub.Category,
		Description:    sub.Description,
		ImpactMetric:   sub.ImpactMetric,
		SubmitterName:  sub.SubmitterName,
		SubmitterEmail: sub.SubmitterEmail,
	}
	if err := r.db.Create(&idea).Error; err != nil {
		return 0, fmt.Errorf("failed to insert idea: %w", err)
	}
	return idea.ID, nil
}

// List returns ideas newest first, optionally filtered by category.
func (r *Repo) List(category string) ([]db.Idea, error) {
	query := r.db.Order("created_at DESC, id DESC")
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var out []db.Idea
	if err := query.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list ideas: %w", err)
	}
	return out, nil
}

// Get fetches one idea by id. Returns gorm.ErrRecordNotFound for unknown ids.
func (r *Repo) Get(id uint) (*db.Idea, error) {
	var idea db.Idea
	if err := r.db.First(&idea, id).Error; err != nil {
		return nil, err
	}
	return &idea, nil
}
