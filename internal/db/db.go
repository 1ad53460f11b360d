// Package db
package db

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

//go:embed schema.sql
var SchemaSQL string

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidDomain = errors.New("value outside configured domain")
	ErrDuplicate     = errors.New("duplicate row")
)

// Posting is one row of postings.
type Posting struct {
	ID              uuid.UUID      `db:"id"`
	UID             int64          `db:"uid"`
	URL             string         `db:"url"`
	SearchQuery     string         `db:"search_query"`
	InternalStatus  string         `db:"internal_status"`
	Title           string         `db:"title"`
	Description     string         `db:"description"`
	Skills          pq.StringArray `db:"skills"`
	ExperienceLevel string         `db:"experience_level"`
	TimeEstimate    sql.NullString `db:"time_estimate"`
	PayType         string         `db:"pay_type"`
	Budget          sql.NullInt32  `db:"budget"`
	MaxRate         sql.NullInt32  `db:"max_rate"`
	MinRate         sql.NullInt32  `db:"min_rate"`
	CreatedAt       time.Time      `db:"created_at"`
}

// ToolResult is one row of tool_results. Its ID is the posting it describes.
type ToolResult struct {
	ID              uuid.UUID      `db:"id"`
	Term            string         `db:"term"`
	Stage           string         `db:"stage"`
	TechField       string         `db:"tech_field"`
	Sectors         pq.StringArray `db:"sectors"`
	Conditions      pq.StringArray `db:"conditions"`
	Miscs           pq.StringArray `db:"miscs"`
	Languages       pq.StringArray `db:"languages"`
	LocalProject    string         `db:"local_project"`
	GlobalProject   string         `db:"global_project"`
	FrontierProject string         `db:"frontier_project"`
	TargetedPitch   string         `db:"targeted_pitch"`
}

// Domains restricts the enum-like posting columns. A column without an entry
// accepts any value.
type Domains map[string][]string

func (d Domains) check(column, value string) error {
	allowed, ok := d[column]
	if !ok || slices.Contains(allowed, value) {
		return nil
	}
	return fmt.Errorf("%w: %s=%q, expected one of %v", ErrInvalidDomain, column, value, allowed)
}

// Validate checks p against the configured domains and the row invariants.
func (d Domains) Validate(p Posting) error {
	if p.ID == uuid.Nil {
		return fmt.Errorf("posting %d: missing id", p.UID)
	}
	checks := []struct{ column, value string }{
		{"search_query", p.SearchQuery},
		{"internal_status", p.InternalStatus},
		{"experience_level", p.ExperienceLevel},
		{"pay_type", p.PayType},
	}
	if p.TimeEstimate.Valid {
		checks = append(checks, struct{ column, value string }{"time_estimate", p.TimeEstimate.String})
	}
	for _, c := range checks {
		if err := d.check(c.column, c.value); err != nil {
			return fmt.Errorf("posting %d: %w", p.UID, err)
		}
	}
	if p.MinRate.Valid && p.MaxRate.Valid && p.MinRate.Int32 > p.MaxRate.Int32 {
		return fmt.Errorf("posting %d: min_rate %d above max_rate %d", p.UID, p.MinRate.Int32, p.MaxRate.Int32)
	}
	return nil
}

// Storage persists postings and their tool results.
type Storage interface {
	Migrate(ctx context.Context) error
	SavePostings(ctx context.Context, postings []Posting) error
	SaveToolResults(ctx context.Context, results []ToolResult) error
	GetPosting(ctx context.Context, id uuid.UUID) (Posting, error)
	ListPostings(ctx context.Context, limit int) ([]Posting, error)
	GetToolResult(ctx context.Context, id uuid.UUID) (ToolResult, error)
}
