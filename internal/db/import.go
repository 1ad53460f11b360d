package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/amirphl/ezpz-ti/internal/frame"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ListSeparator splits array cells in imported tables.
const ListSeparator = ";"

type rowReader struct {
	f   *frame.Frame
	row int
	err error
}

func (r *rowReader) fail(column string, err error) {
	if r.err == nil {
		r.err = fmt.Errorf("row %d, column %q: %w", r.row, column, err)
	}
}

// cell returns the textual value and whether it is present. Missing columns
// and nulls are absent.
func (r *rowReader) cell(column string) (string, bool) {
	c, err := r.f.Column(column)
	if err != nil || c.IsNull(r.row) {
		return "", false
	}
	v := strings.TrimSpace(c.Format(r.row))
	return v, v != ""
}

func (r *rowReader) text(column string) string {
	v, ok := r.cell(column)
	if !ok {
		r.fail(column, errors.New("required"))
	}
	return v
}

func (r *rowReader) optionalText(column string) sql.NullString {
	v, ok := r.cell(column)
	return sql.NullString{String: v, Valid: ok}
}

func (r *rowReader) list(column string) pq.StringArray {
	v, _ := r.cell(column)
	out := pq.StringArray{}
	for item := range strings.SplitSeq(v, ListSeparator) {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func (r *rowReader) nullInt(column string) sql.NullInt32 {
	v, ok := r.cell(column)
	if !ok {
		return sql.NullInt32{}
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil || n != float64(int32(n)) {
		r.fail(column, fmt.Errorf("not a 32-bit integer: %q", v))
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(n), Valid: true}
}

func (r *rowReader) id(generate bool) uuid.UUID {
	v, ok := r.cell("id")
	if !ok {
		if generate {
			return uuid.New()
		}
		r.fail("id", errors.New("required"))
		return uuid.Nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		r.fail("id", err)
	}
	return id
}

// PostingsFromFrame maps a table with postings columns to rows. Rows without
// an id get a fresh one; created_at defaults to now.
func PostingsFromFrame(f *frame.Frame) ([]Posting, error) {
	now := time.Now().UTC()
	out := make([]Posting, f.Height())
	for i := range out {
		r := &rowReader{f: f, row: i}
		p := Posting{
			ID:              r.id(true),
			URL:             r.text("url"),
			SearchQuery:     r.text("search_query"),
			InternalStatus:  r.text("internal_status"),
			Title:           r.text("title"),
			Description:     r.text("description"),
			Skills:          r.list("skills"),
			ExperienceLevel: r.text("experience_level"),
			TimeEstimate:    r.optionalText("time_estimate"),
			PayType:         r.text("pay_type"),
			Budget:          r.nullInt("budget"),
			MaxRate:         r.nullInt("max_rate"),
			MinRate:         r.nullInt("min_rate"),
			CreatedAt:       now,
		}
		uid, err := strconv.ParseInt(r.text("uid"), 10, 64)
		if err != nil && r.err == nil {
			r.fail("uid", err)
		}
		p.UID = uid
		if v, ok := r.cell("created_at"); ok {
			t, err := time.Parse(time.RFC3339, v)
			if err != nil {
				r.fail("created_at", err)
			}
			p.CreatedAt = t
		}
		if r.err != nil {
			return nil, r.err
		}
		out[i] = p
	}
	return out, nil
}

// ToolResultsFromFrame maps a table with tool_results columns to rows. The id
// column is required since it names the posting.
func ToolResultsFromFrame(f *frame.Frame) ([]ToolResult, error) {
	out := make([]ToolResult, f.Height())
	for i := range out {
		r := &rowReader{f: f, row: i}
		out[i] = ToolResult{
			ID:              r.id(false),
			Term:            r.text("term"),
			Stage:           r.text("stage"),
			TechField:       r.text("tech_field"),
			Sectors:         r.list("sectors"),
			Conditions:      r.list("conditions"),
			Miscs:           r.list("miscs"),
			Languages:       r.list("languages"),
			LocalProject:    r.text("local_project"),
			GlobalProject:   r.text("global_project"),
			FrontierProject: r.text("frontier_project"),
			TargetedPitch:   r.text("targeted_pitch"),
		}
		if r.err != nil {
			return nil, r.err
		}
	}
	return out, nil
}
