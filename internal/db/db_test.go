package db

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/amirphl/ezpz-ti/internal/frame"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDomains = Domains{
	"search_query":     {"golang", "rust"},
	"internal_status":  {"new", "applied"},
	"experience_level": {"entry", "expert"},
	"time_estimate":    {"short", "long"},
	"pay_type":         {"fixed", "hourly"},
}

func samplePosting(uid int64) Posting {
	return Posting{
		ID:              uuid.New(),
		UID:             uid,
		URL:             "https://example.com/job",
		SearchQuery:     "golang",
		InternalStatus:  "new",
		Title:           "Indicator service",
		Description:     "Build it",
		Skills:          pq.StringArray{"go", "sql"},
		ExperienceLevel: "expert",
		TimeEstimate:    sql.NullString{String: "short", Valid: true},
		PayType:         "hourly",
		MinRate:         sql.NullInt32{Int32: 40, Valid: true},
		MaxRate:         sql.NullInt32{Int32: 80, Valid: true},
		CreatedAt:       time.Date(2024, 1, int(uid), 0, 0, 0, 0, time.UTC),
	}
}

func TestDomainsValidate(t *testing.T) {
	p := samplePosting(1)
	require.NoError(t, testDomains.Validate(p))
	require.NoError(t, Domains(nil).Validate(p))

	bad := p
	bad.PayType = "equity"
	err := testDomains.Validate(bad)
	assert.ErrorIs(t, err, ErrInvalidDomain)
	assert.Contains(t, err.Error(), "pay_type")

	bad = p
	bad.TimeEstimate = sql.NullString{String: "forever", Valid: true}
	assert.ErrorIs(t, testDomains.Validate(bad), ErrInvalidDomain)

	bad.TimeEstimate = sql.NullString{}
	assert.NoError(t, testDomains.Validate(bad))

	bad = p
	bad.MinRate.Int32 = 100
	assert.Error(t, testDomains.Validate(bad))

	bad = p
	bad.ID = uuid.Nil
	assert.Error(t, testDomains.Validate(bad))
}

func TestMemoryStorage(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(testDomains)
	require.NoError(t, m.Migrate(ctx))

	a, b := samplePosting(1), samplePosting(2)
	require.NoError(t, m.SavePostings(ctx, []Posting{a, b}))

	got, err := m.GetPosting(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a, got)

	got.Skills[0] = "mutated"
	again, _ := m.GetPosting(ctx, a.ID)
	assert.Equal(t, "go", again.Skills[0])

	list, err := m.ListPostings(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, b.ID, list[0].ID)

	list, _ = m.ListPostings(ctx, 1)
	assert.Len(t, list, 1)

	dup := samplePosting(1)
	assert.ErrorIs(t, m.SavePostings(ctx, []Posting{dup}), ErrDuplicate)

	invalid := samplePosting(3)
	invalid.SearchQuery = "java"
	assert.ErrorIs(t, m.SavePostings(ctx, []Posting{samplePosting(4), invalid}), ErrInvalidDomain)
	list, _ = m.ListPostings(ctx, 10)
	assert.Len(t, list, 2)

	_, err = m.GetPosting(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryToolResults(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(nil)
	p := samplePosting(1)
	require.NoError(t, m.SavePostings(ctx, []Posting{p}))

	r := ToolResult{ID: p.ID, Term: "ti", Stage: "draft", Languages: pq.StringArray{"go"}}
	require.NoError(t, m.SaveToolResults(ctx, []ToolResult{r}))

	got, err := m.GetToolResult(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, r, got)

	orphan := ToolResult{ID: uuid.New(), Term: "x"}
	assert.ErrorIs(t, m.SaveToolResults(ctx, []ToolResult{orphan}), ErrNotFound)
	assert.Error(t, m.SaveToolResults(ctx, []ToolResult{{Term: "no id"}}))

	_, err = m.GetToolResult(ctx, orphan.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

const postingsCSV = `uid,url,search_query,internal_status,title,description,skills,experience_level,time_estimate,pay_type,budget,max_rate,min_rate
1,https://a,golang,new,A,first,go; sql,entry,short,fixed,500,,
2,https://b,rust,applied,B,second,,expert,,hourly,,90,50
`

func TestPostingsFromFrame(t *testing.T) {
	f, err := frame.ReadCSV(strings.NewReader(postingsCSV))
	require.NoError(t, err)

	rows, err := PostingsFromFrame(f)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.NotEqual(t, uuid.Nil, rows[0].ID)
	assert.NotEqual(t, rows[0].ID, rows[1].ID)
	assert.Equal(t, int64(1), rows[0].UID)
	assert.Equal(t, pq.StringArray{"go", "sql"}, rows[0].Skills)
	assert.Equal(t, sql.NullInt32{Int32: 500, Valid: true}, rows[0].Budget)
	assert.False(t, rows[0].MaxRate.Valid)
	assert.Equal(t, sql.NullString{String: "short", Valid: true}, rows[0].TimeEstimate)

	assert.Equal(t, pq.StringArray{}, rows[1].Skills)
	assert.False(t, rows[1].TimeEstimate.Valid)
	assert.Equal(t, sql.NullInt32{Int32: 50, Valid: true}, rows[1].MinRate)

	for _, p := range rows {
		assert.NoError(t, testDomains.Validate(p))
	}
}

func TestFromFrameErrors(t *testing.T) {
	f, err := frame.New(frame.NewString("uid", []string{"1"}))
	require.NoError(t, err)
	_, err = PostingsFromFrame(f)
	assert.ErrorContains(t, err, "url")

	f, err = frame.New(frame.NewString("term", []string{"x"}))
	require.NoError(t, err)
	_, err = ToolResultsFromFrame(f)
	assert.ErrorContains(t, err, `"id"`)

	f, err = frame.New(frame.NewString("id", []string{"not-a-uuid"}))
	require.NoError(t, err)
	_, err = ToolResultsFromFrame(f)
	assert.Error(t, err)
}

func TestToolResultsFromFrame(t *testing.T) {
	id := uuid.New()
	cols := []frame.Column{frame.NewString("id", []string{id.String()})}
	for _, name := range []string{"term", "stage", "tech_field", "local_project", "global_project", "frontier_project", "targeted_pitch"} {
		cols = append(cols, frame.NewString(name, []string{name + "-value"}))
	}
	cols = append(cols, frame.NewString("languages", []string{"go;rust"}))
	f, err := frame.New(cols...)
	require.NoError(t, err)

	rows, err := ToolResultsFromFrame(f)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, id, rows[0].ID)
	assert.Equal(t, "stage-value", rows[0].Stage)
	assert.Equal(t, pq.StringArray{"go", "rust"}, rows[0].Languages)
	assert.Equal(t, pq.StringArray{}, rows[0].Sectors)
}
