package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amirphl/ezpz-ti/internal/db/conf"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Transaction context key
type txKey struct{}

// WithTransaction adds a transaction to the context
func WithTransaction(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// GetTransaction retrieves a transaction from context, or returns nil if not present
func GetTransaction(ctx context.Context) *sqlx.Tx {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return nil
}

type Postgres struct {
	db      *sqlx.DB
	domains Domains
	timeout time.Duration
}

func New(c conf.Config, domains Domains) (*Postgres, error) {
	if c.DB == nil {
		return nil, errors.New("db: nil connection")
	}
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Postgres{db: c.DB, domains: domains, timeout: timeout}, nil
}

func (p *Postgres) GetDB() *sqlx.DB {
	return p.db
}

// executeWithTransaction runs fn in the context's transaction if there is one,
// otherwise in a new transaction it commits or rolls back.
func (p *Postgres) executeWithTransaction(ctx context.Context, fn func(*sqlx.Tx) error) error {
	if tx := GetTransaction(ctx); tx != nil {
		return fn(tx)
	}

	tx, err := p.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if fnErr := fn(tx); fnErr != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction rollback failed: %w (original error: %v)", rbErr, fnErr)
		}
		return fnErr
	}

	if commitErr := tx.Commit(); commitErr != nil {
		return fmt.Errorf("transaction commit failed: %w", commitErr)
	}
	return nil
}

// EnumColumns are the posting columns backed by e_db_<column> enum types when
// a domain is configured for them.
var EnumColumns = []string{"search_query", "internal_status", "experience_level", "time_estimate", "pay_type"}

// enumStatements creates each configured enum type once and retypes its
// column. An existing type keeps its labels.
func enumStatements(d Domains) []string {
	var stmts []string
	for _, column := range EnumColumns {
		values := d[column]
		if len(values) == 0 {
			continue
		}
		labels := make([]string, len(values))
		for i, v := range values {
			labels[i] = pq.QuoteLiteral(v)
		}
		typ := pq.QuoteIdentifier("e_db_" + column)
		stmts = append(stmts,
			fmt.Sprintf(`DO $$ BEGIN CREATE TYPE %s AS ENUM (%s); EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
				typ, strings.Join(labels, ", ")),
			fmt.Sprintf(`ALTER TABLE postings ALTER COLUMN %s TYPE %s USING %s::text::%s`, column, typ, column, typ),
		)
	}
	return stmts
}

func (p *Postgres) Migrate(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	return p.executeWithTransaction(ctx, func(tx *sqlx.Tx) error {
		var stmts []string
		for stmt := range strings.SplitSeq(SchemaSQL, ";") {
			if stmt = strings.TrimSpace(stmt); stmt != "" {
				stmts = append(stmts, stmt)
			}
		}
		for _, stmt := range append(stmts, enumStatements(p.domains)...) {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("failed to apply schema statement %q: %w", stmt, err)
			}
		}
		return nil
	})
}

func wrapPQ(err error, what string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505":
			return fmt.Errorf("%s: %w: %s", what, ErrDuplicate, pqErr.Detail)
		case "23503":
			return fmt.Errorf("%s: %w: %s", what, ErrNotFound, pqErr.Detail)
		}
	}
	return fmt.Errorf("%s: %w", what, err)
}

const insertPosting = `
	INSERT INTO postings (id, uid, url, search_query, internal_status, title, description, skills,
		experience_level, time_estimate, pay_type, budget, max_rate, min_rate, created_at)
	VALUES (:id, :uid, :url, :search_query, :internal_status, :title, :description, :skills,
		:experience_level, :time_estimate, :pay_type, :budget, :max_rate, :min_rate, :created_at)
	ON CONFLICT (id) DO UPDATE SET
		url=EXCLUDED.url, search_query=EXCLUDED.search_query, internal_status=EXCLUDED.internal_status,
		title=EXCLUDED.title, description=EXCLUDED.description, skills=EXCLUDED.skills,
		experience_level=EXCLUDED.experience_level, time_estimate=EXCLUDED.time_estimate,
		pay_type=EXCLUDED.pay_type, budget=EXCLUDED.budget, max_rate=EXCLUDED.max_rate, min_rate=EXCLUDED.min_rate`

// SavePostings validates every row first, then upserts them in one transaction.
func (p *Postgres) SavePostings(ctx context.Context, postings []Posting) error {
	if len(postings) == 0 {
		return nil
	}
	for i := range postings {
		if err := p.domains.Validate(postings[i]); err != nil {
			return fmt.Errorf("invalid posting at index %d: %w", i, err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout*time.Duration(len(postings)/100+1))
	defer cancel()

	return p.executeWithTransaction(ctx, func(tx *sqlx.Tx) error {
		stmt, err := tx.PrepareNamedContext(ctx, insertPosting)
		if err != nil {
			return fmt.Errorf("failed to prepare insert statement: %w", err)
		}
		defer stmt.Close()

		for i, row := range postings {
			if _, err := stmt.ExecContext(ctx, row); err != nil {
				return wrapPQ(err, fmt.Sprintf("failed to save posting at index %d (uid %d)", i, row.UID))
			}
		}
		return nil
	})
}

const insertToolResult = `
	INSERT INTO tool_results (id, term, stage, tech_field, sectors, conditions, miscs, languages,
		local_project, global_project, frontier_project, targeted_pitch)
	VALUES (:id, :term, :stage, :tech_field, :sectors, :conditions, :miscs, :languages,
		:local_project, :global_project, :frontier_project, :targeted_pitch)
	ON CONFLICT (id) DO UPDATE SET
		term=EXCLUDED.term, stage=EXCLUDED.stage, tech_field=EXCLUDED.tech_field, sectors=EXCLUDED.sectors,
		conditions=EXCLUDED.conditions, miscs=EXCLUDED.miscs, languages=EXCLUDED.languages,
		local_project=EXCLUDED.local_project, global_project=EXCLUDED.global_project,
		frontier_project=EXCLUDED.frontier_project, targeted_pitch=EXCLUDED.targeted_pitch`

// SaveToolResults upserts results. Each must reference an existing posting.
func (p *Postgres) SaveToolResults(ctx context.Context, results []ToolResult) error {
	if len(results) == 0 {
		return nil
	}
	for i, r := range results {
		if r.ID == uuid.Nil {
			return fmt.Errorf("invalid tool result at index %d: missing id", i)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout*time.Duration(len(results)/100+1))
	defer cancel()

	return p.executeWithTransaction(ctx, func(tx *sqlx.Tx) error {
		stmt, err := tx.PrepareNamedContext(ctx, insertToolResult)
		if err != nil {
			return fmt.Errorf("failed to prepare insert statement: %w", err)
		}
		defer stmt.Close()

		for i, row := range results {
			if _, err := stmt.ExecContext(ctx, row); err != nil {
				return wrapPQ(err, fmt.Sprintf("failed to save tool result at index %d (%s)", i, row.ID))
			}
		}
		return nil
	})
}

func (p *Postgres) queryer(ctx context.Context) sqlx.QueryerContext {
	if tx := GetTransaction(ctx); tx != nil {
		return tx
	}
	return p.db
}

func (p *Postgres) GetPosting(ctx context.Context, id uuid.UUID) (Posting, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	var row Posting
	err := sqlx.GetContext(ctx, p.queryer(ctx), &row, `SELECT * FROM postings WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Posting{}, fmt.Errorf("posting %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Posting{}, fmt.Errorf("failed to get posting %s: %w", id, err)
	}
	return row, nil
}

// ListPostings returns the newest postings first.
func (p *Postgres) ListPostings(ctx context.Context, limit int) ([]Posting, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	var rows []Posting
	err := sqlx.SelectContext(ctx, p.queryer(ctx), &rows,
		`SELECT * FROM postings ORDER BY created_at DESC, uid LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list postings: %w", err)
	}
	return rows, nil
}

func (p *Postgres) GetToolResult(ctx context.Context, id uuid.UUID) (ToolResult, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	var row ToolResult
	err := sqlx.GetContext(ctx, p.queryer(ctx), &row, `SELECT * FROM tool_results WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ToolResult{}, fmt.Errorf("tool result %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return ToolResult{}, fmt.Errorf("failed to get tool result %s: %w", id, err)
	}
	return row, nil
}
