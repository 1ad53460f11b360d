package db

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// MemoryStorage keeps rows in maps. It enforces the same domain, uniqueness
// and foreign key rules as the Postgres schema.
type MemoryStorage struct {
	mu sync.RWMutex

	domains  Domains
	postings map[uuid.UUID]Posting
	uids     map[int64]uuid.UUID
	results  map[uuid.UUID]ToolResult
}

func NewMemory(domains Domains) *MemoryStorage {
	return &MemoryStorage{
		domains:  domains,
		postings: make(map[uuid.UUID]Posting),
		uids:     make(map[int64]uuid.UUID),
		results:  make(map[uuid.UUID]ToolResult),
	}
}

func (m *MemoryStorage) Migrate(context.Context) error { return nil }

func clonePosting(p Posting) Posting {
	p.Skills = slices.Clone(p.Skills)
	return p
}

func cloneToolResult(r ToolResult) ToolResult {
	r.Sectors = slices.Clone(r.Sectors)
	r.Conditions = slices.Clone(r.Conditions)
	r.Miscs = slices.Clone(r.Miscs)
	r.Languages = slices.Clone(r.Languages)
	return r
}

// SavePostings is all-or-nothing like the Postgres transaction.
func (m *MemoryStorage) SavePostings(_ context.Context, postings []Posting) error {
	for i := range postings {
		if err := m.domains.Validate(postings[i]); err != nil {
			return fmt.Errorf("invalid posting at index %d: %w", i, err)
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	uids := make(map[int64]uuid.UUID, len(postings))
	for i, p := range postings {
		owner, ok := uids[p.UID]
		if !ok {
			owner, ok = m.uids[p.UID]
		}
		if ok && owner != p.ID {
			return fmt.Errorf("failed to save posting at index %d (uid %d): %w", i, p.UID, ErrDuplicate)
		}
		uids[p.UID] = p.ID
	}
	for _, p := range postings {
		if old, ok := m.postings[p.ID]; ok {
			delete(m.uids, old.UID)
			p.CreatedAt = old.CreatedAt
		}
		m.postings[p.ID] = clonePosting(p)
		m.uids[p.UID] = p.ID
	}
	return nil
}

func (m *MemoryStorage) SaveToolResults(_ context.Context, results []ToolResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, r := range results {
		if r.ID == uuid.Nil {
			return fmt.Errorf("invalid tool result at index %d: missing id", i)
		}
		if _, ok := m.postings[r.ID]; !ok {
			return fmt.Errorf("failed to save tool result at index %d (%s): posting %w", i, r.ID, ErrNotFound)
		}
	}
	for _, r := range results {
		m.results[r.ID] = cloneToolResult(r)
	}
	return nil
}

func (m *MemoryStorage) GetPosting(_ context.Context, id uuid.UUID) (Posting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.postings[id]
	if !ok {
		return Posting{}, fmt.Errorf("posting %s: %w", id, ErrNotFound)
	}
	return clonePosting(p), nil
}

func (m *MemoryStorage) ListPostings(_ context.Context, limit int) ([]Posting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Posting, 0, len(m.postings))
	for _, p := range m.postings {
		out = append(out, clonePosting(p))
	}
	slices.SortFunc(out, func(a, b Posting) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.UID, b.UID)
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemoryStorage) GetToolResult(_ context.Context, id uuid.UUID) (ToolResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.results[id]
	if !ok {
		return ToolResult{}, fmt.Errorf("tool result %s: %w", id, ErrNotFound)
	}
	return cloneToolResult(r), nil
}
