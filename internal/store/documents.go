// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/shafayet9780/madrasatul-quran-dhaka-sub000/internal/model"
)

var (
	// ErrNotFound is returned when a requested document does not exist.
	ErrNotFound = errors.New("document not found")
	// ErrReadOnly is returned when a mutation is attempted through a
	// preview (read-only) handle.
	ErrReadOnly = errors.New("store handle is read-only")
)

// Reader is the read-only view of the document store. Components that
// only analyze content take a Reader so a preview handle or a test
// double can be injected.
type Reader interface {
	GetDocument(ctx context.Context, id string) (model.Document, error)
	Query(ctx context.Context, q Query) ([]model.Document, error)
}

// Store provides access to the document database. Writes are
// last-write-wins; no optimistic-concurrency token is used.
type Store struct {
	db       *sql.DB
	logger   *slog.Logger
	readOnly bool
}

// New creates a read-write store handle.
func New(db *sql.DB, logger *slog.Logger) *Store {
	return &Store{db: db, logger: logger}
}

// NewPreview creates a read-only store handle. Mutations through it
// fail with ErrReadOnly.
func NewPreview(db *sql.DB, logger *slog.Logger) *Store {
	return &Store{db: db, logger: logger, readOnly: true}
}

// Query describes a document selection. Type filtering happens in SQL;
// path conditions are evaluated against the JSON body.
type Query struct {
	// Type restricts results to one document type. Empty matches all.
	Type string
	// Eq requires dotted paths to equal the given string form.
	Eq map[string]string
	// NotAfter requires a dotted path to hold an RFC 3339 timestamp at
	// or before the given time.
	NotAfter map[string]time.Time
	// Exists requires dotted paths to be present.
	Exists []string
	// OrderBy sorts results by a dotted path (string comparison).
	OrderBy string
	// Descending reverses the OrderBy direction.
	Descending bool
	// Limit caps the number of results; 0 means no cap.
	Limit int
}

// GetDocument fetches a single document by id.
func (s *Store) GetDocument(ctx context.Context, id string) (model.Document, error) {
	var doc model.Document
	var data string
	row := s.db.QueryRowContext(ctx,
		`SELECT id, type, data FROM documents WHERE id = ?`, id)
	if err := row.Scan(&doc.ID, &doc.Type, &data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Document{}, ErrNotFound
		}
		return model.Document{}, fmt.Errorf("getting document %s: %w", id, err)
	}
	doc.Raw = []byte(data)
	return doc, nil
}

// Query returns all documents matching the query.
func (s *Store) Query(ctx context.Context, q Query) ([]model.Document, error) {
	query := `SELECT id, type, data FROM documents`
	var args []any
	if q.Type != "" {
		query += ` WHERE type = ?`
		args = append(args, q.Type)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var docs []model.Document
	for rows.Next() {
		var doc model.Document
		var data string
		if err := rows.Scan(&doc.ID, &doc.Type, &data); err != nil {
			return nil, fmt.Errorf("scanning document row: %w", err)
		}
		doc.Raw = []byte(data)
		if matches(doc, q) {
			docs = append(docs, doc)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating document rows: %w", err)
	}

	if q.OrderBy != "" {
		sort.SliceStable(docs, func(i, j int) bool {
			a := docs[i].Get(q.OrderBy).String()
			b := docs[j].Get(q.OrderBy).String()
			if q.Descending {
				return a > b
			}
			return a < b
		})
	}
	if q.Limit > 0 && len(docs) > q.Limit {
		docs = docs[:q.Limit]
	}
	return docs, nil
}

// matches evaluates the path conditions of a query against a document.
func matches(doc model.Document, q Query) bool {
	for path, want := range q.Eq {
		if doc.Get(path).String() != want {
			return false
		}
	}
	for _, path := range q.Exists {
		if !doc.Get(path).Exists() {
			return false
		}
	}
	for path, cutoff := range q.NotAfter {
		v := doc.Get(path)
		if !v.Exists() || v.String() == "" {
			return false
		}
		t, err := time.Parse(time.RFC3339, v.String())
		if err != nil || t.After(cutoff) {
			return false
		}
	}
	return true
}

// Create inserts a new document of the given type. When the body lacks
// an id one is generated. The id and type are written into the body as
// well so path queries can address them.
func (s *Store) Create(ctx context.Context, docType string, body map[string]any) (model.Document, error) {
	if s.readOnly {
		return model.Document{}, ErrReadOnly
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return model.Document{}, fmt.Errorf("marshaling document body: %w", err)
	}

	id := gjson.GetBytes(raw, "id").String()
	if id == "" {
		id = uuid.NewString()
	}
	if raw, err = sjson.SetBytes(raw, "id", id); err != nil {
		return model.Document{}, fmt.Errorf("setting document id: %w", err)
	}
	if raw, err = sjson.SetBytes(raw, "type", docType); err != nil {
		return model.Document{}, fmt.Errorf("setting document type: %w", err)
	}

	now := time.Now().UTC()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO documents (id, type, data, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		id, docType, string(raw), now, now)
	if err != nil {
		return model.Document{}, fmt.Errorf("inserting document: %w", err)
	}

	s.logger.Debug("document created", "id", id, "type", docType)
	return model.Document{ID: id, Type: docType, Raw: raw}, nil
}

// Delete removes a document by id. Deleting a missing document is a
// no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	if s.readOnly {
		return ErrReadOnly
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting document %s: %w", id, err)
	}
	return nil
}

// Patch starts a patch builder for a document. Operations accumulate
// and apply atomically on Commit.
func (s *Store) Patch(id string) *Patch {
	return &Patch{store: s, id: id}
}

// Patch applies dotted-path set and unset operations to one document.
type Patch struct {
	store  *Store
	id     string
	sets   []patchOp
	unsets []string
}

type patchOp struct {
	path  string
	value any
}

// Set records a value to write at a dotted path. time.Time values are
// stored as RFC 3339 strings.
func (p *Patch) Set(path string, value any) *Patch {
	if t, ok := value.(time.Time); ok {
		value = t.UTC().Format(time.RFC3339)
	}
	p.sets = append(p.sets, patchOp{path: path, value: value})
	return p
}

// Unset records dotted paths to remove.
func (p *Patch) Unset(paths ...string) *Patch {
	p.unsets = append(p.unsets, paths...)
	return p
}

// Commit applies the accumulated operations and returns the updated
// document. The write is last-write-wins over the stored body.
func (p *Patch) Commit(ctx context.Context) (model.Document, error) {
	if p.store.readOnly {
		return model.Document{}, ErrReadOnly
	}

	tx, err := p.store.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Document{}, fmt.Errorf("beginning patch transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var docType, data string
	row := tx.QueryRowContext(ctx, `SELECT type, data FROM documents WHERE id = ?`, p.id)
	if err := row.Scan(&docType, &data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Document{}, ErrNotFound
		}
		return model.Document{}, fmt.Errorf("reading document %s for patch: %w", p.id, err)
	}

	raw := []byte(data)
	for _, op := range p.sets {
		if raw, err = sjson.SetBytes(raw, op.path, op.value); err != nil {
			return model.Document{}, fmt.Errorf("setting %s: %w", op.path, err)
		}
	}
	for _, path := range p.unsets {
		if raw, err = sjson.DeleteBytes(raw, path); err != nil {
			return model.Document{}, fmt.Errorf("unsetting %s: %w", path, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE documents SET data = ?, updated_at = ? WHERE id = ?`,
		string(raw), time.Now().UTC(), p.id); err != nil {
		return model.Document{}, fmt.Errorf("writing patched document %s: %w", p.id, err)
	}
	if err := tx.Commit(); err != nil {
		return model.Document{}, fmt.Errorf("committing patch for %s: %w", p.id, err)
	}

	return model.Document{ID: p.id, Type: docType, Raw: raw}, nil
}
