// Package store keeps harvested paradigms in a SQLite file so that a word is
// fetched from Wiktionary only once.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	_ "modernc.org/sqlite"

	"github.com/ankigreek/ankigreek"
)

const (
	kindNoun = "noun"
	kindVerb = "verb"
)

const schema = `
CREATE TABLE IF NOT EXISTS paradigms (
	kind       TEXT NOT NULL,
	key        TEXT NOT NULL,
	body       BLOB NOT NULL,
	updated_at TEXT NOT NULL,
	PRIMARY KEY (kind, key)
)`

// Store is a key-value store of paradigms keyed by citation form.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the store at path. ":memory:" gives a
// private in-memory store.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}
	// one connection keeps an in-memory database alive and serializes writes
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init store %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Noun returns the stored paradigm of citation, or ankigreek.ErrNotFound.
func (s *Store) Noun(ctx context.Context, citation string) (*ankigreek.NounParadigm, error) {
	var p ankigreek.NounParadigm
	if err := s.get(ctx, kindNoun, key(citation), &p); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("stored noun %s: %w", citation, err)
	}
	return &p, nil
}

// PutNoun stores p under its citation, replacing any previous entry.
func (s *Store) PutNoun(ctx context.Context, p *ankigreek.NounParadigm) error {
	return s.put(ctx, kindNoun, key(p.Citation), p)
}

// Verb returns the stored paradigm of lemma, or ankigreek.ErrNotFound.
func (s *Store) Verb(ctx context.Context, lemma string) (*ankigreek.VerbParadigm, error) {
	var p ankigreek.VerbParadigm
	if err := s.get(ctx, kindVerb, key(lemma), &p); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("stored verb %s: %w", lemma, err)
	}
	return &p, nil
}

// PutVerb stores p under its lemma, replacing any previous entry.
func (s *Store) PutVerb(ctx context.Context, p *ankigreek.VerbParadigm) error {
	return s.put(ctx, kindVerb, key(p.Lemma), p)
}

// Nouns lists the stored noun citations in order.
func (s *Store) Nouns(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT key FROM paradigms WHERE kind = ? ORDER BY key`, kindNoun)
	if err != nil {
		return nil, fmt.Errorf("list nouns: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("list nouns: %w", err)
		}
		out = append(out, k)
	}
	return out, rows.Err()
}

func (s *Store) get(ctx context.Context, kind, k string, dst any) error {
	var body []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT body FROM paradigms WHERE kind = ? AND key = ?`, kind, k).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", kind, k, ankigreek.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("load %s %s: %w", kind, k, err)
	}
	if err := sonic.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decode %s %s: %w", kind, k, err)
	}
	return nil
}

func (s *Store) put(ctx context.Context, kind, k string, v any) error {
	body, err := sonic.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s %s: %w", kind, k, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO paradigms (kind, key, body, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT (kind, key) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		kind, k, body, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save %s %s: %w", kind, k, err)
	}
	return nil
}

// key normalizes a citation the way the lexicon does.
func key(s string) string {
	return ankigreek.CitationKey(s)
}
