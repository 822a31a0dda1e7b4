package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/domain"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/store"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/pkg/idx"
)

type collection struct {
	db     *sql.DB
	name   string
	withTx func(ctx context.Context, fn func(tx *sql.Tx) error) error
}

func (c *collection) Name() string { return c.name }

func (c *collection) List(ctx context.Context, limit int) ([]domain.Record, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT body FROM documents WHERE collection = ? ORDER BY id LIMIT ?`,
		c.name, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", c.name, err)
	}
	defer rows.Close()

	out := []domain.Record{}
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, err
		}
		rec, err := decode(body)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", c.name, err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (c *collection) Insert(ctx context.Context, doc domain.Record) (domain.Record, error) {
	now := time.Now().UTC()
	id := idx.NewAt(now).String()
	ts := store.FormatTime(now)

	rec := doc.Clone()
	rec[domain.KeyID] = id
	rec[domain.KeyVersion] = 0
	rec[domain.KeyCreatedAt] = ts
	rec[domain.KeyUpdatedAt] = ts

	body, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}

	_, err = c.db.ExecContext(ctx,
		`INSERT INTO documents (collection, id, body, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		c.name, id, string(body), ts, ts,
	)
	if err != nil {
		return nil, fmt.Errorf("insert %s: %w", c.name, err)
	}

	// Round-trip so callers see the same types List would return.
	return decode(string(body))
}

// UpdateByID merges doc into the stored record. Ids are minted by Insert, so
// anything that is not a ULID cannot match a row.
func (c *collection) UpdateByID(ctx context.Context, id string, doc domain.Record) (domain.Record, error) {
	if !idx.Valid(id) {
		return nil, store.ErrNotFound
	}
	var updated domain.Record
	err := c.withTx(ctx, func(tx *sql.Tx) error {
		var body string
		err := tx.QueryRowContext(ctx,
			`SELECT body FROM documents WHERE collection = ? AND id = ?`,
			c.name, id,
		).Scan(&body)
		if err != nil {
			return mapNotFound(err)
		}

		rec, err := decode(body)
		if err != nil {
			return err
		}
		for k, v := range doc {
			rec[k] = v
		}
		ts := store.FormatTime(time.Now())
		rec[domain.KeyUpdatedAt] = ts

		next, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encode document: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE documents SET body = ?, updated_at = ? WHERE collection = ? AND id = ?`,
			string(next), ts, c.name, id,
		); err != nil {
			return err
		}

		updated, err = decode(string(next))
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *collection) DeleteByID(ctx context.Context, id string) error {
	if !idx.Valid(id) {
		return store.ErrNotFound
	}
	res, err := c.db.ExecContext(ctx,
		`DELETE FROM documents WHERE collection = ? AND id = ?`,
		c.name, id,
	)
	if err != nil {
		return fmt.Errorf("delete %s: %w", c.name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (c *collection) FindOne(ctx context.Context, field string, value any) (domain.Record, error) {
	var body string
	err := c.db.QueryRowContext(ctx,
		`SELECT body FROM documents
		 WHERE collection = ? AND json_extract(body, ?) = ?
		 ORDER BY id LIMIT 1`,
		c.name, jsonPath(field), value,
	).Scan(&body)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return decode(body)
}

// jsonPath quotes field as a single top-level key so dots and brackets in
// the name aren't treated as path syntax.
func jsonPath(field string) string {
	return `$."` + strings.ReplaceAll(field, `"`, `\"`) + `"`
}

func decode(body string) (domain.Record, error) {
	var rec domain.Record
	if err := json.Unmarshal([]byte(body), &rec); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if rec == nil {
		rec = domain.Record{}
	}
	return rec, nil
}
