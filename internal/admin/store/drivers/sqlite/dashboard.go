package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/domain"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/store"
)

type dashboards struct {
	db *sql.DB
}

func (d *dashboards) Get(ctx context.Context) (domain.Dashboard, error) {
	var body string
	err := d.db.QueryRowContext(ctx, `SELECT body FROM dashboard WHERE id = 1`).Scan(&body)
	if err != nil {
		return domain.Dashboard{}, mapNotFound(err)
	}

	var out domain.Dashboard
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		return domain.Dashboard{}, fmt.Errorf("decode dashboard: %w", err)
	}
	out.Normalize()
	return out, nil
}

func (d *dashboards) Put(ctx context.Context, dash domain.Dashboard) error {
	dash.Normalize()
	body, err := json.Marshal(dash)
	if err != nil {
		return fmt.Errorf("encode dashboard: %w", err)
	}

	_, err = d.db.ExecContext(ctx,
		`INSERT INTO dashboard (id, body, updated_at) VALUES (1, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		string(body), store.FormatTime(time.Now()),
	)
	return err
}
