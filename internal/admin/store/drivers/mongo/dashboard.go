package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/domain"
)

type dashboards struct {
	c *mongo.Collection
}

func (d *dashboards) Get(ctx context.Context) (domain.Dashboard, error) {
	var out domain.Dashboard
	if err := d.c.FindOne(ctx, bson.D{}).Decode(&out); err != nil {
		return domain.Dashboard{}, mapNotFound(err)
	}

	for _, series := range [][]map[string]any{out.KPIs, out.Revenue, out.Streams, out.Funnel, out.SalesBreakdown} {
		for i, item := range series {
			series[i] = normalize(item).(map[string]any)
		}
	}
	out.Notifications = normalize(out.Notifications)
	out.Normalize()
	return out, nil
}

func (d *dashboards) Put(ctx context.Context, dash domain.Dashboard) error {
	dash.Normalize()
	_, err := d.c.ReplaceOne(ctx, bson.D{}, dash, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("put dashboard: %w", err)
	}
	return nil
}
