package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/domain"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/store"
)

type collection struct {
	c *mongo.Collection
}

func (c *collection) Name() string { return c.c.Name() }

func (c *collection) List(ctx context.Context, limit int) ([]domain.Record, error) {
	cur, err := c.c.Find(ctx, bson.D{}, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", c.Name(), err)
	}
	defer cur.Close(ctx)

	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list %s: %w", c.Name(), err)
	}

	out := make([]domain.Record, 0, len(docs))
	for _, d := range docs {
		out = append(out, toRecord(d))
	}
	return out, nil
}

func (c *collection) Insert(ctx context.Context, doc domain.Record) (domain.Record, error) {
	now := primitive.NewDateTimeFromTime(time.Now())

	rec := make(bson.M, len(doc)+4)
	for k, v := range doc {
		rec[k] = v
	}
	rec[domain.KeyID] = primitive.NewObjectID()
	rec[domain.KeyVersion] = int32(0)
	rec[domain.KeyCreatedAt] = now
	rec[domain.KeyUpdatedAt] = now

	if _, err := c.c.InsertOne(ctx, rec); err != nil {
		return nil, fmt.Errorf("insert %s: %w", c.Name(), err)
	}
	return toRecord(rec), nil
}

func (c *collection) UpdateByID(ctx context.Context, id string, doc domain.Record) (domain.Record, error) {
	set := make(bson.M, len(doc)+1)
	for k, v := range doc {
		set[k] = v
	}
	set[domain.KeyUpdatedAt] = primitive.NewDateTimeFromTime(time.Now())

	var out bson.M
	err := c.c.FindOneAndUpdate(ctx,
		idFilter(id),
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&out)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return toRecord(out), nil
}

func (c *collection) DeleteByID(ctx context.Context, id string) error {
	res, err := c.c.DeleteOne(ctx, idFilter(id))
	if err != nil {
		return fmt.Errorf("delete %s: %w", c.Name(), err)
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (c *collection) FindOne(ctx context.Context, field string, value any) (domain.Record, error) {
	var out bson.M
	if err := c.c.FindOne(ctx, bson.M{field: value}).Decode(&out); err != nil {
		return nil, mapNotFound(err)
	}
	return toRecord(out), nil
}

// idFilter matches an ObjectID when id is one, and the raw string as well
// since imported documents sometimes carry string ids.
func idFilter(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{domain.KeyID: bson.M{"$in": bson.A{oid, id}}}
	}
	return bson.M{domain.KeyID: id}
}
