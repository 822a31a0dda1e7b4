package mongo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToRecord(t *testing.T) {
	oid := primitive.NewObjectID()
	when := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

	rec := toRecord(bson.M{
		"_id":       oid,
		"createdAt": primitive.NewDateTimeFromTime(when),
		"nested":    bson.D{{Key: "ref", Value: oid}},
		"tags":      bson.A{"a", primitive.Null{}},
		"amount":    1500.25,
	})

	require.Equal(t, oid.Hex(), rec["_id"])
	require.Equal(t, "2024-05-01T09:30:00.000Z", rec["createdAt"])
	require.Equal(t, map[string]any{"ref": oid.Hex()}, rec["nested"])
	require.Equal(t, []any{"a", nil}, rec["tags"])
	require.Equal(t, 1500.25, rec["amount"])
}

func TestIDFilter(t *testing.T) {
	oid := primitive.NewObjectID()
	f := idFilter(oid.Hex())
	require.Equal(t, bson.M{"_id": bson.M{"$in": bson.A{oid, oid.Hex()}}}, f)

	require.Equal(t, bson.M{"_id": "env-admin"}, idFilter("env-admin"))
}
