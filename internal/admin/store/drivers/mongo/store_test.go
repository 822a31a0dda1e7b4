package mongo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/domain"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/store"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/store/drivers/mongo"
)

// setupMongo starts a throwaway MongoDB and returns a connected store.
func setupMongo(t *testing.T) *mongo.Store {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping mongo integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "27017/tcp")
	require.NoError(t, err)

	s, err := mongo.NewStore(mongo.Config{
		URI:          fmt.Sprintf("mongodb://%s:%s", host, port.Port()),
		Database:     "admin_test",
		PingInterval: 200 * time.Millisecond,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	waitCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	require.NoError(t, s.WaitReady(waitCtx))
	return s
}

func TestNewStoreRequiresURI(t *testing.T) {
	_, err := mongo.NewStore(mongo.Config{})
	require.Error(t, err)
}

func TestUnreachableStoreIsNotReady(t *testing.T) {
	s, err := mongo.NewStore(mongo.Config{URI: "mongodb://127.0.0.1:1", PingInterval: time.Hour})
	require.NoError(t, err)
	defer s.Close()

	require.False(t, s.Ready())

	reg := store.NewRegistry(s, []string{"vendors"})
	c, err := reg.Accessor("vendors")
	require.NoError(t, err)

	recs, err := c.List(context.Background(), 25)
	require.NoError(t, err)
	require.Empty(t, recs)

	_, err = c.Insert(context.Background(), domain.Record{"name": "x"})
	require.ErrorIs(t, err, store.ErrUnavailable)
}

func TestCollectionCRUD(t *testing.T) {
	s := setupMongo(t)
	ctx := context.Background()
	c := s.Collection("vendors")

	rec, err := c.Insert(ctx, domain.Record{"name": "Acme", "balance": 1200.5})
	require.NoError(t, err)
	require.Len(t, rec.ID(), 24)
	require.EqualValues(t, 0, rec[domain.KeyVersion])
	require.IsType(t, "", rec[domain.KeyCreatedAt])

	list, err := c.List(ctx, 25)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, rec.ID(), list[0].ID())
	require.Equal(t, "Acme", list[0]["name"])

	upd, err := c.UpdateByID(ctx, rec.ID(), domain.Record{"phone": "0300"})
	require.NoError(t, err)
	require.Equal(t, "Acme", upd["name"])
	require.Equal(t, "0300", upd["phone"])

	found, err := c.FindOne(ctx, "phone", "0300")
	require.NoError(t, err)
	require.Equal(t, rec.ID(), found.ID())

	require.NoError(t, c.DeleteByID(ctx, rec.ID()))
	require.ErrorIs(t, c.DeleteByID(ctx, rec.ID()), store.ErrNotFound)

	_, err = c.UpdateByID(ctx, "not-an-object-id", domain.Record{"x": 1})
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = c.UpdateByID(ctx, primitive.NewObjectID().Hex(), domain.Record{"x": 1})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestListLimit(t *testing.T) {
	s := setupMongo(t)
	ctx := context.Background()
	c := s.Collection("attendance")

	for i := range 5 {
		_, err := c.Insert(ctx, domain.Record{"n": i})
		require.NoError(t, err)
	}

	list, err := c.List(ctx, 3)
	require.NoError(t, err)
	require.Len(t, list, 3)
}

func TestDashboards(t *testing.T) {
	s := setupMongo(t)
	ctx := context.Background()
	d := s.Dashboards()

	_, err := d.Get(ctx)
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, d.Put(ctx, domain.Dashboard{
		KPIs:          []map[string]any{{"label": "Sales", "value": 10}},
		Notifications: 3,
		Profile:       domain.Profile{Name: "Owner"},
	}))

	got, err := d.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "Sales", got.KPIs[0]["label"])
	require.EqualValues(t, 3, got.Notifications)
	require.NotNil(t, got.Revenue)
	require.Equal(t, "Owner", got.Profile.Name)
}
