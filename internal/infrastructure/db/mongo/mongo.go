// Package mongo is the MongoDB storage driver. It implements the same
// ports.Storage contract as the memory driver, one collection per entity.
package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kitenge-atelier/storefront/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

const (
	collectionUsers    = "users"
	collectionProducts = "products"
	collectionOrders   = "custom_orders"
	collectionContacts = "contacts"
)

// Config selects the server and database holding the storefront collections.
type Config struct {
	URI      string
	Database string
	// Timeout bounds server selection, dialing and the startup ping.
	Timeout time.Duration
}

func (c Config) clientOptions() *options.ClientOptions {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return options.Client().
		ApplyURI(c.URI).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)
}

// Connect opens a client, pings it and returns the configured database.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	opts := cfg.clientOptions()

	connectCtx, cancel := context.WithTimeout(ctx, *opts.ServerSelectionTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping %s: %w", cfg.Database, err)
	}
	return client, client.Database(cfg.Database), nil
}

var _ ports.Storage = (*Store)(nil)

// Store implements ports.Storage on a MongoDB database.
type Store struct {
	db       *mongo.Database
	users    *mongo.Collection
	products *mongo.Collection
	orders   *mongo.Collection
	contacts *mongo.Collection
	newID    func() string
	now      func() time.Time
}

// NewStore wraps db. Product, order and contact ids are UUID strings; user ids
// are ObjectIDs.
func NewStore(db *mongo.Database) *Store {
	return &Store{
		db:       db,
		users:    db.Collection(collectionUsers),
		products: db.Collection(collectionProducts),
		orders:   db.Collection(collectionOrders),
		contacts: db.Collection(collectionContacts),
		newID:    uuid.NewString,
		// BSON dates hold milliseconds.
		now: func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
}

// Ping checks the server is reachable. Used by the readiness probe.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

// EnsureIndexes creates the indexes the list and lookup queries rely on.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	byCreation := mongo.IndexModel{Keys: bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}}

	plan := []struct {
		col     *mongo.Collection
		indexes []mongo.IndexModel
	}{
		{s.users, []mongo.IndexModel{{Keys: bson.D{{Key: "username", Value: 1}}}}},
		{s.products, []mongo.IndexModel{byCreation, {Keys: bson.D{{Key: "category", Value: 1}}}}},
		{s.orders, []mongo.IndexModel{byCreation, {Keys: bson.D{{Key: "status", Value: 1}}}}},
		{s.contacts, []mongo.IndexModel{byCreation}},
	}
	for _, idx := range plan {
		if _, err := idx.col.Indexes().CreateMany(ctx, idx.indexes); err != nil {
			return fmt.Errorf("create indexes on %s: %w", idx.col.Name(), err)
		}
	}
	return nil
}

// creationOrder lists documents oldest first, ties broken by id.
func creationOrder() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
}

func findAll[T any](ctx context.Context, col *mongo.Collection, filter any) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := col.Find(ctx, filter, creationOrder())
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", col.Name(), err)
	}
	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", col.Name(), err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}
