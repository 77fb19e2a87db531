package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"smart-restaurant/pkg/logger"
)

const (
	DefaultConnectTimeout = 10 * time.Second
	DefaultPingTimeout    = 5 * time.Second
)

type Config struct {
	URL  string // store connection URL (DATABASE_URL)
	Name string // database name (DATABASE_NAME)

	ConnectTimeout time.Duration
}

// Configured reports whether both the URL and database name are set.
// Without them the process runs, but every data endpoint degrades to an
// unavailability error.
func (c Config) Configured() bool {
	return c.URL != "" && c.Name != ""
}

type DB struct {
	client   *mongo.Client
	database *mongo.Database
	logger   *logger.Logger
}

func NewConnection(config Config, log *logger.Logger) (*DB, error) {
	if !config.Configured() {
		return nil, fmt.Errorf("database connection URL or name not configured")
	}

	timeout := config.ConnectTimeout
	if timeout <= 0 {
		timeout = DefaultConnectTimeout
	}

	log.Info("Establishing document store connection",
		"database", config.Name,
		"timeout", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.URL))
	if err != nil {
		log.Error("Failed to connect to document store", "error", err)
		return nil, fmt.Errorf("failed to connect to document store: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		log.Error("Failed to ping document store", "error", err)
		return nil, fmt.Errorf("failed to ping document store: %w", err)
	}

	log.Info("Document store connection established", "database", config.Name)
	return &DB{
		client:   client,
		database: client.Database(config.Name),
		logger:   log,
	}, nil
}

// Collection returns a handle for the named collection.
func (db *DB) Collection(name string) *mongo.Collection {
	return db.database.Collection(name)
}

// ListCollections returns the names of all collections in the database.
func (db *DB) ListCollections(ctx context.Context) ([]string, error) {
	names, err := db.database.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		db.logger.Error("Failed to list collections", "error", err)
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return names, nil
}

// HealthCheck pings the store within a short timeout.
func (db *DB) HealthCheck(ctx context.Context) error {
	db.logger.Debug("Performing document store health check")

	ctx, cancel := context.WithTimeout(ctx, DefaultPingTimeout)
	defer cancel()

	if err := db.client.Ping(ctx, nil); err != nil {
		db.logger.Error("Document store health check failed", "error", err)
		return fmt.Errorf("document store ping failed: %w", err)
	}

	db.logger.Debug("Document store health check passed")
	return nil
}

// Close disconnects the underlying client.
func (db *DB) Close(ctx context.Context) error {
	db.logger.Info("Closing document store connection")
	return db.client.Disconnect(ctx)
}
