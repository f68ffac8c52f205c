package snapshot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const defaultCollection = "fsm_snapshots"

var _ Store[string] = (*MongoStore[string])(nil)

// MongoStore persists snapshots in a single collection with the instance id
// as the document _id.
type MongoStore[S comparable] struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// MongoOption configures a MongoStore.
type MongoOption func(*mongoConfig)

type mongoConfig struct {
	collection string
}

// WithCollection replaces the default "fsm_snapshots" collection name.
func WithCollection(name string) MongoOption {
	return func(cfg *mongoConfig) {
		cfg.collection = name
	}
}

type mongoDoc[S comparable] struct {
	ID        string    `bson:"_id"`
	State     S         `bson:"state"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// NewMongoStore wraps an already-connected client. Closing the store
// disconnects the client.
func NewMongoStore[S comparable](client *mongo.Client, database string, opts ...MongoOption) *MongoStore[S] {
	cfg := mongoConfig{collection: defaultCollection}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &MongoStore[S]{
		client:     client,
		collection: client.Database(database).Collection(cfg.collection),
	}
}

func (s *MongoStore[S]) Save(ctx context.Context, id string, snap Snapshot[S]) error {
	if id == "" {
		return ErrEmptyID
	}
	doc := mongoDoc[S]{ID: id, State: snap.State, UpdatedAt: snap.UpdatedAt}
	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": id}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save snapshot %q: %w", id, err)
	}
	return nil
}

func (s *MongoStore[S]) Load(ctx context.Context, id string) (Snapshot[S], error) {
	if id == "" {
		return Snapshot[S]{}, ErrEmptyID
	}
	var doc mongoDoc[S]
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Snapshot[S]{}, ErrNotFound
	}
	if err != nil {
		return Snapshot[S]{}, fmt.Errorf("load snapshot %q: %w", id, err)
	}
	return Snapshot[S]{State: doc.State, UpdatedAt: doc.UpdatedAt}, nil
}

func (s *MongoStore[S]) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}
	if _, err := s.collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete snapshot %q: %w", id, err)
	}
	return nil
}

func (s *MongoStore[S]) Close() error {
	return s.client.Disconnect(context.Background())
}

// MongoConfig carries connection settings for OpenMongo.
type MongoConfig struct {
	ConnectionURL   string        `env:"MONGODB_URL,required"`
	Database        string        `env:"MONGODB_DATABASE" envDefault:"fsm"`
	ConnectTimeout  time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`
	MaxPoolSize     uint64        `env:"MONGODB_MAX_POOL_SIZE" envDefault:"100"`
	MinPoolSize     uint64        `env:"MONGODB_MIN_POOL_SIZE" envDefault:"1"`
	MaxConnIdleTime time.Duration `env:"MONGODB_MAX_CONN_IDLE_TIME" envDefault:"300s"`
	RetryWrites     bool          `env:"MONGODB_RETRY_WRITES" envDefault:"true"`
	RetryReads      bool          `env:"MONGODB_RETRY_READS" envDefault:"true"`
	RetryAttempts   int           `env:"MONGODB_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval   time.Duration `env:"MONGODB_RETRY_INTERVAL" envDefault:"5s"`
}

// OpenMongo connects to MongoDB with retries and wraps the client in a
// store bound to cfg.Database.
func OpenMongo[S comparable](ctx context.Context, cfg MongoConfig, opts ...MongoOption) (*MongoStore[S], error) {
	for range cfg.RetryAttempts {
		client, err := mongo.Connect(
			options.Client().
				ApplyURI(cfg.ConnectionURL).
				SetConnectTimeout(cfg.ConnectTimeout).
				SetMaxPoolSize(cfg.MaxPoolSize).
				SetMinPoolSize(cfg.MinPoolSize).
				SetMaxConnIdleTime(cfg.MaxConnIdleTime).
				SetRetryWrites(cfg.RetryWrites).
				SetRetryReads(cfg.RetryReads),
		)
		if err == nil {
			if err := client.Ping(ctx, nil); err == nil {
				return NewMongoStore[S](client, cfg.Database, opts...), nil
			}
			_ = client.Disconnect(ctx)
		}

		time.Sleep(cfg.RetryInterval)
	}

	return nil, ErrMongoNotReady
}
