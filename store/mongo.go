package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

//go:generate mockgen -destination=../api/mocks/mongo.go -package=mocks github.com/shreya029/foodshare/store MongoStore

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second

	DuplicateKeyCode = 11000
)

// MongoStore - interface for mongodb operations
type MongoStore interface {
	Donation
	Request
	FoodItem
	Volunteer
	Reconciler
	Closer
	Pinger
}

// Closer - close db connection
type Closer interface {
	Close()
}

// Pinger - ping database
type Pinger interface {
	Ping() error
}

type mongoDB struct {
	client        *mongo.Client
	database      string
	transactional bool
	now           func() time.Time
}

// Ping - ping mongo db
func (m mongoDB) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return m.client.Ping(ctx, nil)
}

// Close - close mongo db connections
func (m mongoDB) Close() {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}

// NewMongoStore - return mongo db operations. When transactional is set the
// multi-document lifecycle operations run inside a session transaction,
// which needs a replica set deployment.
func NewMongoStore(client *mongo.Client, database string, transactional bool) MongoStore {
	return &mongoDB{
		client:        client,
		database:      database,
		transactional: transactional,
		now:           time.Now,
	}
}

func (m *mongoDB) collection(name string) *mongo.Collection {
	return m.client.Database(m.database).Collection(name)
}

// withTransaction runs fn as one unit of work. Without transaction support
// fn runs directly and every caller has to leave the store recoverable by
// the reservation reconciler if its second write fails.
func (m *mongoDB) withTransaction(fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if !m.transactional {
		return fn(ctx)
	}

	session, err := m.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, fn(sessCtx)
	})
	return err
}

func isDuplicateKey(err error) bool {
	we, ok := err.(mongo.WriteException)
	if !ok {
		return false
	}
	for _, e := range we.WriteErrors {
		if e.Code == DuplicateKeyCode {
			return true
		}
	}
	return false
}
