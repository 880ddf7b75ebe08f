package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	productsCollection     = "products"
	customersCollection    = "customers"
	ordersCollection       = "orders"
	integrationsCollection = "integrations"
	usersCollection        = "users"
)

// MongoStore is a Store over a MongoDB database. Ids are stored as string
// _id values so they match the other backends.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoStore uses an already connected client and makes sure the indexes
// exist.
func NewMongoStore(ctx context.Context, client *mongo.Client, database string) (*MongoStore, error) {
	s := &MongoStore{client: client, db: client.Database(database)}
	if err := s.ensureIndexes(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *MongoStore) ensureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		productsCollection: {{
			Keys: bson.D{{Key: "sku", Value: 1}},
			Options: options.Index().SetUnique(true).
				SetPartialFilterExpression(bson.M{"sku": bson.M{"$type": "string"}}),
		}},
		usersCollection: {{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		ordersCollection: {
			{Keys: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}},
			{Keys: bson.D{{Key: "customerId", Value: 1}}},
		},
	}
	for name, idx := range indexes {
		if _, err := s.db.Collection(name).Indexes().CreateMany(ctx, idx); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", name, err)
		}
	}
	return nil
}

func (s *MongoStore) Products() ProductRepository {
	return &MongoProductRepository{col: newMongoCollection[models.Product](s.db, productsCollection)}
}

func (s *MongoStore) Customers() CustomerRepository {
	return &MongoCustomerRepository{col: newMongoCollection[models.Customer](s.db, customersCollection)}
}

func (s *MongoStore) Orders() OrderRepository {
	return &MongoOrderRepository{col: newMongoCollection[models.Order](s.db, ordersCollection)}
}

func (s *MongoStore) Integrations() IntegrationRepository {
	return &MongoIntegrationRepository{col: newMongoCollection[models.Integration](s.db, integrationsCollection)}
}

func (s *MongoStore) Users() UserRepository {
	return &MongoUserRepository{col: s.db.Collection(usersCollection)}
}

func (s *MongoStore) Reports() ReportRepository {
	return &MongoReportRepository{db: s.db}
}

func (s *MongoStore) Ping(ctx context.Context) error { return s.client.Ping(ctx, nil) }

func (s *MongoStore) Close(ctx context.Context) error { return s.client.Disconnect(ctx) }

func mapMongoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %v", ErrDuplicatedValueUnique, err)
	}
	return err
}

// mongoCollection holds the CRUD shared by every entity collection.
type mongoCollection[T any] struct {
	c *mongo.Collection
}

func newMongoCollection[T any](db *mongo.Database, name string) mongoCollection[T] {
	return mongoCollection[T]{c: db.Collection(name)}
}

func (m mongoCollection[T]) insert(ctx context.Context, doc T) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := m.c.InsertOne(ctx, doc)
	return mapMongoError(err)
}

func (m mongoCollection[T]) find(ctx context.Context, filter any) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := m.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (m mongoCollection[T]) findByID(ctx context.Context, id string) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var doc T
	err := m.c.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	return doc, mapMongoError(err)
}

func (m mongoCollection[T]) replace(ctx context.Context, id string, doc T) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := m.c.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return mapMongoError(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m mongoCollection[T]) delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := m.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
