package repo

import (
	"context"
	"regexp"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoUserRepository struct {
	col *mongo.Collection
}

func (r *MongoUserRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"email": primitive.Regex{Pattern: "^" + regexp.QuoteMeta(email) + "$", Options: "i"}}
	var u models.User
	if err := r.col.FindOne(ctx, filter).Decode(&u); err != nil {
		return models.User{}, mapMongoError(err)
	}
	return u, nil
}

func (r *MongoUserRepository) CreateUser(ctx context.Context, u models.User) (models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	u.ID = newID(u.ID)
	u.CreatedAt = stamp(u.CreatedAt)
	if _, err := r.col.InsertOne(ctx, u); err != nil {
		return models.User{}, mapMongoError(err)
	}
	return u, nil
}
