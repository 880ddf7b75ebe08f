package repo

import (
	"context"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoReportRepository struct {
	db *mongo.Database
}

func (r *MongoReportRepository) aggregate(ctx context.Context, collection string, pipeline mongo.Pipeline, out any) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cur, err := r.db.Collection(collection).Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}

func (r *MongoReportRepository) Revenue(ctx context.Context) (decimal.Decimal, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": models.OrderCompleted}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$total"}}},
		}}},
	}
	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := r.aggregate(ctx, ordersCollection, pipeline, &rows); err != nil {
		return decimal.Zero, err
	}
	if len(rows) == 0 {
		return decimal.Zero, nil
	}
	return decimal.NewFromFloat(rows[0].Total), nil
}

func (r *MongoReportRepository) count(ctx context.Context, collection string, filter any) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return r.db.Collection(collection).CountDocuments(ctx, filter)
}

func (r *MongoReportRepository) CountOrders(ctx context.Context, status string) (int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	return r.count(ctx, ordersCollection, filter)
}

func (r *MongoReportRepository) CountCustomers(ctx context.Context) (int64, error) {
	return r.count(ctx, customersCollection, bson.M{})
}

func (r *MongoReportRepository) CountProducts(ctx context.Context) (int64, error) {
	return r.count(ctx, productsCollection, bson.M{})
}

func (r *MongoReportRepository) TopProducts(ctx context.Context, n int) ([]models.ProductSales, error) {
	if n <= 0 {
		return []models.ProductSales{}, nil
	}
	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$products"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$products.productId"},
			{Key: "totalSold", Value: bson.D{{Key: "$sum", Value: "$products.quantity"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "totalSold", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: n}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: productsCollection},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "product"},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "totalSold", Value: 1},
			{Key: "name", Value: bson.D{{Key: "$ifNull", Value: bson.A{bson.D{{Key: "$arrayElemAt", Value: bson.A{"$product.name", 0}}}, ""}}}},
			{Key: "price", Value: bson.D{{Key: "$ifNull", Value: bson.A{bson.D{{Key: "$arrayElemAt", Value: bson.A{"$product.price", 0}}}, 0}}}},
		}}},
	}
	out := []models.ProductSales{}
	if err := r.aggregate(ctx, ordersCollection, pipeline, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MongoReportRepository) RecentOrders(ctx context.Context, n int) ([]models.OrderView, error) {
	if n <= 0 {
		return []models.OrderView{}, nil
	}
	pipeline := mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}}},
		{{Key: "$limit", Value: n}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: customersCollection},
			{Key: "localField", Value: "customerId"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "customer"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$customer"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}
	out := []models.OrderView{}
	if err := r.aggregate(ctx, ordersCollection, pipeline, &out); err != nil {
		return nil, err
	}
	return out, nil
}
