package navRepo

import (
	"context"
	"fmt"
	"time"

	"medibook/database"
	"medibook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoNavRepo implements NavRepository using MongoDB.
type MongoNavRepo struct {
	coll *mongo.Collection
}

// NewMongoNavRepo creates a new instance of NavRepository using MongoDB.
func NewMongoNavRepo() NavRepository {
	return &MongoNavRepo{coll: database.Collection("navItems")}
}

// GetAll retrieves the nav menu in display order.
func (r *MongoNavRepo) GetAll() ([]models.NavItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve nav items: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.NavItem
	for cursor.Next(ctx) {
		var item models.NavItem
		if err := cursor.Decode(&item); err != nil {
			return nil, fmt.Errorf("failed to decode nav item: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}
