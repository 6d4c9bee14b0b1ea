package note

import (
	"context"
	"fmt"

	"github.com/mtinwala/notes-web/sys"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo is the Store backed by a mongo collection
type Mongo struct {
	collection *mongo.Collection
}

func NewMongo(collection *mongo.Collection) *Mongo {
	return &Mongo{collection: collection}
}

func (m *Mongo) List(ctx context.Context) ([]Fields, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()

	// createdAt is stamped on every insert, so this keeps list order stable
	cursor, err := m.collection.Find(dbCtx, bson.D{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("%w: find: %v", ErrUnavailable, err)
	}

	var docs []Fields
	if err := cursor.All(dbCtx, &docs); err != nil {
		return nil, fmt.Errorf("%w: cursor: %v", ErrUnavailable, err)
	}
	return docs, nil
}

func (m *Mongo) Insert(ctx context.Context, fields Fields) (string, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()

	result, err := m.collection.InsertOne(dbCtx, bson.M(fields))
	if err != nil {
		return "", fmt.Errorf("%w: insert: %v", ErrUnavailable, err)
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		return id.Hex(), nil
	}
	return fmt.Sprint(result.InsertedID), nil
}
