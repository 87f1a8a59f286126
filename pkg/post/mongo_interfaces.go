package post

//go:generate mockgen -source=mongo_interfaces.go -destination=mongo_interfaces_mock_test.go -package=post

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The repo only sees these interfaces so tests can swap the driver for mocks.
type (
	IMongoCollection interface {
		InsertOne(context.Context, interface{}, ...*options.InsertOneOptions) (IMongoInsertOneResult, error)
		FindOneAndUpdate(context.Context, interface{}, interface{}, ...*options.FindOneAndUpdateOptions) IMongoSingleResult
		DeleteOne(context.Context, interface{}, ...*options.DeleteOptions) (IMongoDeleteResult, error)
		FindOne(context.Context, interface{}, ...*options.FindOneOptions) IMongoSingleResult
		Find(context.Context, interface{}, ...*options.FindOptions) (IMongoCursor, error)
		CreateIndexes(context.Context, []mongo.IndexModel) ([]string, error)
	}

	IMongoCursor interface {
		Close(context.Context) error
		All(context.Context, interface{}) error
	}

	IMongoSingleResult    interface{ Decode(interface{}) error }
	IMongoInsertOneResult interface{}
	IMongoDeleteResult    interface{ DeletedCount() int64 }
)

// collection adapts *mongo.Collection. *mongo.Cursor and *mongo.SingleResult
// already satisfy the cursor and single result interfaces.
type collection struct {
	coll *mongo.Collection
}

type deleteResult struct {
	res *mongo.DeleteResult
}

func (dr deleteResult) DeletedCount() int64 {
	return dr.res.DeletedCount
}

func (c collection) InsertOne(ctx context.Context, doc interface{}, opts ...*options.InsertOneOptions) (IMongoInsertOneResult, error) {
	res, err := c.coll.InsertOne(ctx, doc, opts...)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (c collection) FindOneAndUpdate(ctx context.Context, filter, update interface{}, opts ...*options.FindOneAndUpdateOptions) IMongoSingleResult {
	return c.coll.FindOneAndUpdate(ctx, filter, update, opts...)
}

func (c collection) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (IMongoDeleteResult, error) {
	res, err := c.coll.DeleteOne(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	return deleteResult{res: res}, nil
}

func (c collection) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) IMongoSingleResult {
	return c.coll.FindOne(ctx, filter, opts...)
}

func (c collection) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (IMongoCursor, error) {
	cur, err := c.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	return cur, nil
}

func (c collection) CreateIndexes(ctx context.Context, models []mongo.IndexModel) ([]string, error) {
	return c.coll.Indexes().CreateMany(ctx, models)
}
