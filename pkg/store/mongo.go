package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type mongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewMongo(ctx context.Context, uri, dbName string) (Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	return &mongoStore{client: client, db: client.Database(dbName)}, nil
}

func (s *mongoStore) Insert(ctx context.Context, collection string, doc map[string]any) error {
	_, err := s.db.Collection(collection).InsertOne(ctx, bson.M(doc))
	return err
}

func (s *mongoStore) Find(ctx context.Context, collection string, filter map[string]any, sort *Sort, limit int64) ([]map[string]any, error) {
	f := bson.M{}
	for k, v := range filter {
		f[k] = v
	}
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	if sort != nil {
		order := 1
		if sort.Desc {
			order = -1
		}
		opts.SetSort(bson.D{{Key: sort.Field, Value: order}})
	}
	cur, err := s.db.Collection(collection).Find(ctx, f, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []map[string]any
	for cur.Next(ctx) {
		var row bson.M
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		delete(row, "_id")
		out = append(out, map[string]any(row))
	}
	return out, cur.Err()
}

func (s *mongoStore) Upsert(ctx context.Context, collection string, key map[string]any, doc map[string]any) error {
	_, err := s.db.Collection(collection).ReplaceOne(
		ctx, bson.M(key), bson.M(doc), options.Replace().SetUpsert(true),
	)
	return err
}

func (s *mongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *mongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
