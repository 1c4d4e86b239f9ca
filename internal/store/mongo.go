package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo implements Store over a single *mongo.Collection.
type Mongo struct {
	coll *mongo.Collection
}

func NewMongo(coll *mongo.Collection) *Mongo {
	return &Mongo{coll: coll}
}

func (s *Mongo) Insert(ctx context.Context, doc Document) (string, error) {
	res, err := s.coll.InsertOne(ctx, bson.M(doc))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrDuplicate
		}
		return "", err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

func (s *Mongo) FindOne(ctx context.Context, filter Document) (Document, error) {
	var doc Document
	err := s.coll.FindOne(ctx, bson.M(filter)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *Mongo) Find(ctx context.Context, filter Document, skip, limit int64) ([]Document, error) {
	opts := options.Find()
	if skip > 0 {
		opts.SetSkip(skip)
	}
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := s.coll.Find(ctx, bson.M(filter), opts)
	if err != nil {
		return nil, err
	}
	out := make([]Document, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Mongo) Count(ctx context.Context, filter Document) (int64, error) {
	return s.coll.CountDocuments(ctx, bson.M(filter))
}

func (s *Mongo) SetFields(ctx context.Context, filter, fields Document) (int64, error) {
	res, err := s.coll.UpdateOne(ctx, bson.M(filter), bson.M{"$set": bson.M(fields)})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}
