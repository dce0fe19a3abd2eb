package repository

import (
	"context"

	"github.com/bookmarkd/bookmarkd/internal/bookmark"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo is the document-store backend, kept for deployments that run
// without Postgres. Bookmarks are addressed by the same opaque "id" field
// the relational backend uses, with a unique index for fast lookups.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	idx := mongo.IndexModel{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)}
	col.Indexes().CreateOne(context.Background(), idx)
	return &MongoRepo{col: col}
}

func (m *MongoRepo) GetAll(ctx context.Context) ([]bookmark.Bookmark, error) {
	cur, err := m.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []bookmark.Bookmark{}
	for cur.Next(ctx) {
		var b bookmark.Bookmark
		if err := cur.Decode(&b); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, cur.Err()
}

func (m *MongoRepo) GetByID(ctx context.Context, id string) (*bookmark.Bookmark, error) {
	var b bookmark.Bookmark
	err := m.col.FindOne(ctx, bson.M{"id": id}).Decode(&b)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (m *MongoRepo) Insert(ctx context.Context, b *bookmark.Bookmark) (string, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if _, err := m.col.InsertOne(ctx, b); err != nil {
		return "", err
	}
	return b.ID, nil
}

func (m *MongoRepo) PatchByID(ctx context.Context, id string, next bookmark.Bookmark) error {
	set := bson.M{
		"title":       next.Title,
		"url":         next.URL,
		"description": next.Description,
		"rating":      next.Rating,
	}
	res, err := m.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := m.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
