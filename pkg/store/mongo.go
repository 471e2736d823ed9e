package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/menuforge/menuforge/pkg/errors"
	"github.com/menuforge/menuforge/pkg/menu"
	"github.com/menuforge/menuforge/pkg/observability"
)

// MongoStore persists projects in a MongoDB collection, one document per
// project keyed by the project id.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// MongoConfig configures the MongoDB connection.
type MongoConfig struct {
	URI        string // e.g. mongodb://localhost:27017
	Database   string // defaults to "menuforge"
	Collection string // defaults to "projects"
}

// NewMongoStore connects to MongoDB and verifies the connection.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if cfg.Database == "" {
		cfg.Database = "menuforge"
	}
	if cfg.Collection == "" {
		cfg.Collection = "projects"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "connect to mongodb at %s", cfg.URI)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStore, err, "ping mongodb at %s", cfg.URI)
	}

	return &MongoStore{
		client:     client,
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// mongoDoc wraps a project with the id promoted to _id.
type mongoDoc struct {
	ID      string            `bson:"_id"`
	Project *menu.MenuProject `bson:"project"`
}

// Get retrieves a project by id.
func (s *MongoStore) Get(ctx context.Context, id string) (*menu.MenuProject, error) {
	var doc mongoDoc
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		observability.Store().OnStoreGet(ctx, "mongo", false)
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "get project %s", id)
	}

	observability.Store().OnStoreGet(ctx, "mongo", true)
	return doc.Project, nil
}

// Put stores a project, replacing any existing document.
func (s *MongoStore) Put(ctx context.Context, p *menu.MenuProject) error {
	doc := mongoDoc{ID: p.ID, Project: p}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.collection.ReplaceOne(ctx, bson.M{"_id": p.ID}, doc, opts); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "put project %s", p.ID)
	}

	observability.Store().OnStorePut(ctx, "mongo", 0)
	return nil
}

// List returns all stored projects.
func (s *MongoStore) List(ctx context.Context) ([]*menu.MenuProject, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "list projects")
	}
	defer cursor.Close(ctx)

	var out []*menu.MenuProject
	for cursor.Next(ctx) {
		var doc mongoDoc
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		out = append(out, doc.Project)
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "iterate projects")
	}
	return out, nil
}

// Delete removes a project. Missing ids are ignored.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	if _, err := s.collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "delete project %s", id)
	}

	observability.Store().OnStoreDelete(ctx, "mongo")
	return nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
