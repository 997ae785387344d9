package storage

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/harentsoaR/dentallab-api/internal/errs"
	"github.com/harentsoaR/dentallab-api/internal/models"
)

// Mongo is the MongoDB-backed Store, parameterized by document type and
// instantiated once per collection.
type Mongo[T any] struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewMongo[T any](db *mongo.Database, collection string, log *zap.Logger) *Mongo[T] {
	return &Mongo[T]{coll: db.Collection(collection), log: log}
}

func (m *Mongo[T]) List(ctx context.Context) ([]T, error) {
	cursor, err := m.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", m.coll.Name(), err)
	}
	defer cursor.Close(ctx)

	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", m.coll.Name(), err)
	}
	return docs, nil
}

func (m *Mongo[T]) Get(ctx context.Context, id string) (*T, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errs.ErrNotFound
	}

	var doc T
	err = m.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", m.coll.Name(), err)
	}
	return &doc, nil
}

func (m *Mongo[T]) Create(ctx context.Context, doc *T) error {
	if err := validate(doc); err != nil {
		return err
	}

	res, err := m.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert %s: %w", m.coll.Name(), err)
	}
	if entity, ok := any(doc).(Entity); ok {
		if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
			entity.SetID(oid)
		}
	}
	m.log.Debug("document created", zap.String("collection", m.coll.Name()))
	return nil
}

// Update reports true whenever the store accepted the operation, matching
// the original contract even when no document matched the id.
func (m *Mongo[T]) Update(ctx context.Context, id string, fields bson.M) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, fmt.Errorf("update %s: %w", m.coll.Name(), errs.ErrNotFound)
	}

	if _, err := m.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields}); err != nil {
		return false, fmt.Errorf("update %s: %w", m.coll.Name(), err)
	}
	return true, nil
}

func (m *Mongo[T]) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", m.coll.Name(), errs.ErrNotFound)
	}

	if _, err := m.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return false, fmt.Errorf("delete %s: %w", m.coll.Name(), err)
	}
	return true, nil
}

// MongoUsers extends the generic users store with the credential lookup the
// auth service needs.
type MongoUsers struct {
	*Mongo[models.User]
}

func NewMongoUsers(db *mongo.Database, log *zap.Logger) *MongoUsers {
	return &MongoUsers{Mongo: NewMongo[models.User](db, models.UserCollection, log)}
}

func (u *MongoUsers) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := u.coll.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func (u *MongoUsers) Insert(ctx context.Context, user *models.User) error {
	return u.Create(ctx, user)
}

// DropDatabase removes every collection. Development helper only; callers
// must gate it on the deployment mode.
func DropDatabase(ctx context.Context, db *mongo.Database) error {
	return db.Drop(ctx)
}
