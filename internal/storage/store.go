// Package storage implements the uniform five-verb store contract shared by
// every collection, backed by MongoDB in production and by an in-memory map
// in tests.
package storage

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Entity is implemented by every model so stores can write back the
// generated identifier after an insert.
type Entity interface {
	SetID(id primitive.ObjectID)
}

// Validator is implemented by models carrying persistence-time rules.
type Validator interface {
	Validate() error
}

// Store is the uniform contract per collection.
//
// Update applies a $set of only the provided top-level fields and reports
// success with a bare boolean; it never returns the updated document, so
// callers re-fetch to observe the new state. List is unfiltered and
// unpaginated.
type Store[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, doc *T) error
	Update(ctx context.Context, id string, fields bson.M) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

func validate(doc any) error {
	if v, ok := doc.(Validator); ok {
		return v.Validate()
	}
	return nil
}
