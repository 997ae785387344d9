package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harentsoaR/dentallab-api/internal/errs"
	"github.com/harentsoaR/dentallab-api/internal/models"
)

// Memory is an in-process Store with the same contract as the Mongo
// implementation. It backs tests and keeps update semantics honest by
// round-tripping documents through bson for the shallow field merge.
type Memory[T any] struct {
	mu   sync.RWMutex
	docs map[string]T
}

func NewMemory[T any]() *Memory[T] {
	return &Memory[T]{docs: make(map[string]T)}
}

func (m *Memory[T]) List(ctx context.Context) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.docs))
	for id := range m.docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	docs := make([]T, 0, len(ids))
	for _, id := range ids {
		docs = append(docs, m.docs[id])
	}
	return docs, nil
}

func (m *Memory[T]) Get(ctx context.Context, id string) (*T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.docs[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &doc, nil
}

func (m *Memory[T]) Create(ctx context.Context, doc *T) error {
	if err := validate(doc); err != nil {
		return err
	}

	oid := primitive.NewObjectID()
	if entity, ok := any(doc).(Entity); ok {
		entity.SetID(oid)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[oid.Hex()] = *doc
	return nil
}

func (m *Memory[T]) Update(ctx context.Context, id string, fields bson.M) (bool, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return false, fmt.Errorf("update: %w", errs.ErrNotFound)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.docs[id]
	if !ok {
		// a valid id with no match still reports success, as Mongo does
		return true, nil
	}

	raw, err := bson.Marshal(doc)
	if err != nil {
		return false, fmt.Errorf("update: %w", err)
	}
	var merged bson.M
	if err := bson.Unmarshal(raw, &merged); err != nil {
		return false, fmt.Errorf("update: %w", err)
	}
	for key, value := range fields {
		merged[key] = value
	}

	raw, err = bson.Marshal(merged)
	if err != nil {
		return false, fmt.Errorf("update: %w", err)
	}
	var updated T
	if err := bson.Unmarshal(raw, &updated); err != nil {
		return false, fmt.Errorf("update: %w", err)
	}

	m.docs[id] = updated
	return true, nil
}

func (m *Memory[T]) Delete(ctx context.Context, id string) (bool, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return false, fmt.Errorf("delete: %w", errs.ErrNotFound)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.docs, id)
	return true, nil
}

// MemoryUsers mirrors MongoUsers for tests.
type MemoryUsers struct {
	*Memory[models.User]
}

func NewMemoryUsers() *MemoryUsers {
	return &MemoryUsers{Memory: NewMemory[models.User]()}
}

func (u *MemoryUsers) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	users, err := u.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			user := users[i]
			return &user, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (u *MemoryUsers) Insert(ctx context.Context, user *models.User) error {
	return u.Create(ctx, user)
}
