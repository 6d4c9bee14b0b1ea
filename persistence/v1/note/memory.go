package note

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory is an in-memory Store. It backs tests and local runs without a
// database, generating ids in the same format as the Mongo store.
type Memory struct {
	mu   sync.Mutex
	docs []Fields
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) List(_ context.Context) ([]Fields, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	docs := make([]Fields, 0, len(m.docs))
	for _, doc := range m.docs {
		copied := make(Fields, len(doc))
		for k, v := range doc {
			copied[k] = v
		}
		docs = append(docs, copied)
	}
	return docs, nil
}

func (m *Memory) Insert(_ context.Context, fields Fields) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc := make(Fields, len(fields)+1)
	for k, v := range fields {
		doc[k] = v
	}
	id := primitive.NewObjectID().Hex()
	doc["_id"] = id
	m.docs = append(m.docs, doc)
	return id, nil
}

// Len reports how many documents are stored
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.docs)
}
