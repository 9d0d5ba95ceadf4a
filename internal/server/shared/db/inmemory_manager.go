package db

import (
	"context"
	"database/sql"

	"github.com/ivanosipov/wordvault/internal/server/users"
	"github.com/ivanosipov/wordvault/internal/server/words"
)

// InMemoryRepositoryManager backs the server with in-process repositories.
// Selected by an empty database DSN; also the backend handler tests run on.
type InMemoryRepositoryManager struct {
	users users.Repository
	words words.Repository
}

func (m *InMemoryRepositoryManager) Conn() *sql.DB {
	return nil
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m *InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Words() words.Repository {
	return m.words
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return &InMemoryRepositoryManager{
		users: users.NewInMemoryRepository(),
		words: words.NewInMemoryRepository(),
	}
}
