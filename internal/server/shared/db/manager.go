// Package db wires repositories to a concrete storage backend behind the
// RepositoryManager interface, so the services stay unaware of whether
// they run against PostgreSQL or in-process maps.
package db

import (
	"context"
	"database/sql"

	"github.com/ivanosipov/wordvault/internal/server/users"
	"github.com/ivanosipov/wordvault/internal/server/words"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Words() words.Repository
}
