// Package v1 implements the v1 HTTP API of the Umuryango Budget backend.
package v1

import (
	"github.com/umuryango/backend/internal/backup"
	"github.com/umuryango/backend/internal/budget"
	"github.com/umuryango/backend/internal/storage"
)

// Controller holds the dependencies of the v1 API handlers.
type Controller struct {
	Service *budget.Service
	Store   storage.Store
	Backups *backup.Store
}
