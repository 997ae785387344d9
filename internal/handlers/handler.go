// Package handlers contains the gin handlers for the auth routes and the
// uniform resource CRUD.
package handlers

import (
	"go.uber.org/zap"

	"github.com/harentsoaR/dentallab-api/internal/auth"
	"github.com/harentsoaR/dentallab-api/internal/models"
	"github.com/harentsoaR/dentallab-api/internal/storage"
)

// Stores groups one store per collection. Orders carries the clinic-resolving
// decorator; every other resource serves raw references.
type Stores struct {
	Users         storage.Store[models.User]
	Labs          storage.Store[models.Lab]
	Clinics       storage.Store[models.Clinic]
	Collaborators storage.Store[models.Collaborator]
	Services      storage.Store[models.Service]
	Inventories   storage.Store[models.Inventory]
	Orders        *storage.Orders
	Scans         storage.Store[models.Scan]
}

// Handler holds every dependency the routes need.
type Handler struct {
	Auth   *auth.Service
	Stores Stores
	Log    *zap.Logger
}

func New(authSvc *auth.Service, stores Stores, log *zap.Logger) *Handler {
	return &Handler{Auth: authSvc, Stores: stores, Log: log}
}
