// Package routes wires the HTTP surface: auth endpoints, the per-collection
// CRUD groups with their permission levels, and the API docs.
package routes

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/harentsoaR/dentallab-api/docs"
	"github.com/harentsoaR/dentallab-api/internal/auth"
	"github.com/harentsoaR/dentallab-api/internal/handlers"
	"github.com/harentsoaR/dentallab-api/internal/middleware"
	"github.com/harentsoaR/dentallab-api/internal/models"
	"github.com/harentsoaR/dentallab-api/internal/storage"
)

// Register mounts every route on the engine.
//
// Read access is user-level for lab, clinic and service; every other
// resource is admin-only for all verbs, and all writes are admin-only.
// Delete is exposed under the DELETE verb; the original API registered it
// as a second PUT on the same path, which left it shadowed by update.
func Register(r *gin.Engine, h *handlers.Handler) {
	api := r.Group("/api")
	api.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "API is working"})
	})

	authGroup := api.Group("/auth")
	{
		authGroup.GET("", h.AuthIndex)
		authGroup.POST("/register",
			middleware.Authenticate(h.Auth),
			middleware.Require(auth.LevelAdmin),
			h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/logout", h.Logout)
	}

	modelsGroup := api.Group("/models", middleware.Authenticate(h.Auth))
	{
		resource(modelsGroup, "lab", h.Stores.Labs, auth.LevelUser)
		resource(modelsGroup, "clinic", h.Stores.Clinics, auth.LevelUser)
		resource(modelsGroup, "service", h.Stores.Services, auth.LevelUser)
		resource(modelsGroup, "collaborator", h.Stores.Collaborators, auth.LevelAdmin)
		resource(modelsGroup, "inventory", h.Stores.Inventories, auth.LevelAdmin)
		resource(modelsGroup, "user", h.Stores.Users, auth.LevelAdmin)
		resource(modelsGroup, "pandaScan", h.Stores.Scans, auth.LevelAdmin)

		// orders resolve their clinic on reads, so list/get are bespoke
		orders := modelsGroup.Group("/order")
		orders.GET("", middleware.Require(auth.LevelAdmin), h.ListOrders)
		orders.GET("/:id", middleware.Require(auth.LevelAdmin), h.GetOrder)
		orders.POST("", middleware.Require(auth.LevelAdmin), handlers.Create[models.Order](h.Stores.Orders, "order"))
		orders.PUT("/:id", middleware.Require(auth.LevelAdmin), handlers.Update[models.Order](h.Stores.Orders, "order"))
		orders.DELETE("/:id", middleware.Require(auth.LevelAdmin), handlers.Delete[models.Order](h.Stores.Orders, "order"))
	}

	api.GET("/docs/*any", swaggerDocs())
}

func resource[T any](g *gin.RouterGroup, name string, store storage.Store[T], readLevel auth.Level) {
	rg := g.Group("/" + name)
	rg.GET("", middleware.Require(readLevel), handlers.List(store, name))
	rg.GET("/:id", middleware.Require(readLevel), handlers.Get(store, name))
	rg.POST("", middleware.Require(auth.LevelAdmin), handlers.Create(store, name))
	rg.PUT("/:id", middleware.Require(auth.LevelAdmin), handlers.Update(store, name))
	rg.DELETE("/:id", middleware.Require(auth.LevelAdmin), handlers.Delete(store, name))
}

// swaggerDocs serves the committed swagger document and the swagger UI
// around it.
func swaggerDocs() gin.HandlerFunc {
	ui := httpSwagger.Handler(httpSwagger.URL("doc.json"))
	return func(c *gin.Context) {
		if strings.HasSuffix(c.Request.URL.Path, "/doc.json") {
			c.Data(http.StatusOK, "application/json", docs.Swagger)
			return
		}
		ui.ServeHTTP(c.Writer, c.Request)
	}
}
