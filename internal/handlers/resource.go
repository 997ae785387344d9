package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/harentsoaR/dentallab-api/internal/errs"
	"github.com/harentsoaR/dentallab-api/internal/storage"
)

// The five-verb CRUD surface is identical for every collection, so the
// handlers are written once and instantiated per store in the route table.
// Wire contract quirks preserved from the original API: a missing document
// answers 400 (not 404), create answers 200 with the stored document, and
// update/delete answer a bare JSON `true` so callers re-fetch to observe
// state.

// List returns every document in the collection, unfiltered and unpaginated.
func List[T any](store storage.Store[T], name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		docs, err := store.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, docs)
	}
}

// Get returns one document by id.
func Get[T any](store storage.Store[T], name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := store.Get(c.Request.Context(), c.Param("id"))
		if errors.Is(err, errs.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"message": fmt.Sprintf("No %s found", name)})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, doc)
	}
}

// Create stores the posted document as given. Validation failures surface
// as 500, matching the original persistence-layer contract.
func Create[T any](store storage.Store[T], name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var doc T
		if err := c.ShouldBindJSON(&doc); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		if err := store.Create(c.Request.Context(), &doc); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, doc)
	}
}

// Update merges the provided top-level fields into the document and answers
// `true`, never the updated document.
func Update[T any](store storage.Store[T], name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var fields bson.M
		if err := c.ShouldBindJSON(&fields); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "message": err.Error()})
			return
		}

		ok, err := store.Update(c.Request.Context(), c.Param("id"), fields)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, ok)
	}
}

// Delete removes the document and answers `true`.
func Delete[T any](store storage.Store[T], name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := store.Delete(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, ok)
	}
}

// ListOrders is the order list with clinics resolved, the one joined read.
func (h *Handler) ListOrders(c *gin.Context) {
	views, err := h.Stores.Orders.ListResolved(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetOrder returns one order with its clinic resolved.
func (h *Handler) GetOrder(c *gin.Context) {
	view, err := h.Stores.Orders.GetResolved(c.Request.Context(), c.Param("id"))
	if errors.Is(err, errs.ErrNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No order found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}
