package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/harentsoaR/dentallab-api/internal/auth"
	"github.com/harentsoaR/dentallab-api/internal/errs"
)

type registerRequest struct {
	Username    string              `json:"username" binding:"required"`
	Password    string              `json:"password" binding:"required"`
	Lab         *primitive.ObjectID `json:"lab"`
	Clinic      *primitive.ObjectID `json:"clinic"`
	Email       string              `json:"email"`
	Permissions []string            `json:"permissions"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthIndex answers the auth group root.
func (h *Handler) AuthIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "auth API"})
}

// Register creates a new user. Admin-gated by the route table.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	_, err := h.Auth.Register(c.Request.Context(), auth.RegisterInput{
		Username:    req.Username,
		Password:    req.Password,
		Lab:         req.Lab,
		Clinic:      req.Clinic,
		Email:       req.Email,
		Permissions: req.Permissions,
	})
	if errors.Is(err, errs.ErrDuplicateUser) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username already exists"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

// Login exchanges credentials for a bearer token. The response repeats the
// claims so clients need not decode the token.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	token, claims, err := h.Auth.Login(c.Request.Context(), req.Username, req.Password)
	if errors.Is(err, errs.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}
	if err != nil {
		h.Log.Error("login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":          token,
		"userId":         claims.UserID,
		"permissions":    claims.Permissions,
		"labOrClinicId":  claims.LabOrClinicID,
		"expirationDate": claims.ExpirationDate,
	})
}

// Logout acknowledges; tokens are stateless and cannot be revoked here.
func (h *Handler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}
