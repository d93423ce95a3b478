package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// credentialsRequest is the body of register and login requests.
type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Controller handles authentication HTTP endpoints.
type Controller struct {
	service *Service
}

// NewController creates a new authentication controller.
func NewController(service *Service) *Controller {
	return &Controller{service: service}
}

// Register handles POST /api/auth/register.
func (ac *Controller) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "JSON body required"})
		return
	}

	user, token, err := ac.service.Register(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailInvalid), errors.Is(err, ErrPasswordTooShort), errors.Is(err, ErrPasswordTooLong):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			log.Printf("register failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
}

// Login handles POST /api/auth/login.
func (ac *Controller) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "JSON body required"})
		return
	}

	user, token, err := ac.service.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		log.Printf("login failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// Me handles GET /api/auth/me, returning the identity attached by the guard.
func (ac *Controller) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": gin.H{
		"id":    GetUserID(c),
		"email": GetEmail(c),
	}})
}
