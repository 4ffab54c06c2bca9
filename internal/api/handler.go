// Package api maps HTTP requests onto the auth and resource services.
// Status codes are decided here and nowhere else.
package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/infogen87/myportfolio/internal/service"
	"github.com/infogen87/myportfolio/internal/token"
)

type Handler struct {
	auth           *service.AuthService
	projects       *service.ProjectService
	skills         *service.SkillService
	defaultOwnerID string
}

func NewHandler(auth *service.AuthService, projects *service.ProjectService, skills *service.SkillService, defaultOwnerID string) *Handler {
	return &Handler{
		auth:           auth,
		projects:       projects,
		skills:         skills,
		defaultOwnerID: defaultOwnerID,
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, token.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrUsernameTaken):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorBody hides internal error details from clients; known failure
// kinds keep their message, anything else is logged and reported
// generically.
func errorBody(status int, err error) gin.H {
	if status == http.StatusInternalServerError {
		log.Printf("internal error: %v", err)
		return gin.H{"error": "internal server error"}
	}
	return gin.H{"error": err.Error()}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	status := statusFor(err)
	c.JSON(status, errorBody(status, err))
}

func (h *Handler) abortError(c *gin.Context, err error) {
	status := statusFor(err)
	c.AbortWithStatusJSON(status, errorBody(status, err))
}

// Token exchanges form-encoded credentials for a bearer token.
func (h *Handler) Token(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	if username == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
		return
	}
	tok, err := h.auth.Login(username, password)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": tok, "token_type": "bearer"})
}

func (h *Handler) Signup(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required,max=255"`
		Password string `json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.auth.Register(req.Username, req.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *Handler) GetUser(c *gin.Context) {
	c.JSON(http.StatusOK, currentUser(c))
}

func (h *Handler) UpdateUser(c *gin.Context) {
	var req struct {
		Username *string `json:"username" binding:"omitempty,min=1,max=255"`
		Password *string `json:"password" binding:"omitempty,min=6"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.auth.UpdateUser(currentUser(c).ID, req.Username, req.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	if err := h.auth.DeleteUser(currentUser(c).ID); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"message": "Portfolio API is running",
		"version": "1.0.0",
	})
}
