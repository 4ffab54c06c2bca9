package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/infogen87/myportfolio/internal/service"
)

// pathID rejects non-uuid path ids before they reach the database; the
// postgres uuid columns would otherwise turn them into driver errors.
// A malformed id reads the same as a missing one.
func pathID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": service.ErrNotFound.Error()})
		return "", false
	}
	return id, true
}

func listParams(c *gin.Context) (limit, offset int, sort string) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(service.DefaultLimit)))
	if err != nil {
		limit = service.DefaultLimit
	}
	offset, err = strconv.Atoi(c.DefaultQuery("offset", strconv.Itoa(service.DefaultOffset)))
	if err != nil {
		offset = service.DefaultOffset
	}
	sort = c.DefaultQuery("sort", service.SortLatest)
	return limit, offset, sort
}

func (h *Handler) CreateProject(c *gin.Context) {
	var req service.ProjectCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	project, err := h.projects.Create(currentUser(c).ID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (h *Handler) ListProjects(c *gin.Context) {
	limit, offset, sort := listParams(c)
	page, err := h.projects.List(currentUser(c).ID, limit, offset, sort)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) GetProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	project, err := h.projects.Get(currentUser(c).ID, id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *Handler) UpdateProject(c *gin.Context) {
	var req service.ProjectUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	project, err := h.projects.Update(currentUser(c).ID, id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *Handler) DeleteProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.projects.Delete(currentUser(c).ID, id); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}
