package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/infogen87/myportfolio/internal/service"
)

func (h *Handler) CreateSkill(c *gin.Context) {
	var req service.SkillCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	skill, err := h.skills.Create(currentUser(c).ID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, skill)
}

func (h *Handler) ListSkills(c *gin.Context) {
	limit, offset, sort := listParams(c)
	page, err := h.skills.List(currentUser(c).ID, limit, offset, sort)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) GetSkill(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	skill, err := h.skills.Get(currentUser(c).ID, id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, skill)
}

func (h *Handler) UpdateSkill(c *gin.Context) {
	var req service.SkillUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	skill, err := h.skills.Update(currentUser(c).ID, id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, skill)
}

func (h *Handler) DeleteSkill(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.skills.Delete(currentUser(c).ID, id); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Skill deleted"})
}
