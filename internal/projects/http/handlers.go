package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/volunteer-hub/volunteer-hub-backend/internal/projects/domain"
)

type Handler struct {
	repo domain.Repository
}

func NewHandler(repo domain.Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch projects"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	if req.Title == "" || req.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "title and description are required"})
		return
	}
	if req.VolunteersNeeded <= 0 {
		req.VolunteersNeeded = 1
	}

	// Incoming status is ignored; new projects always start open.
	p, err := h.repo.Create(c.Request.Context(), domain.NewProject{
		Title:            req.Title,
		Description:      req.Description,
		Category:         strings.TrimSpace(req.Category),
		TimeCommitment:   strings.TrimSpace(req.TimeCommitment),
		Duration:         strings.TrimSpace(req.Duration),
		Location:         strings.TrimSpace(req.Location),
		ImageURL:         strings.TrimSpace(req.ImageURL),
		VolunteersNeeded: req.VolunteersNeeded,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, p)
}

func (h *Handler) delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid project id"})
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete project"})
		return
	}

	c.Status(http.StatusNoContent)
}
