package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/volunteer-hub/volunteer-hub-backend/internal/applications/domain"
	"github.com/volunteer-hub/volunteer-hub-backend/internal/applications/service"
)

type Handler struct {
	svc *service.ApplicationService
}

func NewHandler(svc *service.ApplicationService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) submit(c *gin.Context) {
	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
		return
	}

	app, err := h.svc.Submit(c.Request.Context(), domain.NewApplication{
		ProjectID:      req.ProjectID,
		VolunteerName:  req.VolunteerName,
		VolunteerEmail: req.VolunteerEmail,
		VolunteerPhone: req.VolunteerPhone,
		Motivation:     req.Motivation,
	})
	if err != nil {
		if domain.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create application"})
		return
	}

	c.JSON(http.StatusCreated, app)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch applications"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	app, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Application not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch application"})
		return
	}

	c.JSON(http.StatusOK, app)
}

func (h *Handler) updateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req decideReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "status is required"})
		return
	}

	app, err := h.svc.Decide(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Application not found"})
		case errors.Is(err, domain.ErrInvalidTransition):
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid status transition"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update application"})
		}
		return
	}

	c.JSON(http.StatusOK, app)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid application id"})
		return 0, false
	}
	return id, true
}
