package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"taskflow/internal/dto"
	"taskflow/internal/service"
)

// StatusHandler handles task status HTTP requests
type StatusHandler struct {
	service service.StatusServiceInterface
}

func NewStatusHandler(service service.StatusServiceInterface) *StatusHandler {
	return &StatusHandler{service: service}
}

func (h *StatusHandler) List(c *gin.Context) {
	statuses, err := h.service.List(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.Header("X-Total-Count", strconv.Itoa(len(statuses)))
	c.JSON(http.StatusOK, statuses)
}

func (h *StatusHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	status, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

func (h *StatusHandler) Create(c *gin.Context) {
	var req dto.StatusCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	status, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, status)
}

func (h *StatusHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var upd dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	status, err := h.service.Update(c.Request.Context(), id, upd)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

func (h *StatusHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
