package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"taskflow/internal/dto"
	"taskflow/internal/service"
)

// LabelHandler handles label HTTP requests
type LabelHandler struct {
	service service.LabelServiceInterface
}

func NewLabelHandler(service service.LabelServiceInterface) *LabelHandler {
	return &LabelHandler{service: service}
}

func (h *LabelHandler) List(c *gin.Context) {
	labels, err := h.service.List(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.Header("X-Total-Count", strconv.Itoa(len(labels)))
	c.JSON(http.StatusOK, labels)
}

func (h *LabelHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	label, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, label)
}

func (h *LabelHandler) Create(c *gin.Context) {
	var req dto.LabelCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	label, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, label)
}

func (h *LabelHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var upd dto.LabelUpdateRequest
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	label, err := h.service.Update(c.Request.Context(), id, upd)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, label)
}

func (h *LabelHandler) Delete(c *gin.Context) {
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
