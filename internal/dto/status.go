package dto

import (
	"time"

	"taskflow/internal/model"
)

type StatusResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
}

type StatusCreateRequest struct {
	Name string `json:"name" binding:"required,min=1"`
	Slug string `json:"slug" binding:"required,min=1"`
}

type StatusUpdateRequest struct {
	Name Optional[string] `json:"name"`
	Slug Optional[string] `json:"slug"`
}

func NewStatusResponse(status *model.Status) StatusResponse {
	return StatusResponse{
		ID:        status.ID,
		Name:      status.Name,
		Slug:      status.Slug,
		CreatedAt: status.CreatedAt,
	}
}

func NewStatusResponseList(statuses []model.Status) []StatusResponse {
	out := make([]StatusResponse, 0, len(statuses))
	for i := range statuses {
		out = append(out, NewStatusResponse(&statuses[i]))
	}
	return out
}
