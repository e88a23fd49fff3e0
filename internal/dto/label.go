package dto

import (
	"time"

	"taskflow/internal/model"
)

type LabelResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type LabelCreateRequest struct {
	Name string `json:"name" binding:"required,min=1"`
}

type LabelUpdateRequest struct {
	Name Optional[string] `json:"name"`
}

func NewLabelResponse(label *model.Label) LabelResponse {
	return LabelResponse{
		ID:        label.ID,
		Name:      label.Name,
		CreatedAt: label.CreatedAt,
	}
}

func NewLabelResponseList(labels []model.Label) []LabelResponse {
	out := make([]LabelResponse, 0, len(labels))
	for i := range labels {
		out = append(out, NewLabelResponse(&labels[i]))
	}
	return out
}
