package dto

import (
	"time"

	"taskflow/internal/model"
)

// TaskResponse is the external representation of a task.
type TaskResponse struct {
	ID           uint      `json:"id"`
	Index        *int      `json:"index,omitempty"`
	Title        string    `json:"title"`
	Content      string    `json:"content,omitempty"`
	Status       string    `json:"status"`
	AssigneeID   *uint     `json:"assignee_id,omitempty"`
	TaskLabelIDs []uint    `json:"taskLabelIds"`
	CreatedAt    time.Time `json:"createdAt"`
}

type TaskCreateRequest struct {
	Title        string `json:"title" binding:"required,min=1"`
	Content      string `json:"content"`
	Index        *int   `json:"index"`
	Status       string `json:"status" binding:"required"`
	AssigneeID   *uint  `json:"assignee_id"`
	TaskLabelIDs []uint `json:"taskLabelIds"`
}

// TaskUpdateRequest is a partial update: every field is tri-state.
type TaskUpdateRequest struct {
	Title        Optional[string] `json:"title"`
	Content      Optional[string] `json:"content"`
	Index        Optional[int]    `json:"index"`
	Status       Optional[string] `json:"status"`
	AssigneeID   Optional[uint]   `json:"assignee_id"`
	TaskLabelIDs Optional[[]uint] `json:"taskLabelIds"`
}

// TaskFilter carries the optional list predicates. Absent or blank fields
// contribute nothing to the query.
type TaskFilter struct {
	TitleCont  string `form:"titleCont"`
	AssigneeID *uint  `form:"assigneeId"`
	Status     string `form:"status"`
	LabelID    *uint  `form:"labelId"`
}

func NewTaskResponse(task *model.Task) TaskResponse {
	labelIDs := make([]uint, 0, len(task.Labels))
	for _, label := range task.Labels {
		labelIDs = append(labelIDs, label.ID)
	}

	return TaskResponse{
		ID:           task.ID,
		Index:        task.Index,
		Title:        task.Title,
		Content:      task.Description,
		Status:       task.Status.Slug,
		AssigneeID:   task.AssigneeID,
		TaskLabelIDs: labelIDs,
		CreatedAt:    task.CreatedAt,
	}
}

func NewTaskResponseList(tasks []model.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, NewTaskResponse(&tasks[i]))
	}
	return out
}
