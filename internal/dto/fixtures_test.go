package dto_test

import (
	"taskflow/internal/model"
)

func taskFixture(assigneeID uint) *model.Task {
	return &model.Task{
		ID:          3,
		Title:       "Fix the build",
		Description: "broken on main",
		StatusID:    1,
		AssigneeID:  &assigneeID,
		Status:      model.Status{ID: 1, Name: "To Be Fixed", Slug: "to_be_fixed"},
		Labels: []model.Label{
			{ID: 1, Name: "feature"},
			{ID: 2, Name: "bug"},
		},
	}
}
