package service

import (
	"context"
	"strings"

	"taskflow/internal/apperrors"
	"taskflow/internal/dto"
	"taskflow/internal/model"
)

// ApplyTaskUpdate merges a partial update onto a task. Per field: absent
// leaves the current value, explicit null clears it (only legal for the
// optional fields), a value replaces it after reference resolution.
//
// Every resolution and validation runs before the first field is touched,
// so a failing update leaves the task exactly as it was.
func ApplyTaskUpdate(ctx context.Context, resolver *ReferenceResolver, task *model.Task, upd dto.TaskUpdateRequest) error {
	if upd.Title.IsNull() {
		return apperrors.NewValidation("title is required and cannot be cleared")
	}
	if upd.Title.IsSet() && strings.TrimSpace(upd.Title.Get()) == "" {
		return apperrors.NewValidation("title must not be blank")
	}
	if upd.Status.IsNull() {
		return apperrors.NewValidation("status is required and cannot be cleared")
	}

	var newStatus *model.Status
	if upd.Status.IsSet() {
		status, err := resolver.ResolveStatus(ctx, upd.Status.Get())
		if err != nil {
			return err
		}
		newStatus = status
	}

	var newAssignee *model.User
	if upd.AssigneeID.IsSet() {
		assignee, err := resolver.ResolveUser(ctx, upd.AssigneeID.Get())
		if err != nil {
			return err
		}
		newAssignee = assignee
	}

	var newLabels []model.Label
	if upd.TaskLabelIDs.IsSet() {
		labels, err := resolver.ResolveLabels(ctx, upd.TaskLabelIDs.Get())
		if err != nil {
			return err
		}
		newLabels = labels
	}

	// Everything resolved; mutate.
	if upd.Title.IsSet() {
		task.Title = upd.Title.Get()
	}

	if upd.Content.IsSet() {
		task.Description = upd.Content.Get()
	} else if upd.Content.IsNull() {
		task.Description = ""
	}

	if upd.Index.IsSet() {
		index := upd.Index.Get()
		task.Index = &index
	} else if upd.Index.IsNull() {
		task.Index = nil
	}

	if newStatus != nil {
		task.StatusID = newStatus.ID
		task.Status = *newStatus
	}

	if upd.AssigneeID.IsNull() {
		task.AssigneeID = nil
		task.Assignee = nil
	} else if newAssignee != nil {
		task.AssigneeID = &newAssignee.ID
		task.Assignee = newAssignee
	}

	// The label set is replaced wholesale, never merged.
	if upd.TaskLabelIDs.IsNull() {
		task.Labels = []model.Label{}
	} else if upd.TaskLabelIDs.IsSet() {
		task.Labels = newLabels
	}

	return nil
}
