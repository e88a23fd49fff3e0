package specification

import (
	"strings"

	"gorm.io/gorm"

	"taskflow/internal/dto"
)

// Predicate is one named filter condition. Predicates are plain data so the
// builder can be unit-tested without a database; Apply hands them to gorm.
type Predicate struct {
	Name string
	Expr string
	Args []any
	Join string
}

// TaskQuery is an AND-composition of independent predicates. An empty query
// matches every task. Result ordering is whatever the store returns.
type TaskQuery struct {
	predicates []Predicate
}

func (q TaskQuery) Predicates() []Predicate {
	return q.predicates
}

// BuildTaskQuery turns a filter into predicates. Absent or blank fields
// contribute nothing.
func BuildTaskQuery(filter dto.TaskFilter) TaskQuery {
	var predicates []Predicate

	if title := strings.TrimSpace(filter.TitleCont); title != "" {
		predicates = append(predicates, Predicate{
			Name: "titleCont",
			Expr: "LOWER(tasks.title) LIKE ?",
			Args: []any{"%" + strings.ToLower(title) + "%"},
		})
	}

	if filter.AssigneeID != nil {
		predicates = append(predicates, Predicate{
			Name: "assigneeId",
			Expr: "tasks.assignee_id = ?",
			Args: []any{*filter.AssigneeID},
		})
	}

	if slug := strings.TrimSpace(filter.Status); slug != "" {
		predicates = append(predicates, Predicate{
			Name: "status",
			Expr: "statuses.slug = ?",
			Args: []any{slug},
			Join: "JOIN statuses ON statuses.id = tasks.status_id",
		})
	}

	if filter.LabelID != nil {
		predicates = append(predicates, Predicate{
			Name: "labelId",
			Expr: "task_labels.label_id = ?",
			Args: []any{*filter.LabelID},
			Join: "LEFT JOIN task_labels ON task_labels.task_id = tasks.id",
		})
	}

	return TaskQuery{predicates: predicates}
}

// Apply attaches every predicate to the query. Any join can fan rows out,
// so joined queries select distinct tasks.
func (q TaskQuery) Apply(db *gorm.DB) *gorm.DB {
	joined := false
	for _, p := range q.predicates {
		if p.Join != "" {
			db = db.Joins(p.Join)
			joined = true
		}
		db = db.Where(p.Expr, p.Args...)
	}
	if joined {
		db = db.Distinct("tasks.*")
	}
	return db
}
