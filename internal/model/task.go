package model

import (
	"time"
)

type Task struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"not null"`
	Description string
	Index       *int
	StatusID    uint `gorm:"not null;index"`
	AssigneeID  *uint
	CreatedAt   time.Time `gorm:"autoCreateTime"`

	Status   Status  `gorm:"foreignKey:StatusID"`
	Assignee *User   `gorm:"foreignKey:AssigneeID"`
	Labels   []Label `gorm:"many2many:task_labels"`
}
