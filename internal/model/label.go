package model

import (
	"time"
)

type Label struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	Tasks []Task `gorm:"many2many:task_labels"`
}
