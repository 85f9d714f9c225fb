package models

import (
	"time"

	"gorm.io/datatypes"
)

const StatusActive = "Active"

// Project is the unit of persistence and access control. The workspace graph
// is embedded as whole JSON documents; a save replaces both arrays in full
// and bumps the last-modified stamp. The graph never exists outside a
// project.
type Project struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	PublicID string `gorm:"not null;size:100;uniqueIndex" json:"id"`
	Name     string `gorm:"not null;size:100" json:"name"`
	Status   string `gorm:"size:50;default:Active" json:"status"`
	OwnerID  string `gorm:"not null;size:100;index" json:"owner"`

	Nodes datatypes.JSON `json:"nodes"`
	Links datatypes.JSON `json:"links"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"lastModified"`
}
