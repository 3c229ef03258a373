package models

import "time"

// Project represents something members built together
type Project struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	Name        string        `gorm:"size:100;not null" json:"name"`
	Description string        `gorm:"type:text" json:"description"`
	Members     []Member      `gorm:"many2many:project_members;constraint:OnDelete:CASCADE" json:"members,omitempty"`
	Skills      []Skill       `gorm:"many2many:project_skills;constraint:OnDelete:CASCADE" json:"skills,omitempty"`
	Links       []ProjectLink `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"links,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func (Project) TableName() string { return "projects" }

func (p Project) String() string { return p.Name }
