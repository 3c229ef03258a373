package models

import (
	"fmt"
	"time"
)

// Mentorship is the directed relationship from a mentor to a mentee.
// There is at most one row per (mentor, mentee) pair; the skills it covers
// are a set on that row.
type Mentorship struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	MentorID  uint       `gorm:"uniqueIndex:idx_mentorship_pair;not null" json:"mentor_id"`
	Mentor    *Member    `gorm:"foreignKey:MentorID;constraint:OnDelete:CASCADE" json:"mentor,omitempty"`
	MenteeID  uint       `gorm:"uniqueIndex:idx_mentorship_pair;index;not null" json:"mentee_id"`
	Mentee    *Member    `gorm:"foreignKey:MenteeID;constraint:OnDelete:CASCADE" json:"mentee,omitempty"`
	Skills    []Skill    `gorm:"many2many:mentorship_skills;constraint:OnDelete:CASCADE" json:"skills,omitempty"`
	StartDate time.Time  `gorm:"not null" json:"start_date"`
	EndDate   *time.Time `json:"end_date"` // nil while ongoing
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (Mentorship) TableName() string { return "mentorships" }

// Active reports whether the mentorship has no end date.
func (m *Mentorship) Active() bool { return m.EndDate == nil }

// SkillNames returns the names of the loaded skills.
func (m *Mentorship) SkillNames() []string {
	names := make([]string, 0, len(m.Skills))
	for _, s := range m.Skills {
		names = append(names, s.Name)
	}
	return names
}

func (m *Mentorship) String() string {
	return fmt.Sprintf("Mentor: %d, Mentee: %d", m.MentorID, m.MenteeID)
}

// MentorshipSkill is the join row between a mentorship and a skill.
type MentorshipSkill struct {
	MentorshipID uint      `gorm:"primaryKey"`
	SkillID      uint      `gorm:"primaryKey"`
	CreatedAt    time.Time `json:"created_at"`
}

func (MentorshipSkill) TableName() string { return "mentorship_skills" }
