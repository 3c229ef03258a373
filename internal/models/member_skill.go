package models

import "fmt"

// SkillRating grades proficiency from 1 (Beginner) to 5 (Proficient)
type SkillRating int

const (
	RatingBeginner SkillRating = iota + 1
	RatingIntermediate
	RatingCompetent
	RatingHighlyExperienced
	RatingProficient
)

var ratingLabels = map[SkillRating]string{
	RatingBeginner:          "Beginner",
	RatingIntermediate:      "Intermediate",
	RatingCompetent:         "Competent",
	RatingHighlyExperienced: "Highly Experienced",
	RatingProficient:        "Proficient",
}

func (r SkillRating) Valid() bool {
	_, ok := ratingLabels[r]
	return ok
}

func (r SkillRating) String() string {
	if label, ok := ratingLabels[r]; ok {
		return label
	}
	return fmt.Sprintf("SkillRating(%d)", int(r))
}

// MemberSkill rates a member's proficiency in a skill. Rating is optional.
type MemberSkill struct {
	ID       uint         `gorm:"primaryKey" json:"id"`
	MemberID uint         `gorm:"uniqueIndex:idx_member_skill;not null" json:"member_id"`
	Member   *Member      `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE" json:"member,omitempty"`
	SkillID  uint         `gorm:"uniqueIndex:idx_member_skill;index;not null" json:"skill_id"`
	Skill    *Skill       `gorm:"foreignKey:SkillID;constraint:OnDelete:CASCADE" json:"skill,omitempty"`
	Rating   *SkillRating `json:"rating"`
}

func (MemberSkill) TableName() string { return "member_skills" }

// RatingLabel returns the display label, or "" when unrated.
func (ms *MemberSkill) RatingLabel() string {
	if ms.Rating == nil {
		return ""
	}
	return ms.Rating.String()
}
