package models

// Skill is a concrete capability, e.g. Photoshop or Go
type Skill struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;size:100;not null" json:"name"`
}

func (Skill) TableName() string { return "skills" }

func (s Skill) String() string { return s.Name }

// Interest is a broad topic rather than a specific skill,
// e.g. Design Concepts rather than Photoshop.
type Interest struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;size:100;not null" json:"name"`
}

func (Interest) TableName() string { return "interests" }

func (i Interest) String() string { return i.Name }
