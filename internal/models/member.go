package models

import (
	"strings"
	"time"
)

// MemberRole is the role a member signed up with. It does not restrict which
// side of a mentorship the member can take.
type MemberRole string

const (
	RoleMentee MemberRole = "mentee"
	RoleMentor MemberRole = "mentor"
)

// Member represents a person on the platform, identified by email
type Member struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Email     string     `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password  string     `gorm:"size:255" json:"-"` // bcrypt hash, empty when no credential was set
	FirstName string     `gorm:"size:30;not null" json:"first_name"`
	LastName  string     `gorm:"size:30;not null" json:"last_name"`
	Location  string     `gorm:"size:100" json:"location"`
	Role      MemberRole `gorm:"size:20;not null" json:"role"`
	Interests []Interest `gorm:"many2many:member_interests;constraint:OnDelete:CASCADE" json:"interests,omitempty"`
	IsAdmin   bool       `gorm:"default:false" json:"is_admin"`
	IsActive  bool       `gorm:"default:true" json:"is_active"`
	LastLogin *time.Time `json:"last_login"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (Member) TableName() string { return "members" }

func (m *Member) FullName() string {
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}

func (m *Member) ShortName() string {
	if m.FirstName != "" {
		return m.FirstName
	}
	return m.Email
}

func (m *Member) String() string { return m.Email }

// NormalizeEmail trims and lower-cases an address so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
