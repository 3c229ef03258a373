package models

import "fmt"

const (
	MemberLinkSocial       = "social"
	MemberLinkProfessional = "professional"
	MemberLinkWebsite      = "website" // website or blog
	MemberLinkOther        = "other"

	ProjectLinkRepository = "repository"
	ProjectLinkLiveApp    = "live_app"
	ProjectLinkDownload   = "download"
	ProjectLinkOther      = "other"
)

// MemberLink is a categorized URL on a member profile
type MemberLink struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	MemberID uint    `gorm:"index;not null" json:"member_id"`
	Member   *Member `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE" json:"member,omitempty"`
	Category string  `gorm:"size:20;not null" json:"category"` // social, professional, website, other
	URL      string  `gorm:"size:500;not null" json:"url"`
}

func (MemberLink) TableName() string { return "member_links" }

func (l MemberLink) String() string { return fmt.Sprintf("%d - %s", l.MemberID, l.URL) }

// ProjectLink is a categorized URL on a project
type ProjectLink struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProjectID uint   `gorm:"index;not null" json:"project_id"`
	Category  string `gorm:"size:20;not null" json:"category"` // repository, live_app, download, other
	URL       string `gorm:"size:500;not null" json:"url"`
}

func (ProjectLink) TableName() string { return "project_links" }

func (l ProjectLink) String() string { return fmt.Sprintf("%d - %s", l.ProjectID, l.URL) }
