package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mentorhub/mentorhub/internal/models"
	"github.com/mentorhub/mentorhub/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MemberService struct {
	db       *gorm.DB
	activity *ActivityLogService
}

func NewMemberService(db *gorm.DB) *MemberService {
	return &MemberService{db: db, activity: NewActivityLogService(db)}
}

type CreateMemberRequest struct {
	Email     string            `json:"email" validate:"required,email,max=255"`
	Password  string            `json:"password" validate:"omitempty,min=8,max=72"`
	FirstName string            `json:"first_name" validate:"required,max=30"`
	LastName  string            `json:"last_name" validate:"required,max=30"`
	Location  string            `json:"location" validate:"max=100"`
	Role      models.MemberRole `json:"role" validate:"required,oneof=mentee mentor"`
	IsAdmin   bool              `json:"is_admin"`
}

type MemberListRequest struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Name     string `form:"name"`
	Role     string `form:"role"`
}

type MemberListResponse struct {
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
	Items    []models.Member `json:"items"`
}

type CreateLinkRequest struct {
	Category string `json:"category" validate:"required,oneof=social professional website other"`
	URL      string `json:"url" validate:"required,url,max=500"`
}

// Create registers a member. Input is validated before anything is written.
func (s *MemberService) Create(ctx context.Context, req *CreateMemberRequest) (*models.Member, error) {
	req.Email = models.NormalizeEmail(req.Email)
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	member := models.Member{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Location:  strings.TrimSpace(req.Location),
		Role:      req.Role,
		IsAdmin:   req.IsAdmin,
	}
	if req.Password != "" {
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		member.Password = hash
	}

	if err := s.db.WithContext(ctx).Create(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.activity.Info(ctx, ModuleMember, "create", "member registered: "+member.Email, &member.ID, nil)
	return &member, nil
}

func (s *MemberService) GetByID(ctx context.Context, id uint) (*models.Member, error) {
	var member models.Member
	err := s.db.WithContext(ctx).Preload("Interests").First(&member, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByEmail looks a member up by address, ignoring case.
func (s *MemberService) GetByEmail(ctx context.Context, email string) (*models.Member, error) {
	var member models.Member
	err := s.db.WithContext(ctx).Preload("Interests").
		Where("email = ?", models.NormalizeEmail(email)).
		First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// List returns paginated members
func (s *MemberService) List(ctx context.Context, req *MemberListRequest) (*MemberListResponse, error) {
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 20
	}

	var members []models.Member
	var total int64

	query := s.db.WithContext(ctx).Model(&models.Member{})

	if req.Name != "" {
		like := containsPattern(req.Name)
		query = query.Where("first_name LIKE ? ESCAPE '!' OR last_name LIKE ? ESCAPE '!' OR email LIKE ? ESCAPE '!'", like, like, like)
	}
	if req.Role != "" {
		query = query.Where("role = ?", req.Role)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (req.Page - 1) * req.PageSize
	if err := query.Offset(offset).Limit(req.PageSize).Order("id ASC").Find(&members).Error; err != nil {
		return nil, err
	}

	return &MemberListResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		Items:    members,
	}, nil
}

// Delete removes a member together with the mentorships, ratings, links and
// memberships that reference it.
func (s *MemberService) Delete(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var member models.Member
		if err := tx.First(&member, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMemberNotFound
			}
			return err
		}

		var ids []uint
		if err := tx.Model(&models.Mentorship{}).
			Where("mentor_id = ? OR mentee_id = ?", id, id).
			Pluck("id", &ids).Error; err != nil {
			return err
		}
		if err := deleteMentorships(tx, ids); err != nil {
			return err
		}

		if err := tx.Where("member_id = ?", id).Delete(&models.MemberSkill{}).Error; err != nil {
			return err
		}
		if err := tx.Where("member_id = ?", id).Delete(&models.MemberLink{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&member).Association("Interests").Clear(); err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM project_members WHERE member_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&member).Error
	})
	if err != nil {
		return err
	}

	s.activity.Info(ctx, ModuleMember, "delete", fmt.Sprintf("member %d deleted", id), &id, nil)
	return nil
}

// AddInterests attaches interests to the member. Unknown interests are skipped.
func (s *MemberService) AddInterests(ctx context.Context, member *models.Member, interests []*models.Interest) error {
	if err := requireMembers(member); err != nil {
		return err
	}

	ids := make([]uint, 0, len(interests))
	for _, interest := range interests {
		if interest != nil && interest.ID != 0 {
			ids = append(ids, interest.ID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var known []models.Interest
		if err := tx.Where("id IN ?", ids).Find(&known).Error; err != nil {
			return err
		}
		if len(known) == 0 {
			return nil
		}
		return tx.Model(member).Association("Interests").Append(&known)
	})
}

// SetSkillRating records the member's skill, replacing any previous rating.
// A nil rating stores the skill unrated.
func (s *MemberService) SetSkillRating(ctx context.Context, member *models.Member, skill *models.Skill, rating *models.SkillRating) (*models.MemberSkill, error) {
	if err := requireMembers(member); err != nil {
		return nil, err
	}
	if skill == nil || skill.ID == 0 {
		return nil, ErrSkillNotFound
	}
	if rating != nil && !rating.Valid() {
		return nil, ErrInvalidRating
	}

	db := s.db.WithContext(ctx)
	row := models.MemberSkill{MemberID: member.ID, SkillID: skill.ID, Rating: rating}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "member_id"}, {Name: "skill_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating"}),
	}).Create(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, fmt.Errorf("member %d or skill %d: %w", member.ID, skill.ID, ErrMemberNotFound)
		}
		return nil, err
	}

	var stored models.MemberSkill
	if err := db.Preload("Skill").
		Where("member_id = ? AND skill_id = ?", member.ID, skill.ID).
		First(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

// Skills returns the member's rated skills ordered by skill name.
func (s *MemberService) Skills(ctx context.Context, member *models.Member) ([]models.MemberSkill, error) {
	if err := requireMembers(member); err != nil {
		return nil, err
	}

	var rows []models.MemberSkill
	err := s.db.WithContext(ctx).
		Preload("Skill").
		Joins("JOIN skills ON skills.id = member_skills.skill_id").
		Where("member_skills.member_id = ?", member.ID).
		Order("skills.name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *MemberService) AddLink(ctx context.Context, member *models.Member, req *CreateLinkRequest) (*models.MemberLink, error) {
	if err := requireMembers(member); err != nil {
		return nil, err
	}
	req.URL = strings.TrimSpace(req.URL)
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	link := models.MemberLink{MemberID: member.ID, Category: req.Category, URL: req.URL}
	if err := s.db.WithContext(ctx).Create(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return &link, nil
}

func (s *MemberService) Links(ctx context.Context, member *models.Member) ([]models.MemberLink, error) {
	if err := requireMembers(member); err != nil {
		return nil, err
	}

	var links []models.MemberLink
	if err := s.db.WithContext(ctx).Where("member_id = ?", member.ID).Order("id ASC").Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}
