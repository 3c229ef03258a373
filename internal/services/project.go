package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mentorhub/mentorhub/internal/models"
	"gorm.io/gorm"
)

type ProjectService struct {
	db       *gorm.DB
	activity *ActivityLogService
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db, activity: NewActivityLogService(db)}
}

type ProjectListRequest struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Name     string `form:"name"`
	MemberID *uint  `form:"member_id"`
}

type ProjectListResponse struct {
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
	Items    []models.Project `json:"items"`
}

type CreateProjectRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
}

type UpdateProjectRequest struct {
	Name        string  `json:"name" validate:"omitempty,max=100"`
	Description *string `json:"description"`
}

type CreateProjectLinkRequest struct {
	Category string `json:"category" validate:"required,oneof=repository live_app download other"`
	URL      string `json:"url" validate:"required,url,max=500"`
}

// List returns paginated projects
func (s *ProjectService) List(ctx context.Context, req *ProjectListRequest) (*ProjectListResponse, error) {
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 10
	}

	var projects []models.Project
	var total int64

	query := s.db.WithContext(ctx).Model(&models.Project{})

	if req.Name != "" {
		query = query.Where("name LIKE ? ESCAPE '!'", containsPattern(req.Name))
	}
	if req.MemberID != nil {
		query = query.Where("id IN (?)",
			s.db.WithContext(ctx).Table("project_members").Select("project_id").Where("member_id = ?", *req.MemberID))
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (req.Page - 1) * req.PageSize
	if err := query.Offset(offset).Limit(req.PageSize).Order("id DESC").Find(&projects).Error; err != nil {
		return nil, err
	}

	return &ProjectListResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		Items:    projects,
	}, nil
}

// GetByID returns a project with members, skills and links loaded
func (s *ProjectService) GetByID(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	err := s.db.WithContext(ctx).
		Preload("Members", func(db *gorm.DB) *gorm.DB { return db.Order("members.id ASC") }).
		Preload("Skills", orderSkills).
		Preload("Links", func(db *gorm.DB) *gorm.DB { return db.Order("project_links.id ASC") }).
		First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *ProjectService) Create(ctx context.Context, req *CreateProjectRequest) (*models.Project, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	project := models.Project{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.db.WithContext(ctx).Create(&project).Error; err != nil {
		return nil, err
	}

	s.activity.Info(ctx, ModuleProject, "create", "project created: "+project.Name, nil,
		map[string]interface{}{"project_id": project.ID})
	return &project, nil
}

func (s *ProjectService) Update(ctx context.Context, id uint, req *UpdateProjectRequest) (*models.Project, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var project models.Project
	if err := s.db.WithContext(ctx).First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if len(updates) == 0 {
		return &project, nil
	}

	if err := s.db.WithContext(ctx).Model(&project).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// AddMembers adds participants. Members already on the project and members
// that do not exist are skipped.
func (s *ProjectService) AddMembers(ctx context.Context, projectID uint, members []*models.Member) error {
	ids := make([]uint, 0, len(members))
	for _, m := range members {
		if m != nil && m.ID != 0 {
			ids = append(ids, m.ID)
		}
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		project, err := findProject(tx, projectID)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}

		var known []models.Member
		if err := tx.Where("id IN ?", ids).Find(&known).Error; err != nil {
			return err
		}
		if len(known) == 0 {
			return nil
		}
		return tx.Model(project).Omit("Members.*").Association("Members").Append(&known)
	})
}

// AddSkills tags the project with skills. Unknown skills are skipped.
func (s *ProjectService) AddSkills(ctx context.Context, projectID uint, skills []*models.Skill) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		project, err := findProject(tx, projectID)
		if err != nil {
			return err
		}

		ids, err := knownSkillIDs(tx, skills)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}

		var known []models.Skill
		if err := tx.Where("id IN ?", ids).Find(&known).Error; err != nil {
			return err
		}
		return tx.Model(project).Omit("Skills.*").Association("Skills").Append(&known)
	})
}

func (s *ProjectService) AddLink(ctx context.Context, projectID uint, req *CreateProjectLinkRequest) (*models.ProjectLink, error) {
	req.URL = strings.TrimSpace(req.URL)
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	link := models.ProjectLink{ProjectID: projectID, Category: req.Category, URL: req.URL}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findProject(tx, projectID); err != nil {
			return err
		}
		return tx.Create(&link).Error
	})
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// Delete removes a project with its links and memberships
func (s *ProjectService) Delete(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		project, err := findProject(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Model(project).Association("Members").Clear(); err != nil {
			return err
		}
		if err := tx.Model(project).Association("Skills").Clear(); err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectLink{}).Error; err != nil {
			return err
		}
		return tx.Delete(project).Error
	})
	if err != nil {
		return err
	}

	s.activity.Info(ctx, ModuleProject, "delete", fmt.Sprintf("project %d deleted", id), nil, nil)
	return nil
}

func findProject(tx *gorm.DB, id uint) (*models.Project, error) {
	var project models.Project
	if err := tx.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}
