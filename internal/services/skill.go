package services

import (
	"context"
	"errors"
	"strings"

	"github.com/mentorhub/mentorhub/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SkillService struct {
	db *gorm.DB
}

func NewSkillService(db *gorm.DB) *SkillService {
	return &SkillService{db: db}
}

// GetOrCreate returns the skill with the given name, inserting it first if
// absent. The unique index on name arbitrates concurrent callers.
func (s *SkillService) GetOrCreate(ctx context.Context, name string) (*models.Skill, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false, ErrNameRequired
	}

	db := s.db.WithContext(ctx)
	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&models.Skill{Name: name})
	if result.Error != nil {
		return nil, false, result.Error
	}

	var skill models.Skill
	if err := db.Where("name = ?", name).First(&skill).Error; err != nil {
		return nil, false, err
	}
	return &skill, result.RowsAffected == 1, nil
}

func (s *SkillService) GetByName(ctx context.Context, name string) (*models.Skill, error) {
	var skill models.Skill
	err := s.db.WithContext(ctx).Where("name = ?", strings.TrimSpace(name)).First(&skill).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSkillNotFound
	}
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

func (s *SkillService) List(ctx context.Context) ([]models.Skill, error) {
	var skills []models.Skill
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

// knownSkillIDs drops nil entries, unsaved skills and ids that are not in the
// skills table. Order of first appearance is kept.
func knownSkillIDs(tx *gorm.DB, skills []*models.Skill) ([]uint, error) {
	candidates := make([]uint, 0, len(skills))
	seen := make(map[uint]bool, len(skills))
	for _, skill := range skills {
		if skill == nil || skill.ID == 0 || seen[skill.ID] {
			continue
		}
		seen[skill.ID] = true
		candidates = append(candidates, skill.ID)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	var found []uint
	if err := tx.Model(&models.Skill{}).Where("id IN ?", candidates).Pluck("id", &found).Error; err != nil {
		return nil, err
	}
	exists := make(map[uint]bool, len(found))
	for _, id := range found {
		exists[id] = true
	}

	ids := make([]uint, 0, len(found))
	for _, id := range candidates {
		if exists[id] {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
