package services

import (
	"context"
	"errors"
	"strings"

	"github.com/mentorhub/mentorhub/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InterestService struct {
	db *gorm.DB
}

func NewInterestService(db *gorm.DB) *InterestService {
	return &InterestService{db: db}
}

func (s *InterestService) GetOrCreate(ctx context.Context, name string) (*models.Interest, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false, ErrNameRequired
	}

	db := s.db.WithContext(ctx)
	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&models.Interest{Name: name})
	if result.Error != nil {
		return nil, false, result.Error
	}

	var interest models.Interest
	if err := db.Where("name = ?", name).First(&interest).Error; err != nil {
		return nil, false, err
	}
	return &interest, result.RowsAffected == 1, nil
}

func (s *InterestService) GetByName(ctx context.Context, name string) (*models.Interest, error) {
	var interest models.Interest
	err := s.db.WithContext(ctx).Where("name = ?", strings.TrimSpace(name)).First(&interest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInterestNotFound
	}
	if err != nil {
		return nil, err
	}
	return &interest, nil
}

func (s *InterestService) List(ctx context.Context) ([]models.Interest, error) {
	var interests []models.Interest
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&interests).Error; err != nil {
		return nil, err
	}
	return interests, nil
}
