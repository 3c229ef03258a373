package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mentorhub/mentorhub/internal/models"
	"github.com/mentorhub/mentorhub/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MentorshipService owns the mentor/mentee relationship lifecycle.
type MentorshipService struct {
	db       *gorm.DB
	activity *ActivityLogService
}

func NewMentorshipService(db *gorm.DB) *MentorshipService {
	return &MentorshipService{db: db, activity: NewActivityLogService(db)}
}

// AddMentor makes member a mentee of mentor. Repeated calls converge on one
// mentorship whose skills are the union of every call. Skills that are nil,
// unsaved or unknown are skipped. The bool reports whether the row was created.
func (s *MentorshipService) AddMentor(ctx context.Context, member, mentor *models.Member, skills []*models.Skill) (*models.Mentorship, bool, error) {
	return s.pair(ctx, member, mentor, member, skills, "add_mentor")
}

// AddMentee makes member a mentor of mentee. See AddMentor.
func (s *MentorshipService) AddMentee(ctx context.Context, member, mentee *models.Member, skills []*models.Skill) (*models.Mentorship, bool, error) {
	return s.pair(ctx, member, member, mentee, skills, "add_mentee")
}

// pair links mentor to mentee. actor is the member the operation was called on
// and is what the activity entry records.
func (s *MentorshipService) pair(ctx context.Context, actor, mentor, mentee *models.Member, skills []*models.Skill, action string) (*models.Mentorship, bool, error) {
	if err := requireMembers(actor, mentor, mentee); err != nil {
		return nil, false, err
	}

	var mentorship models.Mentorship
	var created bool
	var added int

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		candidate := models.Mentorship{
			MentorID:  mentor.ID,
			MenteeID:  mentee.ID,
			StartDate: time.Now(),
		}
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "mentor_id"}, {Name: "mentee_id"}},
			DoNothing: true,
		}).Create(&candidate)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
				return ErrMemberNotFound
			}
			return result.Error
		}
		created = result.RowsAffected == 1

		if err := tx.Where("mentor_id = ? AND mentee_id = ?", mentor.ID, mentee.ID).First(&mentorship).Error; err != nil {
			return err
		}

		ids, err := knownSkillIDs(tx, skills)
		if err != nil {
			return err
		}
		if len(ids) > 0 {
			links := make([]models.MentorshipSkill, 0, len(ids))
			for _, id := range ids {
				links = append(links, models.MentorshipSkill{MentorshipID: mentorship.ID, SkillID: id})
			}
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&links)
			if res.Error != nil {
				return res.Error
			}
			added = int(res.RowsAffected)
		}

		return tx.Preload("Skills", orderSkills).First(&mentorship, mentorship.ID).Error
	})
	if err != nil {
		return nil, false, err
	}

	if created || added > 0 {
		s.activity.Info(ctx, ModuleMentorship, action,
			fmt.Sprintf("mentor %d / mentee %d", mentor.ID, mentee.ID),
			&actor.ID,
			map[string]interface{}{
				"mentorship_id": mentorship.ID,
				"created":       created,
				"skills_added":  added,
			})
	}
	logger.Debug().
		Uint("mentor_id", mentor.ID).
		Uint("mentee_id", mentee.ID).
		Bool("created", created).
		Int("skills_added", added).
		Msg(action)

	return &mentorship, created, nil
}

// Create inserts a mentorship without the get-or-create path. A second row
// for the same pair fails with ErrMentorshipExists.
func (s *MentorshipService) Create(ctx context.Context, mentor, mentee *models.Member) (*models.Mentorship, error) {
	if err := requireMembers(mentor, mentee); err != nil {
		return nil, err
	}

	mentorship := models.Mentorship{
		MentorID:  mentor.ID,
		MenteeID:  mentee.ID,
		StartDate: time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&mentorship).Error; err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, fmt.Errorf("%w: %w", ErrMentorshipExists, err)
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	s.activity.Info(ctx, ModuleMentorship, "create",
		fmt.Sprintf("mentor %d / mentee %d", mentor.ID, mentee.ID), &mentee.ID, nil)
	return &mentorship, nil
}

// Get returns the mentorship for the pair with both members and skills loaded.
func (s *MentorshipService) Get(ctx context.Context, mentor, mentee *models.Member) (*models.Mentorship, error) {
	if err := requireMembers(mentor, mentee); err != nil {
		return nil, err
	}

	var mentorship models.Mentorship
	err := s.db.WithContext(ctx).
		Preload("Mentor").
		Preload("Mentee").
		Preload("Skills", orderSkills).
		Where("mentor_id = ? AND mentee_id = ?", mentor.ID, mentee.ID).
		First(&mentorship).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMentorshipNotFound
	}
	if err != nil {
		return nil, err
	}
	return &mentorship, nil
}

// ListForMember returns every mentorship the member takes part in, either side.
func (s *MentorshipService) ListForMember(ctx context.Context, member *models.Member) ([]models.Mentorship, error) {
	if err := requireMembers(member); err != nil {
		return nil, err
	}

	var mentorships []models.Mentorship
	err := s.db.WithContext(ctx).
		Preload("Mentor").
		Preload("Mentee").
		Preload("Skills", orderSkills).
		Where("mentor_id = ? OR mentee_id = ?", member.ID, member.ID).
		Order("id ASC").
		Find(&mentorships).Error
	if err != nil {
		return nil, err
	}
	return mentorships, nil
}

// GetMentees returns the members the given member mentors.
func (s *MentorshipService) GetMentees(ctx context.Context, member *models.Member) ([]models.Member, error) {
	if err := requireMembers(member); err != nil {
		return nil, err
	}

	var mentees []models.Member
	err := s.db.WithContext(ctx).
		Joins("JOIN mentorships ON mentorships.mentee_id = members.id").
		Where("mentorships.mentor_id = ?", member.ID).
		Order("members.id ASC").
		Find(&mentees).Error
	if err != nil {
		return nil, err
	}
	return mentees, nil
}

// GetMentors returns the members mentoring the given member.
func (s *MentorshipService) GetMentors(ctx context.Context, member *models.Member) ([]models.Member, error) {
	if err := requireMembers(member); err != nil {
		return nil, err
	}

	var mentors []models.Member
	err := s.db.WithContext(ctx).
		Joins("JOIN mentorships ON mentorships.mentor_id = members.id").
		Where("mentorships.mentee_id = ?", member.ID).
		Order("members.id ASC").
		Find(&mentors).Error
	if err != nil {
		return nil, err
	}
	return mentors, nil
}

// RemoveMentor deletes the mentorship in which mentor mentors member.
// Removing a pair that does not exist is not an error.
func (s *MentorshipService) RemoveMentor(ctx context.Context, member, mentor *models.Member) error {
	return s.unpair(ctx, member, mentor, member, "remove_mentor")
}

// RemoveMentee deletes the mentorship in which member mentors mentee.
func (s *MentorshipService) RemoveMentee(ctx context.Context, member, mentee *models.Member) error {
	return s.unpair(ctx, member, member, mentee, "remove_mentee")
}

func (s *MentorshipService) unpair(ctx context.Context, actor, mentor, mentee *models.Member, action string) error {
	if err := requireMembers(actor, mentor, mentee); err != nil {
		return err
	}

	var removed int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []uint
		if err := tx.Model(&models.Mentorship{}).
			Where("mentor_id = ? AND mentee_id = ?", mentor.ID, mentee.ID).
			Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}

		if err := deleteMentorships(tx, ids); err != nil {
			return err
		}
		removed = int64(len(ids))
		return nil
	})
	if err != nil {
		return err
	}

	if removed > 0 {
		s.activity.Info(ctx, ModuleMentorship, action,
			fmt.Sprintf("mentor %d / mentee %d", mentor.ID, mentee.ID), &actor.ID, nil)
	}
	return nil
}

// deleteMentorships hard-deletes mentorships and their skill links.
func deleteMentorships(tx *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	if err := tx.Where("mentorship_id IN ?", ids).Delete(&models.MentorshipSkill{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", ids).Delete(&models.Mentorship{}).Error
}

func orderSkills(db *gorm.DB) *gorm.DB {
	return db.Order("skills.name ASC")
}
