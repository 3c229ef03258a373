package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mentorhub/mentorhub/internal/models"
	"github.com/mentorhub/mentorhub/pkg/logger"
	"gorm.io/gorm"
)

const (
	ModuleMentorship = "mentorship"
	ModuleMember     = "member"
	ModuleProject    = "project"
)

type ActivityLogService struct {
	db *gorm.DB
}

func NewActivityLogService(db *gorm.DB) *ActivityLogService {
	return &ActivityLogService{db: db}
}

func (s *ActivityLogService) Info(ctx context.Context, module, action, message string, memberID *uint, extra interface{}) {
	s.write(ctx, "info", module, action, message, memberID, extra)
}

func (s *ActivityLogService) Warning(ctx context.Context, module, action, message string, memberID *uint, extra interface{}) {
	s.write(ctx, "warning", module, action, message, memberID, extra)
}

func (s *ActivityLogService) Error(ctx context.Context, module, action, message string, memberID *uint, extra interface{}) {
	s.write(ctx, "error", module, action, message, memberID, extra)
}

// write never fails the caller; a lost activity entry is only logged.
func (s *ActivityLogService) write(ctx context.Context, level, module, action, message string, memberID *uint, extra interface{}) {
	if s == nil || s.db == nil {
		return
	}

	var extraStr string
	if extra != nil {
		if b, err := json.Marshal(extra); err == nil {
			extraStr = string(b)
		}
	}

	entry := &models.ActivityLog{
		Level:     level,
		Module:    module,
		Action:    action,
		Message:   message,
		MemberID:  memberID,
		Extra:     extraStr,
		CreatedAt: time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		logger.Warn().Err(err).Str("module", module).Str("action", action).Msg("failed to write activity log")
	}
}

type ActivityLogListRequest struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Level    string `form:"level"`
	Module   string `form:"module"`
	Action   string `form:"action"`
	MemberID *uint  `form:"member_id"`
	Search   string `form:"search"`
}

type ActivityLogListResponse struct {
	Total    int64                `json:"total"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"page_size"`
	Items    []models.ActivityLog `json:"items"`
}

func (s *ActivityLogService) List(ctx context.Context, req *ActivityLogListRequest) (*ActivityLogListResponse, error) {
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 20
	}

	var logs []models.ActivityLog
	var total int64

	query := s.db.WithContext(ctx).Model(&models.ActivityLog{})

	if req.Level != "" {
		query = query.Where("level = ?", req.Level)
	}
	if req.Module != "" {
		query = query.Where("module = ?", req.Module)
	}
	if req.Action != "" {
		query = query.Where("action LIKE ? ESCAPE '!'", containsPattern(req.Action))
	}
	if req.MemberID != nil {
		query = query.Where("member_id = ?", *req.MemberID)
	}
	if req.Search != "" {
		query = query.Where("message LIKE ? ESCAPE '!'", containsPattern(req.Search))
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (req.Page - 1) * req.PageSize
	if err := query.Offset(offset).Limit(req.PageSize).Order("created_at DESC, id DESC").Find(&logs).Error; err != nil {
		return nil, err
	}

	return &ActivityLogListResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		Items:    logs,
	}, nil
}

func (s *ActivityLogService) GetModules(ctx context.Context) ([]string, error) {
	var modules []string
	if err := s.db.WithContext(ctx).Model(&models.ActivityLog{}).Distinct("module").Order("module").Pluck("module", &modules).Error; err != nil {
		return nil, err
	}
	return modules, nil
}

// CleanupOldLogs deletes logs older than the specified number of days
// Returns the number of deleted records
func (s *ActivityLogService) CleanupOldLogs(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, nil
	}

	cutoffTime := time.Now().AddDate(0, 0, -retentionDays)
	result := s.db.WithContext(ctx).Where("created_at < ?", cutoffTime).Delete(&models.ActivityLog{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
