package contact

import (
	"context"
	"errors"

	"github.com/lb-platform/core/internal/models"
	"github.com/lb-platform/core/internal/pkg/pagination"
	"github.com/lb-platform/core/internal/pkg/response"
	"gorm.io/gorm"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// SubmitServices stores a services-marketplace lead.
func (s *Service) SubmitServices(ctx context.Context, dto *ServicesDTO, ip string) (*models.ContactModel, error) {
	lead := models.ContactModel{
		Site:     models.SiteServices,
		Name:     dto.Name,
		Phone:    dto.Phone,
		Email:    dto.Email,
		Service:  dto.Service,
		Location: dto.Location,
		Message:  dto.Message,
		IP:       ip,
		Status:   models.ContactNew,
	}
	return &lead, s.db.WithContext(ctx).Create(&lead).Error
}

// SubmitInteriors stores an interior-design consultation request.
func (s *Service) SubmitInteriors(ctx context.Context, dto *InteriorsDTO, ip string) (*models.ContactModel, error) {
	lead := models.ContactModel{
		Site:           models.SiteInteriors,
		Name:           dto.Name,
		Phone:          dto.Phone,
		Email:          dto.Email,
		ProjectDetails: dto.ProjectDetails,
		IP:             ip,
		Status:         models.ContactNew,
	}
	return &lead, s.db.WithContext(ctx).Create(&lead).Error
}

// List returns a page of leads for one site, newest first, optionally
// filtered by status.
func (s *Service) List(ctx context.Context, site models.Site, status string, q pagination.Query) ([]models.ContactModel, response.Pagination, error) {
	query := s.db.WithContext(ctx).Model(&models.ContactModel{}).
		Where("site = ?", site).
		Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var leads []models.ContactModel
	pag, err := pagination.Paginate(query, q, &leads)
	return leads, pag, err
}

// GetByID loads one lead. Returns (nil, nil) when absent.
func (s *Service) GetByID(ctx context.Context, site models.Site, id string) (*models.ContactModel, error) {
	var lead models.ContactModel
	err := s.db.WithContext(ctx).
		Where("site = ? AND id = ?", site, id).
		First(&lead).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &lead, nil
}

// UpdateStatus sets the lead status. Returns false when the lead is absent.
func (s *Service) UpdateStatus(ctx context.Context, site models.Site, id, status string) (bool, error) {
	res := s.db.WithContext(ctx).Model(&models.ContactModel{}).
		Where("site = ? AND id = ?", site, id).
		Update("status", status)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		// Either missing or already in that status; disambiguate for the 404.
		lead, err := s.GetByID(ctx, site, id)
		if err != nil {
			return false, err
		}
		return lead != nil, nil
	}
	return true, nil
}

// Delete removes a lead. Returns false when absent.
func (s *Service) Delete(ctx context.Context, site models.Site, id string) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.ContactModel{}, "site = ? AND id = ?", site, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// GetStats aggregates lead counts for one site in a single query. Date
// comparisons run server-side so "today" follows the database clock.
func (s *Service) GetStats(ctx context.Context, site models.Site) (*Stats, error) {
	var stats Stats
	err := s.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN status = 'new' THEN 1 ELSE 0 END), 0) AS new_count,
			COALESCE(SUM(CASE WHEN status = 'in_progress' THEN 1 ELSE 0 END), 0) AS in_progress_count,
			COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0) AS completed_count,
			COALESCE(SUM(CASE WHEN status = 'closed' THEN 1 ELSE 0 END), 0) AS closed_count,
			COALESCE(SUM(CASE WHEN DATE(created_at) = CURDATE() THEN 1 ELSE 0 END), 0) AS today_count,
			COALESCE(SUM(CASE WHEN YEARWEEK(created_at, 1) = YEARWEEK(CURDATE(), 1) THEN 1 ELSE 0 END), 0) AS this_week_count,
			COALESCE(SUM(CASE WHEN DATE_FORMAT(created_at, '%Y-%m') = DATE_FORMAT(CURDATE(), '%Y-%m') THEN 1 ELSE 0 END), 0) AS this_month_count
		FROM contacts
		WHERE site = ?`, site).Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
