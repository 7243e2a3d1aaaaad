package mysql

import (
	"context"

	recruitmentDomain "lodge-portal/internal/domain/recruitment"

	"gorm.io/gorm"
)

type RecruitmentRepository struct{ db *gorm.DB }

func NewRecruitmentRepository(db *gorm.DB) *RecruitmentRepository {
	return &RecruitmentRepository{db: db}
}

// Create saves the application and its references; gorm writes the has-many
// association in the same transaction.
func (r *RecruitmentRepository) Create(ctx context.Context, a *recruitmentDomain.Application) error {
	err := r.db.WithContext(ctx).Create(a).Error
	if isDuplicate(err) {
		return recruitmentDomain.ErrVoucherConsumed
	}
	return err
}

func (r *RecruitmentRepository) GetByApplicationID(ctx context.Context, applicationID string) (*recruitmentDomain.Application, error) {
	var out recruitmentDomain.Application
	err := r.db.WithContext(ctx).
		Preload("References", orderByPosition).
		Where("application_id = ?", applicationID).
		First(&out).Error
	if err != nil {
		return nil, notFound(err, recruitmentDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *RecruitmentRepository) ListByUser(ctx context.Context, userID uint64) ([]recruitmentDomain.Application, error) {
	var out []recruitmentDomain.Application
	err := r.db.WithContext(ctx).
		Preload("References", orderByPosition).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *RecruitmentRepository) ListAll(ctx context.Context, status recruitmentDomain.Status) ([]recruitmentDomain.Application, error) {
	q := r.db.WithContext(ctx).
		Preload("References", orderByPosition).
		Preload("Applicant")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var out []recruitmentDomain.Application
	err := q.Order("created_at DESC, id DESC").Find(&out).Error
	return out, err
}

// CountByVoucherCode is an integrity query: a code must back at most one
// application. Not part of recruitment.Repository.
func (r *RecruitmentRepository) CountByVoucherCode(ctx context.Context, code string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&recruitmentDomain.Application{}).
		Where("voucher_code = ?", code).
		Count(&n).Error
	return n, err
}

func (r *RecruitmentRepository) UpdateStatus(ctx context.Context, applicationID string, status recruitmentDomain.Status, reviewNotes *string) error {
	updates := map[string]any{"status": status}
	if reviewNotes != nil {
		updates["review_notes"] = *reviewNotes
	}
	res := r.db.WithContext(ctx).
		Model(&recruitmentDomain.Application{}).
		Where("application_id = ?", applicationID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Either missing or unchanged; only the former is an error.
		var n int64
		if err := r.db.WithContext(ctx).Model(&recruitmentDomain.Application{}).
			Where("application_id = ?", applicationID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return recruitmentDomain.ErrNotFound
		}
	}
	return nil
}

func orderByPosition(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }
