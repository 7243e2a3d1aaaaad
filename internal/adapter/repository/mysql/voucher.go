package mysql

import (
	"context"
	"time"

	voucherDomain "lodge-portal/internal/domain/voucher"

	"gorm.io/gorm"
)

type VoucherRepository struct{ db *gorm.DB }

func NewVoucherRepository(db *gorm.DB) *VoucherRepository { return &VoucherRepository{db: db} }

func (r *VoucherRepository) Create(ctx context.Context, v *voucherDomain.Voucher) error {
	err := r.db.WithContext(ctx).Create(v).Error
	if isDuplicate(err) {
		return voucherDomain.ErrCodeTaken
	}
	return err
}

func (r *VoucherRepository) GetByCode(ctx context.Context, code string) (*voucherDomain.Voucher, error) {
	var out voucherDomain.Voucher
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&out).Error; err != nil {
		return nil, notFound(err, voucherDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *VoucherRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&voucherDomain.Voucher{}).Where("code = ?", code).Count(&n).Error
	return n > 0, err
}

// Redeem is a compare-and-swap on the used flag: the UPDATE only matches a
// row that is still unused, so two racing redemptions cannot both win.
func (r *VoucherRepository) Redeem(ctx context.Context, code string, redeemerID uint64, at time.Time) (*voucherDomain.Voucher, error) {
	db := r.db.WithContext(ctx)
	res := db.Model(&voucherDomain.Voucher{}).
		Where("code = ? AND used = ?", code, false).
		Updates(map[string]any{
			"used":    true,
			"used_by": redeemerID,
			"used_at": at,
		})
	if res.Error != nil {
		return nil, res.Error
	}

	v, err := r.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if res.RowsAffected == 0 {
		return nil, voucherDomain.ErrAlreadyUsed
	}
	return v, nil
}

func (r *VoucherRepository) ListWithParties(ctx context.Context) ([]voucherDomain.Voucher, error) {
	var out []voucherDomain.Voucher
	err := r.db.WithContext(ctx).
		Preload("Issuer").
		Preload("Redeemer").
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}
