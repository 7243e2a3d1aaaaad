package mysql

import (
	"context"
	"strings"

	userDomain "lodge-portal/internal/domain/user"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(ctx context.Context, u *userDomain.User) error {
	err := r.db.WithContext(ctx).Create(u).Error
	if isDuplicate(err) {
		return userDomain.ErrEmailTaken
	}
	return err
}

func (r *UserRepository) Save(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UserRepository) GetByPublicID(ctx context.Context, publicID string) (*userDomain.User, error) {
	var out userDomain.User
	if err := r.db.WithContext(ctx).Where("public_id = ?", publicID).First(&out).Error; err != nil {
		return nil, notFound(err, userDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	var out userDomain.User
	if err := r.db.WithContext(ctx).Where("email = ?", strings.ToLower(email)).First(&out).Error; err != nil {
		return nil, notFound(err, userDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *UserRepository) List(ctx context.Context, f userDomain.Filter) ([]userDomain.User, error) {
	q := r.db.WithContext(ctx).Model(&userDomain.User{})
	if f.Country != "" {
		q = q.Where("country = ?", f.Country)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + escapeLike(strings.ToLower(s)) + "%"
		q = q.Where("(LOWER(full_name) LIKE ? ESCAPE '!' OR LOWER(email) LIKE ? ESCAPE '!')", like, like)
	}
	var out []userDomain.User
	err := q.Order("created_at DESC, id DESC").Find(&out).Error
	return out, err
}

func (r *UserRepository) Delete(ctx context.Context, publicID string) error {
	res := r.db.WithContext(ctx).Where("public_id = ?", publicID).Delete(&userDomain.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return userDomain.ErrNotFound
	}
	return nil
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func escapeLike(s string) string { return likeEscaper.Replace(s) }
