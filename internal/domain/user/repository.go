package user

import "context"

// Filter narrows ListUsers. Empty fields are ignored; Search matches name or
// email case-insensitively.
type Filter struct {
	Country string
	Status  Status
	Search  string
}

type Repository interface {
	Create(ctx context.Context, u *User) error
	Save(ctx context.Context, u *User) error
	GetByPublicID(ctx context.Context, publicID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, f Filter) ([]User, error)
	// Delete hard-deletes the account. Returns ErrNotFound when nothing matched.
	Delete(ctx context.Context, publicID string) error
}
