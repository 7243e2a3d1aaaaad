package recruitment

import "context"

type Repository interface {
	// Create inserts the application together with its references.
	Create(ctx context.Context, a *Application) error
	GetByApplicationID(ctx context.Context, applicationID string) (*Application, error)
	ListByUser(ctx context.Context, userID uint64) ([]Application, error)
	// ListAll returns applications newest first with Applicant loaded. An
	// empty status means no filter.
	ListAll(ctx context.Context, status Status) ([]Application, error)
	UpdateStatus(ctx context.Context, applicationID string, status Status, reviewNotes *string) error
}
