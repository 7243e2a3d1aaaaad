package document

import "context"

type Repository interface {
	Create(ctx context.Context, d *Document) error
	GetByDocumentID(ctx context.Context, documentID string) (*Document, error)
	ListByUser(ctx context.Context, userID uint64) ([]Document, error)
	ListAll(ctx context.Context) ([]Document, error)
	Delete(ctx context.Context, documentID string) error
}

type FileStore interface {
	Put(ctx context.Context, f *File) error
	Get(ctx context.Context, fileID string) (*File, error)
	Delete(ctx context.Context, fileID string) error
}
