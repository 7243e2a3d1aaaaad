package mysql

import (
	"context"

	documentDomain "lodge-portal/internal/domain/document"

	"gorm.io/gorm"
)

type DocumentRepository struct{ db *gorm.DB }

func NewDocumentRepository(db *gorm.DB) *DocumentRepository { return &DocumentRepository{db: db} }

func (r *DocumentRepository) Create(ctx context.Context, d *documentDomain.Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DocumentRepository) GetByDocumentID(ctx context.Context, documentID string) (*documentDomain.Document, error) {
	var out documentDomain.Document
	if err := r.db.WithContext(ctx).Where("document_id = ?", documentID).First(&out).Error; err != nil {
		return nil, notFound(err, documentDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *DocumentRepository) ListByUser(ctx context.Context, userID uint64) ([]documentDomain.Document, error) {
	var out []documentDomain.Document
	err := r.db.WithContext(ctx).
		Preload("Uploader").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *DocumentRepository) ListAll(ctx context.Context) ([]documentDomain.Document, error) {
	var out []documentDomain.Document
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Uploader").
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *DocumentRepository) Delete(ctx context.Context, documentID string) error {
	res := r.db.WithContext(ctx).Where("document_id = ?", documentID).Delete(&documentDomain.Document{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return documentDomain.ErrNotFound
	}
	return nil
}

// FileRepository keeps upload bytes in stored_files.
type FileRepository struct{ db *gorm.DB }

func NewFileRepository(db *gorm.DB) *FileRepository { return &FileRepository{db: db} }

func (r *FileRepository) Put(ctx context.Context, f *documentDomain.File) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *FileRepository) Get(ctx context.Context, fileID string) (*documentDomain.File, error) {
	var out documentDomain.File
	if err := r.db.WithContext(ctx).Where("file_id = ?", fileID).First(&out).Error; err != nil {
		return nil, notFound(err, documentDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *FileRepository) Delete(ctx context.Context, fileID string) error {
	return r.db.WithContext(ctx).Where("file_id = ?", fileID).Delete(&documentDomain.File{}).Error
}
