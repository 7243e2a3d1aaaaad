package document

import (
	"context"
	"path/filepath"
	"strings"

	"lodge-portal/internal/domain/document"
	"lodge-portal/internal/domain/uow"
	"lodge-portal/internal/domain/user"
	"lodge-portal/pkg/id"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Usecase struct {
	docs  document.Repository
	files document.FileStore
	users user.Repository
	uow   uow.UnitOfWork
}

func NewUsecase(docs document.Repository, files document.FileStore, users user.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{docs: docs, files: files, users: users, uow: tx}
}

// Issue stores an admin upload for one member. The blob and its metadata
// are written in the same transaction.
func (u *Usecase) Issue(ctx context.Context, admin *user.User, in IssueInput, up Upload) (*DocumentDTO, error) {
	if len(up.Data) == 0 {
		return nil, document.ErrEmptyFile
	}
	cat := document.CategoryOther
	if in.Category != "" {
		cat = document.Category(strings.ToUpper(strings.TrimSpace(in.Category)))
		if !cat.Valid() {
			return nil, document.ErrInvalidCategory
		}
	}
	owner, err := u.users.GetByPublicID(ctx, strings.TrimSpace(in.UserID))
	if err != nil {
		return nil, err
	}

	contentType := up.ContentType
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = mimetype.Detect(up.Data).String()
	}
	original := filepath.Base(strings.TrimSpace(up.Name))
	if original == "." || original == string(filepath.Separator) {
		original = "upload"
	}
	fileID := uuid.NewString()

	d := &document.Document{
		DocumentID:   id.NewID32(),
		UserID:       owner.ID,
		UploadedBy:   admin.ID,
		FileID:       fileID,
		FileName:     fileID + strings.ToLower(filepath.Ext(original)),
		OriginalName: original,
		FileType:     contentType,
		FileSize:     int64(len(up.Data)),
		Description:  strings.TrimSpace(in.Description),
		Category:     cat,
	}
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Files.Put(ctx, &document.File{
			FileID:      fileID,
			ContentType: contentType,
			Size:        d.FileSize,
			Data:        up.Data,
		}); err != nil {
			return err
		}
		return r.Documents.Create(ctx, d)
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"document_id": d.DocumentID,
		"owner":       owner.PublicID,
		"size":        d.FileSize,
	}).Info("document issued")
	d.Owner, d.Uploader = owner, admin
	dto := toDTO(d)
	return &dto, nil
}

func (u *Usecase) ListForUser(ctx context.Context, userID uint64) ([]DocumentDTO, error) {
	list, err := u.docs.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toDTOs(list), nil
}

func (u *Usecase) ListAll(ctx context.Context) ([]DocumentDTO, error) {
	list, err := u.docs.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(list), nil
}

// Download returns the metadata and bytes. Only the owner or an admin may
// read a document.
func (u *Usecase) Download(ctx context.Context, requester *user.User, documentID string) (*document.Document, *document.File, error) {
	d, err := u.docs.GetByDocumentID(ctx, documentID)
	if err != nil {
		return nil, nil, err
	}
	if d.UserID != requester.ID && !requester.IsAdmin() {
		return nil, nil, document.ErrForbidden
	}
	f, err := u.files.Get(ctx, d.FileID)
	if err != nil {
		return nil, nil, err
	}
	return d, f, nil
}

func (u *Usecase) Delete(ctx context.Context, documentID string) error {
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		d, err := r.Documents.GetByDocumentID(ctx, documentID)
		if err != nil {
			return err
		}
		if err := r.Documents.Delete(ctx, documentID); err != nil {
			return err
		}
		return r.Files.Delete(ctx, d.FileID)
	})
	if err != nil {
		return err
	}
	logrus.WithField("document_id", documentID).Info("document deleted")
	return nil
}
