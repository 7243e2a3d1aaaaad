package document

import (
	"errors"
	"time"

	"lodge-portal/internal/domain/user"
)

var (
	ErrNotFound        = errors.New("document not found")
	ErrForbidden       = errors.New("document belongs to another member")
	ErrInvalidCategory = errors.New("invalid document category")
	ErrEmptyFile       = errors.New("file is empty")
)

type Category string

const (
	CategoryCertificate    Category = "CERTIFICATE"
	CategoryMembershipCard Category = "MEMBERSHIP_CARD"
	CategoryLetter         Category = "LETTER"
	CategoryForm           Category = "FORM"
	CategoryOther          Category = "OTHER"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryCertificate, CategoryMembershipCard, CategoryLetter, CategoryForm, CategoryOther:
		return true
	}
	return false
}

// Table: documents
type Document struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	DocumentID   string    `gorm:"column:document_id;size:32;not null;uniqueIndex:ux_documents_document_id"`
	UserID       uint64    `gorm:"column:user_id;not null;index:idx_documents_user_created,priority:1"`
	UploadedBy   uint64    `gorm:"column:uploaded_by;not null"`
	FileID       string    `gorm:"column:file_id;size:36;not null"`
	FileName     string    `gorm:"column:file_name;size:191;not null"`
	OriginalName string    `gorm:"column:original_name;size:191;not null"`
	FileType     string    `gorm:"column:file_type;size:127;not null"`
	FileSize     int64     `gorm:"column:file_size;not null"`
	Description  string    `gorm:"column:description;type:text"`
	Category     Category  `gorm:"column:category;size:16;not null;default:OTHER;index:idx_documents_category"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime;index:idx_documents_user_created,priority:2"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`

	Owner    *user.User `gorm:"foreignKey:UserID;references:ID"`
	Uploader *user.User `gorm:"foreignKey:UploadedBy;references:ID"`
}

func (Document) TableName() string { return "documents" }

// Table: stored_files
//
// Blobs live next to their metadata so a document and its bytes can be
// written or removed in the same transaction.
type File struct {
	FileID      string    `gorm:"column:file_id;size:36;primaryKey"`
	ContentType string    `gorm:"column:content_type;size:127;not null"`
	Size        int64     `gorm:"column:size;not null"`
	Data        []byte    `gorm:"column:data;type:longblob;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (File) TableName() string { return "stored_files" }
