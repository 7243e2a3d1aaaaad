package document

import (
	"time"

	"lodge-portal/internal/domain/document"
	"lodge-portal/internal/domain/user"
)

// IssueInput is the form part of the admin upload.
type IssueInput struct {
	UserID      string `form:"userId" validate:"required,hex32"`
	Category    string `form:"category" validate:"omitempty,oneof=CERTIFICATE MEMBERSHIP_CARD LETTER FORM OTHER"`
	Description string `form:"description" validate:"max=2000"`
}

// Upload is the file part, already read into memory by the transport.
type Upload struct {
	Name        string
	ContentType string
	Data        []byte
}

type PartyDTO struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

type DocumentDTO struct {
	ID           string    `json:"id"`
	FileName     string    `json:"fileName"`
	OriginalName string    `json:"originalName"`
	FileType     string    `json:"fileType"`
	FileSize     int64     `json:"fileSize"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	CreatedAt    time.Time `json:"createdAt"`
	Owner        *PartyDTO `json:"user,omitempty"`
	UploadedBy   *PartyDTO `json:"uploadedBy,omitempty"`
}

func toParty(u *user.User) *PartyDTO {
	if u == nil {
		return nil
	}
	return &PartyDTO{ID: u.PublicID, FullName: u.FullName, Email: u.Email}
}

func toDTO(d *document.Document) DocumentDTO {
	return DocumentDTO{
		ID:           d.DocumentID,
		FileName:     d.FileName,
		OriginalName: d.OriginalName,
		FileType:     d.FileType,
		FileSize:     d.FileSize,
		Description:  d.Description,
		Category:     string(d.Category),
		CreatedAt:    d.CreatedAt,
		Owner:        toParty(d.Owner),
		UploadedBy:   toParty(d.Uploader),
	}
}

func toDTOs(list []document.Document) []DocumentDTO {
	out := make([]DocumentDTO, 0, len(list))
	for i := range list {
		out = append(out, toDTO(&list[i]))
	}
	return out
}
