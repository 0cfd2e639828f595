package models

import "time"

// Media is the metadata record for an uploaded object. The binary content
// lives in object storage; only URLs are persisted here.
type Media struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	Filename         string `gorm:"not null" json:"filename"`
	OriginalFilename string `json:"original_filename"`
	URL              string `gorm:"not null" json:"url"`
	ThumbnailURL     string `json:"thumbnail_url"`
	MimeType         string `gorm:"index" json:"mime_type"`
	Size             int64  `json:"size"`
	Width            int    `json:"width"`
	Height           int    `json:"height"`
	AltText          string `json:"alt_text"`
	Caption          string `json:"caption"`
	// UploadedBy is a weak reference; deleting the uploader keeps the record.
	UploadedBy *uint     `gorm:"index" json:"uploaded_by,omitempty"`
	Uploader   *User     `gorm:"foreignKey:UploadedBy;constraint:OnDelete:SET NULL" json:"uploader,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
