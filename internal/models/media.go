package models

import "time"

// Media represents metadata for an uploaded asset. The binary itself lives
// with an external upload service; only the resulting URL is stored here.
type Media struct {
	ID           int64     `db:"id"            json:"id"`
	Filename     string    `db:"filename"      json:"filename"`
	OriginalName string    `db:"original_name" json:"originalName"`
	MimeType     string    `db:"mime_type"     json:"mimeType"`
	Size         int64     `db:"size"          json:"size"`
	URL          string    `db:"url"           json:"url"`
	Alt          string    `db:"alt"           json:"alt"`
	UploadedAt   time.Time `db:"uploaded_at"   json:"uploadedAt"`
}

// MediaCreateRequest represents the request payload for registering an upload
type MediaCreateRequest struct {
	Filename     string `binding:"required,min=1,max=500" json:"filename"`
	OriginalName string `binding:"required,min=1,max=500" json:"originalName"`
	MimeType     string `binding:"required,min=1,max=255" json:"mimeType"`
	Size         int64  `binding:"gte=0"                  json:"size"`
	URL          string `binding:"required,max=2000"      json:"url"`
	Alt          string `binding:"max=500"                json:"alt"`
}

// NewMedia builds a Media record from the create request. The ID is assigned
// by the store; uploadedAt is the creation instant.
func (r *MediaCreateRequest) NewMedia(now time.Time) Media {
	return Media{
		Filename:     r.Filename,
		OriginalName: r.OriginalName,
		MimeType:     r.MimeType,
		Size:         r.Size,
		URL:          r.URL,
		Alt:          r.Alt,
		UploadedAt:   now,
	}
}

// Validate validates the media create request
func (r *MediaCreateRequest) Validate() error {
	return nil
}
