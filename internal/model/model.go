package model

import (
	"time"

	"ImageStyler/internal/transform"
)

// ImageRecord is one row of processing history: the uploaded original and the
// derived rendering URL. Records are created once and never mutated.
type ImageRecord struct {
	ID           int       `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	OriginalURL  string    `json:"original_url"`
	ProcessedURL string    `json:"processed_url"`
}

type RecordInCreate struct {
	OriginalURL  string
	ProcessedURL string
}

// ProcessImageRequest is the body of POST /process-image. Options is a pointer
// so a missing object can be told apart from all-default options.
type ProcessImageRequest struct {
	PublicURL     string             `json:"publicUrl"`
	Options       *transform.Options `json:"options"`
	WatermarkText string             `json:"watermarkText"`
}

type ProcessImageResponse struct {
	ProcessedURL string `json:"processedUrl"`
}

// ProcessedEvent is published after a record is persisted so gallery views can
// refresh.
type ProcessedEvent struct {
	RecordID     int    `json:"record_id"`
	ProcessedURL string `json:"processed_url"`
}
