package entities

import "time"

// UploadCandidate describes one file offered to the upload surface. Size is
// in bytes; ContentType is the declared MIME type.
type UploadCandidate struct {
	Name        string
	ContentType string
	Size        int64
}

// UploadResult is the per-file outcome of a batch validation. A rejected
// file never blocks acceptance of the other files in the same batch.
type UploadResult struct {
	ID         string    `json:"id,omitempty"`
	Name       string    `json:"name"`
	Accepted   bool      `json:"accepted"`
	Reason     string    `json:"reason,omitempty"`
	UploadedAt time.Time `json:"uploadedAt,omitempty"`
}
