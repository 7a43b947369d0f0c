package dto

import "time"

// FileSummary is the public-facing view of an upload returned by the
// upload endpoint. It deliberately omits the storage key.
type FileSummary struct {
	ID           string    `json:"id"`
	OriginalName string    `json:"originalName"`
	Uploader     string    `json:"uploader"`
	UploadDate   time.Time `json:"uploadDate"`
	Faculty      string    `json:"faculty"`
	Department   string    `json:"department"`
}

type UploadResponse struct {
	Message string      `json:"message"`
	File    FileSummary `json:"file"`
}
