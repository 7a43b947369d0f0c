package models

import "time"

// FileRecord is the metadata for one uploaded document. SavedName is the
// server-generated storage key locating the blob on disk; OriginalName is
// the client-supplied filename and is display-only.
type FileRecord struct {
	ID           string    `db:"id" json:"id"`
	OriginalName string    `db:"original_name" json:"originalName"`
	SavedName    string    `db:"saved_name" json:"savedName"`
	Uploader     string    `db:"uploader" json:"uploader"`
	UploadDate   time.Time `db:"upload_date" json:"uploadDate"`
	MimeType     string    `db:"mimetype" json:"mimetype"`
	Size         int64     `db:"size" json:"size"`
	Faculty      string    `db:"faculty" json:"faculty"`
	Department   string    `db:"department" json:"department"`
}
