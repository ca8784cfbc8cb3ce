package domain

import "io"

// UploadedFile describes a stored upload.
type UploadedFile struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	URL          string `json:"url"`
	Size         int64  `json:"size"`
	MimeType     string `json:"mimeType"`
}

// FileUpload is an incoming file stream to be stored.
type FileUpload struct {
	OriginalName string
	MimeType     string
	Size         int64
	Content      io.Reader
}
