package models

import "time"

// UploadKind tags what a staged upload asks the commit to do.
type UploadKind string

const (
	UploadKindFile        UploadKind = "fileUpload"
	UploadKindDeletion    UploadKind = "markedForDeletion"
	UploadKindAppMetaData UploadKind = "appMetaData"
)

// Valid reports whether k is one of the known kinds.
func (k UploadKind) Valid() bool {
	switch k {
	case UploadKindFile, UploadKindDeletion, UploadKindAppMetaData:
		return true
	}
	return false
}

// AppMetaData is opaque, client-defined metadata versioned independently of
// the file contents.
type AppMetaData struct {
	Version  int64
	Contents string
}

// Upload is a staged, not yet committed mutation of one file by one device.
// At most one exists per (FileID, SharingGroupID, DeviceID).
type Upload struct {
	FileID          string
	SharingGroupID  string
	DeviceID        string
	Kind            UploadKind
	FileVersion     int64
	MimeType        string
	CloudFolderName string
	SizeBytes       int64
	AppMetaData     *AppMetaData
	CreatedAt       time.Time
}
