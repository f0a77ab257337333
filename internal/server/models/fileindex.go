package models

import "time"

// FileState is the lifecycle state of an indexed file.
type FileState string

const (
	FileStateActive  FileState = "active"
	FileStateDeleted FileState = "deleted"
)

// FileIndex is the authoritative record of a file's committed state.
// Rows are never removed; deletion flips Deleted and a later upload of the
// next version brings the file back.
type FileIndex struct {
	FileID         string
	SharingGroupID string
	// DeviceID is the writer of record: the device whose upload produced the
	// cloud object backing FileVersion.
	DeviceID        string
	MimeType        string
	CloudFolderName string
	AppMetaData     *AppMetaData
	FileVersion     int64
	SizeBytes       int64
	Deleted         bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (f *FileIndex) State() FileState {
	if f.Deleted {
		return FileStateDeleted
	}
	return FileStateActive
}

// NextAppMetaDataVersion is the version a new app metadata value must carry.
func (f *FileIndex) NextAppMetaDataVersion() int64 {
	if f.AppMetaData == nil {
		return 0
	}
	return f.AppMetaData.Version + 1
}
