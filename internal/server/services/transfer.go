package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/syncserver/internal/common"
	"github.com/dmitrijs2005/syncserver/internal/dbx"
	"github.com/dmitrijs2005/syncserver/internal/server/models"
	"github.com/dmitrijs2005/syncserver/internal/server/naming"
	"github.com/dmitrijs2005/syncserver/internal/server/repositories/repomanager"
)

// Transfer moves a device's staged uploads into the file index. It must run
// inside the commit transaction while the sharing group lock is held, and it
// never touches cloud storage.
type Transfer struct {
	repomanager repomanager.RepositoryManager
}

func NewTransfer(rm repomanager.RepositoryManager) *Transfer {
	return &Transfer{repomanager: rm}
}

// TransferResult reports what a transfer applied.
type TransferResult struct {
	Transferred int
	// Superseded are object keys that no index row references after the
	// transfer: the previous version of re-uploaded files and the current
	// version of deleted ones.
	Superseded []string
}

// step is the planned index write for one staged upload.
type step struct {
	next            *models.FileIndex
	insert          bool
	expectedVersion int64
	superseded      string
}

// Run checks every staged entry against the index first and only then
// writes, so a batch is applied entirely or not at all. Any violated
// precondition fails with common.ErrSequencing.
func (t *Transfer) Run(ctx context.Context, tx dbx.DBTX, sharingGroupID, deviceID string) (*TransferResult, error) {
	staged, err := t.repomanager.Uploads(tx).EntriesFor(ctx, sharingGroupID, deviceID)
	if err != nil {
		return nil, err
	}

	index := t.repomanager.FileIndex(tx)

	plan := make([]step, 0, len(staged))
	for _, u := range staged {
		existing, err := index.Lookup(ctx, sharingGroupID, u.FileID)
		if err != nil && !errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		s, err := planStep(u, existing)
		if err != nil {
			return nil, err
		}
		plan = append(plan, s)
	}

	res := &TransferResult{}
	for _, s := range plan {
		if s.insert {
			err = index.Insert(ctx, s.next)
		} else {
			err = index.Update(ctx, s.next, s.expectedVersion)
		}
		if err != nil {
			if errors.Is(err, common.ErrVersionConflict) {
				return nil, fmt.Errorf("%w: file %s changed during transfer", common.ErrSequencing, s.next.FileID)
			}
			return nil, err
		}
		if s.superseded != "" {
			res.Superseded = append(res.Superseded, s.superseded)
		}
		res.Transferred++
	}

	return res, nil
}

func sequencingError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", common.ErrSequencing, fmt.Sprintf(format, args...))
}

// objectKey is the key of the object currently backing f.
func objectKey(f *models.FileIndex) string {
	return naming.ObjectID{FileID: f.FileID, DeviceID: f.DeviceID, Version: f.FileVersion}.Key(f.CloudFolderName)
}

// planStep validates one staged upload against the current index row
// (nil when the file is unknown) and computes the row to write.
func planStep(u *models.Upload, existing *models.FileIndex) (step, error) {
	switch u.Kind {
	case models.UploadKindDeletion:
		return planDeletion(u, existing)
	case models.UploadKindFile:
		return planUpload(u, existing)
	case models.UploadKindAppMetaData:
		return planAppMetaData(u, existing)
	default:
		return step{}, sequencingError("file %s: unknown upload kind %q", u.FileID, u.Kind)
	}
}

func planDeletion(u *models.Upload, existing *models.FileIndex) (step, error) {
	if existing == nil {
		return step{}, sequencingError("file %s: cannot delete unknown file", u.FileID)
	}
	if existing.FileVersion != u.FileVersion {
		return step{}, sequencingError("file %s: deletion at version %d, index has %d",
			u.FileID, u.FileVersion, existing.FileVersion)
	}

	next := *existing
	next.Deleted = true

	s := step{next: &next, expectedVersion: existing.FileVersion}
	if !existing.Deleted {
		s.superseded = objectKey(existing)
	}
	return s, nil
}

func planUpload(u *models.Upload, existing *models.FileIndex) (step, error) {
	if existing == nil {
		if u.FileVersion != 0 {
			return step{}, sequencingError("file %s: new file must start at version 0, got %d", u.FileID, u.FileVersion)
		}
		if u.AppMetaData != nil && u.AppMetaData.Version != 0 {
			return step{}, sequencingError("file %s: app metadata of a new file must start at version 0, got %d",
				u.FileID, u.AppMetaData.Version)
		}
		return step{
			insert: true,
			next: &models.FileIndex{
				FileID:          u.FileID,
				SharingGroupID:  u.SharingGroupID,
				DeviceID:        u.DeviceID,
				MimeType:        u.MimeType,
				CloudFolderName: u.CloudFolderName,
				AppMetaData:     u.AppMetaData,
				FileVersion:     0,
				SizeBytes:       u.SizeBytes,
			},
		}, nil
	}

	if u.FileVersion != existing.FileVersion+1 {
		return step{}, sequencingError("file %s: upload at version %d, expected %d",
			u.FileID, u.FileVersion, existing.FileVersion+1)
	}

	next := *existing
	if u.AppMetaData != nil {
		if want := existing.NextAppMetaDataVersion(); u.AppMetaData.Version != want {
			return step{}, sequencingError("file %s: app metadata version %d, expected %d",
				u.FileID, u.AppMetaData.Version, want)
		}
		next.AppMetaData = u.AppMetaData
	}
	// the uploader wrote the new object, so it becomes the writer of record
	next.DeviceID = u.DeviceID
	next.CloudFolderName = u.CloudFolderName
	if u.MimeType != "" {
		next.MimeType = u.MimeType
	}
	next.FileVersion = u.FileVersion
	next.SizeBytes = u.SizeBytes
	next.Deleted = false

	s := step{next: &next, expectedVersion: existing.FileVersion}
	if !existing.Deleted {
		s.superseded = objectKey(existing)
	}
	return s, nil
}

func planAppMetaData(u *models.Upload, existing *models.FileIndex) (step, error) {
	if existing == nil {
		return step{}, sequencingError("file %s: app metadata for unknown file", u.FileID)
	}
	if existing.Deleted {
		return step{}, sequencingError("file %s: app metadata for deleted file", u.FileID)
	}
	if u.AppMetaData == nil {
		return step{}, sequencingError("file %s: app metadata upload without metadata", u.FileID)
	}
	if want := existing.NextAppMetaDataVersion(); u.AppMetaData.Version != want {
		return step{}, sequencingError("file %s: app metadata version %d, expected %d",
			u.FileID, u.AppMetaData.Version, want)
	}

	next := *existing
	next.AppMetaData = u.AppMetaData
	return step{next: &next, expectedVersion: existing.FileVersion}, nil
}
