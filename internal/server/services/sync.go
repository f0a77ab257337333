package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/syncserver/internal/common"
	"github.com/dmitrijs2005/syncserver/internal/dbx"
	"github.com/dmitrijs2005/syncserver/internal/logging"
	"github.com/dmitrijs2005/syncserver/internal/server/config"
	"github.com/dmitrijs2005/syncserver/internal/server/models"
	"github.com/dmitrijs2005/syncserver/internal/server/naming"
	"github.com/dmitrijs2005/syncserver/internal/server/notify"
	"github.com/dmitrijs2005/syncserver/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/syncserver/internal/server/storage"
	"github.com/google/uuid"
)

// Outcome is the expected, non-error result of a request. Staleness,
// contention and duplicate staging are ordinary answers a client reacts to,
// so they travel as values rather than errors.
type Outcome string

const (
	OutcomeAccepted      Outcome = "accepted"
	OutcomeAlreadyStaged Outcome = "already_staged"
	OutcomeVersionStale  Outcome = "version_stale"
	OutcomeCommitted     Outcome = "committed"
	OutcomeLockHeld      Outcome = "lock_held"
	OutcomeOK            Outcome = "ok"
)

// StageRequest is one staged mutation as received from a device.
type StageRequest struct {
	Kind            models.UploadKind
	SharingGroupID  string
	DeviceID        string
	FileID          string
	FileVersion     int64
	MimeType        string
	CloudFolderName string
	SizeBytes       int64
	AppMetaData     *models.AppMetaData
	// MasterVersion is the version the device believes is current.
	MasterVersion int64
}

// StageResult answers a staging request. MasterVersion is the stored
// version; it differs from the asserted one only when Outcome is
// OutcomeVersionStale. UploadURL and ObjectName are set for file uploads.
type StageResult struct {
	Outcome       Outcome
	MasterVersion int64
	ObjectName    string
	UploadURL     string
}

type CommitResult struct {
	Outcome           Outcome
	NumberTransferred int
	MasterVersion     int64
}

type IndexResult struct {
	Outcome       Outcome
	MasterVersion int64
	Files         []*models.FileIndex
}

type DownloadResult struct {
	Outcome       Outcome
	MasterVersion int64
	URL           string
	File          *models.FileIndex
}

// SyncService implements the request-facing sync operations on top of the
// repositories, the commit lock and the transfer engine.
type SyncService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	locks       *LockManager
	transfer    *Transfer
	store       storage.ObjectStore
	notifier    notify.Publisher
	config      *config.Config
	log         logging.Logger
}

func NewSyncService(db *sql.DB, rm repomanager.RepositoryManager, store storage.ObjectStore,
	notifier notify.Publisher, cfg *config.Config, log logging.Logger) *SyncService {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &SyncService{
		db:          db,
		repomanager: rm,
		locks:       NewLockManager(db, rm, cfg.LockStaleTimeout, log),
		transfer:    NewTransfer(rm),
		store:       store,
		notifier:    notifier,
		config:      cfg,
		log:         log.With("module", "sync_service"),
	}
}

func validateID(name, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s must be a UUID", common.ErrorInvalidArgument, name)
	}
	return nil
}

func validateScope(sharingGroupID, deviceID string) error {
	if err := validateID("sharing group id", sharingGroupID); err != nil {
		return err
	}
	return validateID("device id", deviceID)
}

func (s *SyncService) validateStage(r *StageRequest) error {
	if err := validateScope(r.SharingGroupID, r.DeviceID); err != nil {
		return err
	}
	if err := validateID("file id", r.FileID); err != nil {
		return err
	}
	if !r.Kind.Valid() {
		return fmt.Errorf("%w: unknown upload kind %q", common.ErrorInvalidArgument, r.Kind)
	}
	if r.FileVersion < 0 || r.SizeBytes < 0 {
		return fmt.Errorf("%w: negative file version or size", common.ErrorInvalidArgument)
	}
	if r.AppMetaData != nil && r.AppMetaData.Version < 0 {
		return fmt.Errorf("%w: negative app metadata version", common.ErrorInvalidArgument)
	}
	if r.Kind == models.UploadKindFile && r.MimeType == "" {
		return fmt.Errorf("%w: mime type is required", common.ErrorInvalidArgument)
	}
	if r.Kind == models.UploadKindAppMetaData && r.AppMetaData == nil {
		return fmt.Errorf("%w: app metadata is required", common.ErrorInvalidArgument)
	}
	return nil
}

// BeginUpload stages one mutation without taking the commit lock. The
// asserted master version is checked against a point read only; the commit
// re-checks it under the lock.
func (s *SyncService) BeginUpload(ctx context.Context, r StageRequest) (*StageResult, error) {
	if err := s.validateStage(&r); err != nil {
		return nil, err
	}

	current, err := s.repomanager.MasterVersions(s.db).Current(ctx, r.SharingGroupID)
	if err != nil {
		return nil, err
	}
	if current != r.MasterVersion {
		s.log.Info(ctx, "stale master version on upload", "sharing_group", r.SharingGroupID,
			"device", r.DeviceID, "master_version", current)
		return &StageResult{Outcome: OutcomeVersionStale, MasterVersion: current}, nil
	}

	if err := s.precheck(ctx, &r); err != nil {
		return nil, err
	}
	if r.CloudFolderName == "" {
		r.CloudFolderName = s.config.DefaultCloudFolderName
	}

	res := &StageResult{Outcome: OutcomeAccepted, MasterVersion: current}

	staged := &models.Upload{
		FileID:          r.FileID,
		SharingGroupID:  r.SharingGroupID,
		DeviceID:        r.DeviceID,
		Kind:            r.Kind,
		FileVersion:     r.FileVersion,
		MimeType:        r.MimeType,
		CloudFolderName: r.CloudFolderName,
		SizeBytes:       r.SizeBytes,
		AppMetaData:     r.AppMetaData,
	}
	err = s.repomanager.Uploads(s.db).Stage(ctx, staged)
	switch {
	case errors.Is(err, common.ErrDuplicateStaging):
		staged, err = s.stagedEntry(ctx, &r)
		if err != nil {
			return nil, err
		}
		s.log.Info(ctx, "upload already staged", "sharing_group", r.SharingGroupID,
			"device", r.DeviceID, "file", r.FileID)
		res.Outcome = OutcomeAlreadyStaged
	case err != nil:
		return nil, err
	}

	if staged.Kind == models.UploadKindFile {
		// the key comes from the staged row, which is what the commit will index
		obj := naming.ObjectID{FileID: staged.FileID, DeviceID: staged.DeviceID, Version: staged.FileVersion}
		key := obj.Key(staged.CloudFolderName)
		url, err := s.store.PresignPut(ctx, key, s.config.PresignTTL)
		if err != nil {
			return nil, err
		}
		res.ObjectName = obj.Name()
		res.UploadURL = url
	}

	return res, nil
}

// stagedEntry loads the row a retried upload collided with. A retry has to
// describe the same mutation as that row.
func (s *SyncService) stagedEntry(ctx context.Context, r *StageRequest) (*models.Upload, error) {
	entries, err := s.repomanager.Uploads(s.db).EntriesFor(ctx, r.SharingGroupID, r.DeviceID)
	if err != nil {
		return nil, err
	}
	for _, u := range entries {
		if u.FileID != r.FileID {
			continue
		}
		if u.Kind != r.Kind || u.FileVersion != r.FileVersion || u.CloudFolderName != r.CloudFolderName {
			return nil, fmt.Errorf("%w: file %s is already staged as %s at version %d in %q",
				common.ErrorInvalidArgument, r.FileID, u.Kind, u.FileVersion, u.CloudFolderName)
		}
		if u.Kind == models.UploadKindAppMetaData && u.AppMetaData != nil &&
			u.AppMetaData.Version != r.AppMetaData.Version {
			return nil, fmt.Errorf("%w: file %s is already staged with app metadata version %d",
				common.ErrorInvalidArgument, r.FileID, u.AppMetaData.Version)
		}
		return u, nil
	}
	// the row was committed or cleared between the insert and the read
	return nil, sequencingError("file %s: staged upload changed concurrently", r.FileID)
}

// precheck rejects deletions and metadata updates that cannot possibly
// transfer, and completes metadata requests from the index.
func (s *SyncService) precheck(ctx context.Context, r *StageRequest) error {
	if r.Kind == models.UploadKindFile {
		return nil
	}

	existing, err := s.repomanager.FileIndex(s.db).Lookup(ctx, r.SharingGroupID, r.FileID)
	if errors.Is(err, common.ErrorNotFound) {
		return sequencingError("file %s is not in the index", r.FileID)
	}
	if err != nil {
		return err
	}
	if existing.Deleted {
		return sequencingError("file %s is deleted", r.FileID)
	}

	switch r.Kind {
	case models.UploadKindDeletion:
		if existing.FileVersion != r.FileVersion {
			return sequencingError("file %s: deletion at version %d, index has %d",
				r.FileID, r.FileVersion, existing.FileVersion)
		}
		r.MimeType = existing.MimeType
		r.CloudFolderName = existing.CloudFolderName
	case models.UploadKindAppMetaData:
		if want := existing.NextAppMetaDataVersion(); r.AppMetaData.Version != want {
			return sequencingError("file %s: app metadata version %d, expected %d",
				r.FileID, r.AppMetaData.Version, want)
		}
		r.FileVersion = existing.FileVersion
		r.MimeType = existing.MimeType
		r.CloudFolderName = existing.CloudFolderName
	}
	return nil
}

func (s *SyncService) UploadFile(ctx context.Context, r StageRequest) (*StageResult, error) {
	r.Kind = models.UploadKindFile
	return s.BeginUpload(ctx, r)
}

func (s *SyncService) UploadDeletion(ctx context.Context, sharingGroupID, deviceID, fileID string, fileVersion, masterVersion int64) (*StageResult, error) {
	return s.BeginUpload(ctx, StageRequest{
		Kind:           models.UploadKindDeletion,
		SharingGroupID: sharingGroupID,
		DeviceID:       deviceID,
		FileID:         fileID,
		FileVersion:    fileVersion,
		MasterVersion:  masterVersion,
	})
}

func (s *SyncService) UploadAppMetaData(ctx context.Context, sharingGroupID, deviceID, fileID string, md *models.AppMetaData, masterVersion int64) (*StageResult, error) {
	return s.BeginUpload(ctx, StageRequest{
		Kind:           models.UploadKindAppMetaData,
		SharingGroupID: sharingGroupID,
		DeviceID:       deviceID,
		FileID:         fileID,
		AppMetaData:    md,
		MasterVersion:  masterVersion,
	})
}

// DoneUploads commits everything the device staged in the sharing group.
//
// Under the lock, a single transaction re-reads the master version, runs
// the transfer, clears the staging rows and advances the version, so either
// all of it becomes visible or none of it. Cloud objects superseded by the
// commit are deleted after the lock is released.
func (s *SyncService) DoneUploads(ctx context.Context, sharingGroupID, deviceID string, masterVersion int64) (*CommitResult, error) {
	if err := validateScope(sharingGroupID, deviceID); err != nil {
		return nil, err
	}
	// unknown groups must fail before a lock row is written for them
	if _, err := s.repomanager.MasterVersions(s.db).Current(ctx, sharingGroupID); err != nil {
		return nil, err
	}

	log := s.log.With("sharing_group", sharingGroupID, "device", deviceID)

	var (
		res        *CommitResult
		superseded []string
	)
	err := s.locks.WithLock(ctx, sharingGroupID, deviceID, func(ctx context.Context) error {
		return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			versions := s.repomanager.MasterVersions(tx)

			current, err := versions.CurrentForUpdate(ctx, sharingGroupID)
			if err != nil {
				return err
			}
			if current != masterVersion {
				res = &CommitResult{Outcome: OutcomeVersionStale, MasterVersion: current}
				return nil
			}

			tr, err := s.transfer.Run(ctx, tx, sharingGroupID, deviceID)
			if err != nil {
				return err
			}

			cleared, err := s.repomanager.Uploads(tx).Clear(ctx, sharingGroupID, deviceID)
			if err != nil {
				return err
			}
			if cleared != int64(tr.Transferred) {
				return fmt.Errorf("%w: cleared %d staged rows but transferred %d",
					common.ErrConsistency, cleared, tr.Transferred)
			}

			next, err := versions.Advance(ctx, sharingGroupID, current)
			if err != nil {
				return err
			}

			res = &CommitResult{Outcome: OutcomeCommitted, NumberTransferred: tr.Transferred, MasterVersion: next}
			superseded = tr.Superseded
			return nil
		})
	})

	switch {
	case errors.Is(err, common.ErrLockHeld):
		log.Info(ctx, "commit lock held")
		return &CommitResult{Outcome: OutcomeLockHeld}, nil
	case err != nil:
		log.Error(ctx, "commit failed", "error", err)
		return nil, err
	}

	if res.Outcome == OutcomeVersionStale {
		log.Info(ctx, "stale master version on commit", "master_version", res.MasterVersion)
		return res, nil
	}

	log.Info(ctx, "commit finished", "master_version", res.MasterVersion, "transferred", res.NumberTransferred)

	if s.config.PurgeOnCommit {
		s.purge(ctx, log, superseded)
	}

	if err := s.notifier.PublishCommit(ctx, notify.Commit{
		SharingGroupID:    sharingGroupID,
		MasterVersion:     res.MasterVersion,
		DeviceID:          deviceID,
		NumberTransferred: res.NumberTransferred,
	}); err != nil {
		log.Warn(ctx, "failed to publish commit", "error", err)
	}

	return res, nil
}

func (s *SyncService) purge(ctx context.Context, log logging.Logger, keys []string) {
	for _, key := range keys {
		if err := s.store.Delete(ctx, key); err != nil {
			log.Warn(ctx, "failed to purge superseded object", "key", key, "error", err)
		}
	}
}

// FileIndex returns the committed files of the sharing group together with
// the master version they correspond to. It holds the commit lock and reads
// inside one snapshot, so it never observes half of a commit.
func (s *SyncService) FileIndex(ctx context.Context, sharingGroupID, deviceID string) (*IndexResult, error) {
	if err := validateScope(sharingGroupID, deviceID); err != nil {
		return nil, err
	}
	if _, err := s.repomanager.MasterVersions(s.db).Current(ctx, sharingGroupID); err != nil {
		return nil, err
	}

	res := &IndexResult{Outcome: OutcomeOK}
	err := s.locks.WithLock(ctx, sharingGroupID, deviceID, func(ctx context.Context) error {
		return dbx.WithSnapshot(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
			v, err := s.repomanager.MasterVersions(tx).Current(ctx, sharingGroupID)
			if err != nil {
				return err
			}
			files, err := s.repomanager.FileIndex(tx).ListForSharingGroup(ctx, sharingGroupID)
			if err != nil {
				return err
			}
			res.MasterVersion = v
			res.Files = files
			return nil
		})
	})
	if errors.Is(err, common.ErrLockHeld) {
		return &IndexResult{Outcome: OutcomeLockHeld}, nil
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

// GetUploads lists what the device has staged but not yet committed.
func (s *SyncService) GetUploads(ctx context.Context, sharingGroupID, deviceID string) ([]*models.Upload, error) {
	if err := validateScope(sharingGroupID, deviceID); err != nil {
		return nil, err
	}
	if _, err := s.repomanager.MasterVersions(s.db).Current(ctx, sharingGroupID); err != nil {
		return nil, err
	}
	return s.repomanager.Uploads(s.db).EntriesFor(ctx, sharingGroupID, deviceID)
}

// DownloadFile authorizes a download of the committed version of a file.
// The object is named after the writer of record, which need not be the
// requesting device.
func (s *SyncService) DownloadFile(ctx context.Context, sharingGroupID, deviceID, fileID string, fileVersion, masterVersion int64) (*DownloadResult, error) {
	if err := validateScope(sharingGroupID, deviceID); err != nil {
		return nil, err
	}
	if err := validateID("file id", fileID); err != nil {
		return nil, err
	}

	current, err := s.repomanager.MasterVersions(s.db).Current(ctx, sharingGroupID)
	if err != nil {
		return nil, err
	}
	if current != masterVersion {
		return &DownloadResult{Outcome: OutcomeVersionStale, MasterVersion: current}, nil
	}

	f, err := s.repomanager.FileIndex(s.db).Lookup(ctx, sharingGroupID, fileID)
	if err != nil {
		return nil, err
	}
	if f.Deleted {
		return nil, sequencingError("file %s is deleted", fileID)
	}
	if f.FileVersion != fileVersion {
		return nil, sequencingError("file %s: requested version %d, index has %d", fileID, fileVersion, f.FileVersion)
	}

	url, err := s.store.PresignGet(ctx, objectKey(f), s.config.PresignTTL)
	if err != nil {
		return nil, err
	}

	return &DownloadResult{Outcome: OutcomeOK, MasterVersion: current, URL: url, File: f}, nil
}

// CreateSharingGroup creates a group and its master version at 0.
func (s *SyncService) CreateSharingGroup(ctx context.Context, name string) (*models.SharingGroup, error) {
	var sg *models.SharingGroup
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		sg, err = s.repomanager.SharingGroups(tx).Create(ctx, name)
		if err != nil {
			return err
		}
		return s.repomanager.MasterVersions(tx).Create(ctx, sg.ID)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "sharing group created", "sharing_group", sg.ID)
	return sg, nil
}

// DeleteSharingGroup soft-deletes the group. Later requests for it fail
// with common.ErrorNotFound.
func (s *SyncService) DeleteSharingGroup(ctx context.Context, sharingGroupID string) error {
	if err := validateID("sharing group id", sharingGroupID); err != nil {
		return err
	}
	return s.repomanager.SharingGroups(s.db).MarkDeleted(ctx, sharingGroupID)
}
