// Package cli implements the syncserver command-line client: one command per
// invocation, JSON on stdout. The master version asserted by mutating
// commands comes from the local mirror, which "index" refreshes.
package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/syncserver/internal/client/mirror"
	"github.com/dmitrijs2005/syncserver/internal/filex"
	"github.com/dmitrijs2005/syncserver/internal/netx"
	pb "github.com/dmitrijs2005/syncserver/internal/proto"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// API is the server surface the commands use.
type API interface {
	Ping(ctx context.Context) error
	CreateSharingGroup(ctx context.Context, name string) (string, error)
	DeleteSharingGroup(ctx context.Context, sharingGroupID string) error
	UploadFile(ctx context.Context, req *pb.UploadFileRequest) (*pb.UploadFileResponse, error)
	UploadDeletion(ctx context.Context, req *pb.UploadDeletionRequest) (*pb.UploadDeletionResponse, error)
	UploadAppMetaData(ctx context.Context, req *pb.UploadAppMetaDataRequest) (*pb.UploadAppMetaDataResponse, error)
	DoneUploads(ctx context.Context, sharingGroupID string, masterVersion int64) (*pb.DoneUploadsResponse, error)
	FileIndex(ctx context.Context, sharingGroupID string) (*pb.FileIndexResponse, error)
	GetUploads(ctx context.Context, sharingGroupID string) ([]*pb.UploadInfo, error)
	DownloadFile(ctx context.Context, req *pb.DownloadFileRequest) (*pb.DownloadFileResponse, error)
}

// Mirror is the local index copy.
type Mirror interface {
	Replace(ctx context.Context, snap *mirror.Snapshot) error
	Load(ctx context.Context, sharingGroupID string) (*mirror.Snapshot, error)
}

var (
	ErrUsage = errors.New("usage")
	// ErrLockHeld is returned when the server's commit lock was taken; retry later.
	ErrLockHeld = errors.New("sharing group is locked by another device, retry later")
)

// StaleError means the mirror is behind the server; run "index" and retry.
type StaleError struct {
	Current int64
}

func (e *StaleError) Error() string {
	return fmt.Sprintf("local index is stale, server is at master version %d; run index", e.Current)
}

// Byte transfer against presigned URLs; replaced in tests.
var (
	putObject = netx.PutPresigned
	getObject = netx.GetPresigned
)

type App struct {
	api     API
	mirror  Mirror
	out     io.Writer
	timeout time.Duration
	now     func() time.Time
}

func NewApp(api API, m Mirror, out io.Writer, timeout time.Duration) *App {
	return &App{api: api, mirror: m, out: out, timeout: timeout, now: time.Now}
}

const usage = `commands:
  ping
  create-group NAME
  delete-group SG
  index SG
  status SG
  uploads SG
  upload SG FILE VERSION MIME PATH [FOLDER]
  delete SG FILE VERSION
  meta SG FILE METAVERSION CONTENTS
  done SG
  download SG FILE VERSION [OUT]`

// Run executes one command.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w\n%s", ErrUsage, usage)
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	cmd, rest := args[0], args[1:]
	want := map[string]int{
		"ping": 0, "create-group": 1, "delete-group": 1, "index": 1, "status": 1, "uploads": 1,
		"upload": 5, "delete": 3, "meta": 4, "done": 1, "download": 3,
	}
	n, ok := want[cmd]
	if !ok || len(rest) < n {
		return fmt.Errorf("%w\n%s", ErrUsage, usage)
	}

	switch cmd {
	case "ping":
		if err := a.api.Ping(ctx); err != nil {
			return err
		}
		return a.print(map[string]string{"status": "OK"})
	case "create-group":
		id, err := a.api.CreateSharingGroup(ctx, rest[0])
		if err != nil {
			return err
		}
		return a.print(map[string]string{"sharingGroupId": id})
	case "delete-group":
		return a.api.DeleteSharingGroup(ctx, rest[0])
	case "index":
		snap, err := a.refresh(ctx, rest[0])
		if err != nil {
			return err
		}
		return a.print(snap)
	case "status":
		snap, err := a.mirror.Load(ctx, rest[0])
		if err != nil {
			return err
		}
		return a.print(snap)
	case "uploads":
		ups, err := a.api.GetUploads(ctx, rest[0])
		if err != nil {
			return err
		}
		return a.print(ups)
	case "upload":
		return a.upload(ctx, rest)
	case "delete":
		return a.deleteFile(ctx, rest)
	case "meta":
		return a.meta(ctx, rest)
	case "done":
		return a.done(ctx, rest[0])
	default:
		return a.download(ctx, rest)
	}
}

func (a *App) print(v any) error {
	if m, ok := v.(proto.Message); ok {
		b, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(m)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(a.out, string(b))
		return err
	}
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseInt(name, s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", ErrUsage, name)
	}
	return v, nil
}

// refresh fetches the index and replaces the mirror with it.
func (a *App) refresh(ctx context.Context, sharingGroupID string) (*mirror.Snapshot, error) {
	resp, err := a.api.FileIndex(ctx, sharingGroupID)
	if err != nil {
		return nil, err
	}
	if resp.CouldNotObtainLock {
		return nil, ErrLockHeld
	}

	snap := &mirror.Snapshot{
		SharingGroupID: sharingGroupID,
		MasterVersion:  resp.MasterVersion,
		FetchedAt:      a.now(),
		Files:          resp.Files,
	}
	if err := a.mirror.Replace(ctx, snap); err != nil {
		return nil, err
	}
	return snap, nil
}

func (a *App) masterVersion(ctx context.Context, sharingGroupID string) (int64, error) {
	snap, err := a.mirror.Load(ctx, sharingGroupID)
	if err != nil {
		return 0, fmt.Errorf("no local index for %s, run index first: %w", sharingGroupID, err)
	}
	return snap.MasterVersion, nil
}

func stale(update *int64) error {
	if update == nil {
		return nil
	}
	return &StaleError{Current: *update}
}

// upload stages the file and PUTs its bytes to the returned URL.
func (a *App) upload(ctx context.Context, args []string) error {
	version, err := parseInt("VERSION", args[2])
	if err != nil {
		return err
	}
	body, err := os.ReadFile(args[4])
	if err != nil {
		return err
	}
	mv, err := a.masterVersion(ctx, args[0])
	if err != nil {
		return err
	}

	req := &pb.UploadFileRequest{
		SharingGroupId: args[0],
		FileId:         args[1],
		FileVersion:    version,
		MimeType:       args[3],
		SizeBytes:      int64(len(body)),
		MasterVersion:  mv,
	}
	if len(args) > 5 {
		req.CloudFolderName = args[5]
	}

	resp, err := a.api.UploadFile(ctx, req)
	if err != nil {
		return err
	}
	if err := stale(resp.MasterVersionUpdate); err != nil {
		return err
	}
	// a retry gets the staged row's URL back; the first PUT may not have landed
	if url := resp.GetUploadUrl(); url != "" {
		if err := putObject(ctx, url, req.MimeType, body); err != nil {
			return err
		}
	}
	return a.print(resp)
}

func (a *App) deleteFile(ctx context.Context, args []string) error {
	version, err := parseInt("VERSION", args[2])
	if err != nil {
		return err
	}
	mv, err := a.masterVersion(ctx, args[0])
	if err != nil {
		return err
	}

	resp, err := a.api.UploadDeletion(ctx, &pb.UploadDeletionRequest{
		SharingGroupId: args[0],
		FileId:         args[1],
		FileVersion:    version,
		MasterVersion:  mv,
	})
	if err != nil {
		return err
	}
	if err := stale(resp.MasterVersionUpdate); err != nil {
		return err
	}
	return a.print(resp)
}

func (a *App) meta(ctx context.Context, args []string) error {
	version, err := parseInt("METAVERSION", args[2])
	if err != nil {
		return err
	}
	mv, err := a.masterVersion(ctx, args[0])
	if err != nil {
		return err
	}

	resp, err := a.api.UploadAppMetaData(ctx, &pb.UploadAppMetaDataRequest{
		SharingGroupId: args[0],
		FileId:         args[1],
		AppMetaData:    &pb.AppMetaData{Version: version, Contents: args[3]},
		MasterVersion:  mv,
	})
	if err != nil {
		return err
	}
	if err := stale(resp.MasterVersionUpdate); err != nil {
		return err
	}
	return a.print(resp)
}

// done commits and, on success, refreshes the mirror so the next command
// asserts the new master version.
func (a *App) done(ctx context.Context, sharingGroupID string) error {
	mv, err := a.masterVersion(ctx, sharingGroupID)
	if err != nil {
		return err
	}

	resp, err := a.api.DoneUploads(ctx, sharingGroupID, mv)
	if err != nil {
		return err
	}
	if resp.CouldNotObtainLock {
		return ErrLockHeld
	}
	if err := stale(resp.MasterVersionUpdate); err != nil {
		return err
	}

	if _, err := a.refresh(ctx, sharingGroupID); err != nil {
		return fmt.Errorf("committed, but refreshing the index failed: %w", err)
	}
	return a.print(resp)
}

func (a *App) download(ctx context.Context, args []string) error {
	version, err := parseInt("VERSION", args[2])
	if err != nil {
		return err
	}
	mv, err := a.masterVersion(ctx, args[0])
	if err != nil {
		return err
	}

	resp, err := a.api.DownloadFile(ctx, &pb.DownloadFileRequest{
		SharingGroupId: args[0],
		FileId:         args[1],
		FileVersion:    version,
		MasterVersion:  mv,
	})
	if err != nil {
		return err
	}
	if err := stale(resp.MasterVersionUpdate); err != nil {
		return err
	}

	if len(args) > 3 {
		var buf bytes.Buffer
		if _, err := getObject(ctx, resp.GetDownloadUrl(), &buf); err != nil {
			return err
		}
		if err := filex.WriteFile(args[3], buf.Bytes()); err != nil {
			return err
		}
	}
	return a.print(resp)
}
