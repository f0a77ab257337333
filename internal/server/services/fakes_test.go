package services

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/syncserver/internal/common"
	"github.com/dmitrijs2005/syncserver/internal/dbx"
	"github.com/dmitrijs2005/syncserver/internal/logging"
	"github.com/dmitrijs2005/syncserver/internal/server/config"
	"github.com/dmitrijs2005/syncserver/internal/server/models"
	"github.com/dmitrijs2005/syncserver/internal/server/notify"
	"github.com/dmitrijs2005/syncserver/internal/server/repositories/fileindex"
	"github.com/dmitrijs2005/syncserver/internal/server/repositories/locks"
	"github.com/dmitrijs2005/syncserver/internal/server/repositories/masterversions"
	"github.com/dmitrijs2005/syncserver/internal/server/repositories/sharinggroups"
	"github.com/dmitrijs2005/syncserver/internal/server/repositories/uploads"
)

// --- in-memory repositories ---

// memStore backs every fake repository. Transactions are not simulated:
// writes are visible immediately and survive a rollback.
type memStore struct {
	mu       sync.Mutex
	groups   map[string]*models.SharingGroup
	versions map[string]int64
	uploads  []*models.Upload
	index    map[string]*models.FileIndex
	locks    map[string]*models.Lock

	// now stands in for the database clock.
	now func() time.Time

	// clearSkew is added to the count Clear reports.
	clearSkew int64
	// stageErr and indexErr, when set, fail the corresponding repository.
	stageErr error
	indexErr error
}

func newMemStore() *memStore {
	return &memStore{
		groups:   map[string]*models.SharingGroup{},
		versions: map[string]int64{},
		index:    map[string]*models.FileIndex{},
		locks:    map[string]*models.Lock{},
		now:      time.Now,
	}
}

func indexKey(sg, file string) string { return sg + "/" + file }

func (st *memStore) addGroup(id string, version int64) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.groups[id] = &models.SharingGroup{ID: id, Name: "group"}
	st.versions[id] = version
}

func (st *memStore) putIndex(f *models.FileIndex) {
	st.mu.Lock()
	defer st.mu.Unlock()
	cp := *f
	st.index[indexKey(f.SharingGroupID, f.FileID)] = &cp
}

func (st *memStore) getIndex(sg, file string) *models.FileIndex {
	st.mu.Lock()
	defer st.mu.Unlock()
	f, ok := st.index[indexKey(sg, file)]
	if !ok {
		return nil
	}
	cp := *f
	return &cp
}

func (st *memStore) version(sg string) int64 {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.versions[sg]
}

func (st *memStore) stagedCount() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.uploads)
}

func (st *memStore) live(sg string) bool {
	g, ok := st.groups[sg]
	return ok && !g.Deleted
}

type fakeGroups struct{ st *memStore }

func (r fakeGroups) Create(_ context.Context, name string) (*models.SharingGroup, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	g := &models.SharingGroup{ID: fmt.Sprintf("00000000-0000-4000-8000-%012d", len(r.st.groups)+1), Name: name}
	r.st.groups[g.ID] = g
	return g, nil
}

func (r fakeGroups) Get(_ context.Context, id string) (*models.SharingGroup, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	g, ok := r.st.groups[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *g
	return &cp, nil
}

func (r fakeGroups) MarkDeleted(_ context.Context, id string) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if !r.st.live(id) {
		return common.ErrorNotFound
	}
	r.st.groups[id].Deleted = true
	return nil
}

type fakeVersions struct{ st *memStore }

func (r fakeVersions) Create(_ context.Context, id string) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	r.st.versions[id] = 0
	return nil
}

func (r fakeVersions) Current(_ context.Context, id string) (int64, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if !r.st.live(id) {
		return 0, common.ErrorNotFound
	}
	return r.st.versions[id], nil
}

func (r fakeVersions) CurrentForUpdate(ctx context.Context, id string) (int64, error) {
	return r.Current(ctx, id)
}

func (r fakeVersions) Advance(_ context.Context, id string, expected int64) (int64, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if r.st.versions[id] != expected {
		return 0, &common.VersionStaleError{Current: r.st.versions[id]}
	}
	r.st.versions[id]++
	return r.st.versions[id], nil
}

type fakeUploads struct{ st *memStore }

func (r fakeUploads) Stage(_ context.Context, u *models.Upload) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if r.st.stageErr != nil {
		return r.st.stageErr
	}
	for _, x := range r.st.uploads {
		if x.FileID == u.FileID && x.SharingGroupID == u.SharingGroupID && x.DeviceID == u.DeviceID {
			return common.ErrDuplicateStaging
		}
	}
	cp := *u
	r.st.uploads = append(r.st.uploads, &cp)
	return nil
}

func (r fakeUploads) EntriesFor(_ context.Context, sg, device string) ([]*models.Upload, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	var out []*models.Upload
	for _, x := range r.st.uploads {
		if x.SharingGroupID == sg && x.DeviceID == device {
			cp := *x
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r fakeUploads) Clear(_ context.Context, sg, device string) (int64, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	kept := r.st.uploads[:0]
	var n int64
	for _, x := range r.st.uploads {
		if x.SharingGroupID == sg && x.DeviceID == device {
			n++
			continue
		}
		kept = append(kept, x)
	}
	r.st.uploads = kept
	return n + r.st.clearSkew, nil
}

type fakeIndex struct{ st *memStore }

func (r fakeIndex) Lookup(_ context.Context, sg, file string) (*models.FileIndex, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if r.st.indexErr != nil {
		return nil, r.st.indexErr
	}
	f, ok := r.st.index[indexKey(sg, file)]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *f
	return &cp, nil
}

func (r fakeIndex) ListForSharingGroup(_ context.Context, sg string) ([]*models.FileIndex, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	var out []*models.FileIndex
	for _, f := range r.st.index {
		if f.SharingGroupID == sg {
			cp := *f
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FileID < out[j].FileID })
	return out, nil
}

func (r fakeIndex) Insert(_ context.Context, f *models.FileIndex) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	k := indexKey(f.SharingGroupID, f.FileID)
	if _, ok := r.st.index[k]; ok {
		return common.ErrVersionConflict
	}
	cp := *f
	r.st.index[k] = &cp
	return nil
}

func (r fakeIndex) Update(_ context.Context, f *models.FileIndex, expected int64) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	k := indexKey(f.SharingGroupID, f.FileID)
	cur, ok := r.st.index[k]
	if !ok || cur.FileVersion != expected {
		return common.ErrVersionConflict
	}
	cp := *f
	r.st.index[k] = &cp
	return nil
}

type fakeLocks struct{ st *memStore }

func (r fakeLocks) TryInsert(_ context.Context, sg, device string) (bool, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if _, ok := r.st.locks[sg]; ok {
		return false, nil
	}
	r.st.locks[sg] = &models.Lock{SharingGroupID: sg, DeviceID: device, AcquiredAt: r.st.now()}
	return true, nil
}

func (r fakeLocks) DeleteStale(_ context.Context, sg string, staleAfter time.Duration) (int64, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	l, ok := r.st.locks[sg]
	if !ok || !l.AcquiredAt.Before(r.st.now().Add(-staleAfter)) {
		return 0, nil
	}
	delete(r.st.locks, sg)
	return 1, nil
}

func (r fakeLocks) Delete(_ context.Context, sg string) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	delete(r.st.locks, sg)
	return nil
}

func (r fakeLocks) Get(_ context.Context, sg string) (*models.Lock, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	l, ok := r.st.locks[sg]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *l
	return &cp, nil
}

type fakeRepoManager struct{ st *memStore }

func (m fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m fakeRepoManager) SharingGroups(dbx.DBTX) sharinggroups.Repository {
	return fakeGroups{m.st}
}
func (m fakeRepoManager) MasterVersions(dbx.DBTX) masterversions.Repository {
	return fakeVersions{m.st}
}
func (m fakeRepoManager) Uploads(dbx.DBTX) uploads.Repository { return fakeUploads{m.st} }
func (m fakeRepoManager) FileIndex(dbx.DBTX) fileindex.Repository {
	return fakeIndex{m.st}
}
func (m fakeRepoManager) Locks(dbx.DBTX) locks.Repository { return fakeLocks{m.st} }

// --- collaborators ---

type fakeObjectStore struct {
	mu         sync.Mutex
	puts       []string
	gets       []string
	deleted    []string
	presignErr error
	deleteErr  error
}

func (s *fakeObjectStore) PresignPut(_ context.Context, key string, _ time.Duration) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.presignErr != nil {
		return "", s.presignErr
	}
	s.puts = append(s.puts, key)
	return "https://store.test/put/" + key, nil
}

func (s *fakeObjectStore) PresignGet(_ context.Context, key string, _ time.Duration) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.presignErr != nil {
		return "", s.presignErr
	}
	s.gets = append(s.gets, key)
	return "https://store.test/get/" + key, nil
}

func (s *fakeObjectStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, key)
	return nil
}

type recordingNotifier struct {
	mu      sync.Mutex
	commits []notify.Commit
	err     error
}

func (n *recordingNotifier) PublishCommit(_ context.Context, c notify.Commit) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.commits = append(n.commits, c)
	return n.err
}

// --- helpers ---

const (
	sgID    = "11111111-1111-4111-8111-111111111111"
	devA    = "aaaaaaaa-aaaa-4aaa-8aaa-aaaaaaaaaaaa"
	devB    = "bbbbbbbb-bbbb-4bbb-8bbb-bbbbbbbbbbbb"
	fileF   = "ffffffff-ffff-4fff-8fff-ffffffffffff"
	fileG   = "99999999-9999-4999-8999-999999999999"
	missing = "00000000-0000-4000-8000-000000000000"
)

type harness struct {
	svc      *SyncService
	st       *memStore
	store    *fakeObjectStore
	notifier *recordingNotifier
	mock     sqlmock.Sqlmock
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	cfg := &config.Config{}
	cfg.LoadDefaults()

	h := &harness{
		st:       newMemStore(),
		store:    &fakeObjectStore{},
		notifier: &recordingNotifier{},
		mock:     mock,
	}
	h.st.addGroup(sgID, 0)
	h.svc = NewSyncService(db, fakeRepoManager{h.st}, h.store, h.notifier, cfg, logging.Nop{})
	return h
}

func (h *harness) expectTx(commit bool) {
	h.mock.ExpectBegin()
	if commit {
		h.mock.ExpectCommit()
	} else {
		h.mock.ExpectRollback()
	}
}
