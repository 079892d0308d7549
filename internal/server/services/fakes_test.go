package services

import (
	"context"
	"database/sql"
	"reflect"
	"slices"
	"sort"
	"sync"

	"github.com/dmitrijs2005/runaudit/internal/common"
	"github.com/dmitrijs2005/runaudit/internal/dbx"
	"github.com/dmitrijs2005/runaudit/internal/server/models"
	"github.com/dmitrijs2005/runaudit/internal/server/repositories/runs"
	"github.com/dmitrijs2005/runaudit/internal/server/repositories/templates"
	"github.com/dmitrijs2005/runaudit/internal/server/repositories/users"
	"github.com/google/uuid"
)

// --- in-memory repositories ---

type fakeUsersRepo struct {
	mu     sync.Mutex
	users  map[string]*models.User
	getErr error
	// createErr is returned by Create when set
	createErr error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{users: map[string]*models.User{}}
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.users[u.Email]; ok {
		return nil, common.ErrDuplicateEmail
	}
	cp := *u
	cp.ID = uuid.NewString()
	f.users[u.Email] = &cp
	return &cp, nil
}

func (f *fakeUsersRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.users[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

type fakeTemplatesRepo struct {
	items     map[string]*models.Template
	listErr   error
	upsertErr error
	upserted  []string
}

func newFakeTemplatesRepo(items ...*models.Template) *fakeTemplatesRepo {
	f := &fakeTemplatesRepo{items: map[string]*models.Template{}}
	for _, t := range items {
		f.items[t.ID] = t
	}
	return f
}

func (f *fakeTemplatesRepo) List(context.Context) ([]*models.Template, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*models.Template, 0, len(f.items))
	for _, t := range f.items {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeTemplatesRepo) GetByID(_ context.Context, id string) (*models.Template, error) {
	t, ok := f.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return t, nil
}

func (f *fakeTemplatesRepo) Upsert(_ context.Context, t *models.Template) (templates.UpsertResult, error) {
	if f.upsertErr != nil {
		return 0, f.upsertErr
	}
	f.upserted = append(f.upserted, t.Name)
	for _, existing := range f.items {
		if existing.Name == t.Name {
			t.ID = existing.ID
			if reflect.DeepEqual(existing.Description, t.Description) && slices.Equal(existing.Columns, t.Columns) {
				return templates.Unchanged, nil
			}
			existing.Description = t.Description
			existing.Columns = t.Columns
			return templates.Updated, nil
		}
	}
	t.ID = uuid.NewString()
	f.items[t.ID] = t
	return templates.Created, nil
}

type fakeRunsRepo struct {
	runs      []*models.Run
	createErr error
}

func (f *fakeRunsRepo) Create(_ context.Context, r *models.Run) (*models.Run, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	cp := *r
	cp.ID = uuid.NewString()
	f.runs = append(f.runs, &cp)
	return &cp, nil
}

func (f *fakeRunsRepo) ListForUser(_ context.Context, userID string) ([]*models.Run, error) {
	var out []*models.Run
	for i := len(f.runs) - 1; i >= 0; i-- {
		if f.runs[i].UserID == userID {
			out = append(out, f.runs[i])
		}
	}
	return out, nil
}

func (f *fakeRunsRepo) StatsForUser(_ context.Context, userID string) (*models.RunStats, error) {
	st := &models.RunStats{}
	for _, r := range f.runs {
		if r.UserID != userID {
			continue
		}
		st.TotalRuns++
		switch r.Status {
		case common.RunStatusPass:
			st.PassedRuns++
		case common.RunStatusFail:
			st.FailedRuns++
		}
	}
	return st, nil
}

func (f *fakeRunsRepo) GetForUser(_ context.Context, userID, runID string) (*models.Run, error) {
	for _, r := range f.runs {
		if r.ID == runID && r.UserID == userID {
			return r, nil
		}
	}
	return nil, common.ErrorNotFound
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	t *fakeTemplatesRepo
	r *fakeRunsRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{u: newFakeUsersRepo(), t: newFakeTemplatesRepo(), r: &fakeRunsRepo{}}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository            { return m.u }
func (m *fakeRepoManager) Templates(dbx.DBTX) templates.Repository    { return m.t }
func (m *fakeRepoManager) Runs(dbx.DBTX) runs.Repository              { return m.r }

// --- archive ---

type fakeArchive struct {
	objects   map[string][]byte
	putErr    error
	deleteErr error
	deleted   []string
}

func newFakeArchive() *fakeArchive { return &fakeArchive{objects: map[string][]byte{}} }

func (a *fakeArchive) Put(_ context.Context, key string, content []byte) error {
	if a.putErr != nil {
		return a.putErr
	}
	a.objects[key] = content
	return nil
}

func (a *fakeArchive) Delete(_ context.Context, key string) error {
	a.deleted = append(a.deleted, key)
	if a.deleteErr != nil {
		return a.deleteErr
	}
	delete(a.objects, key)
	return nil
}

func (a *fakeArchive) PresignGet(_ context.Context, key string) (string, error) {
	return "https://storage.example/" + key + "?sig=1", nil
}
