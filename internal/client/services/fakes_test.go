package services

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/runaudit/internal/client/client"
	"github.com/dmitrijs2005/runaudit/internal/client/models"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	loginTok  *models.Token
	loginErr  error
	logoutErr error
	authErr   error

	user *models.User
	run  *models.Run
	runs []*models.Run
	url  string

	gotToken   string
	gotFile    string
	gotContent []byte
	gotSignup  string
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) Signup(_ context.Context, email, _ string, _ *string) (*models.User, error) {
	f.gotSignup = email
	return &models.User{ID: "u-1", Email: email}, nil
}
func (f *fakeClient) Login(context.Context, string, string) (*models.Token, error) {
	return f.loginTok, f.loginErr
}
func (f *fakeClient) Logout(context.Context) error { return f.logoutErr }
func (f *fakeClient) Me(_ context.Context, token string) (*models.User, error) {
	f.gotToken = token
	return f.user, f.authErr
}
func (f *fakeClient) Templates(context.Context) ([]*models.Template, error) {
	return []*models.Template{{ID: "t-1"}}, nil
}
func (f *fakeClient) Template(_ context.Context, id string) (*models.Template, error) {
	return &models.Template{ID: id}, nil
}
func (f *fakeClient) UploadRun(_ context.Context, token, _, fileName string, content []byte) (*models.Run, error) {
	f.gotToken, f.gotFile, f.gotContent = token, fileName, content
	return f.run, f.authErr
}
func (f *fakeClient) Runs(_ context.Context, token string) ([]*models.Run, error) {
	f.gotToken = token
	return f.runs, f.authErr
}
func (f *fakeClient) Run(_ context.Context, token, _ string) (*models.Run, error) {
	f.gotToken = token
	return f.run, f.authErr
}
func (f *fakeClient) Stats(_ context.Context, token string) (*models.RunStats, error) {
	f.gotToken = token
	return &models.RunStats{TotalRuns: 1}, f.authErr
}
func (f *fakeClient) DownloadURL(_ context.Context, token, _ string) (string, error) {
	f.gotToken = token
	return f.url, f.authErr
}
func (f *fakeClient) Health(context.Context) (*models.Health, error) {
	return &models.Health{Status: "ok", DBStatus: "connected"}, nil
}

func newSessionDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}
