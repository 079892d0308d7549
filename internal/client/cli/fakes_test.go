package cli

import (
	"bytes"
	"context"
	"time"

	"github.com/dmitrijs2005/runaudit/internal/client/models"
)

type fakeAuth struct {
	email     string
	token     string
	signupErr error
	loginErr  error

	gotEmail    string
	gotPassword string
	gotFullName *string
	loggedOut   bool
	user        *models.User
	health      *models.Health
	err         error
}

func (f *fakeAuth) Signup(_ context.Context, email, password string, fullName *string) (*models.User, error) {
	f.gotEmail, f.gotPassword, f.gotFullName = email, password, fullName
	if f.signupErr != nil {
		return nil, f.signupErr
	}
	return &models.User{ID: "u-1", Email: email, FullName: fullName}, nil
}
func (f *fakeAuth) Login(_ context.Context, email, password string) error {
	f.gotEmail, f.gotPassword = email, password
	if f.loginErr != nil {
		return f.loginErr
	}
	f.email, f.token = email, "tok"
	return nil
}
func (f *fakeAuth) Logout(context.Context) error {
	f.loggedOut = true
	f.email, f.token = "", ""
	return nil
}
func (f *fakeAuth) Me(context.Context) (*models.User, error) { return f.user, f.err }
func (f *fakeAuth) Token(context.Context) (string, error)     { return f.token, nil }
func (f *fakeAuth) Email(context.Context) (string, error)     { return f.email, nil }
func (f *fakeAuth) Health(context.Context) (*models.Health, error) {
	return f.health, f.err
}

type fakeRuns struct {
	templates []*models.Template
	run       *models.Run
	runs      []*models.Run
	stats     *models.RunStats
	err       error

	gotTemplateID string
	gotPath       string
	gotRunID      string
	gotDestDir    string
}

func (f *fakeRuns) Templates(context.Context) ([]*models.Template, error) {
	return f.templates, f.err
}
func (f *fakeRuns) Template(_ context.Context, id string) (*models.Template, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, t := range f.templates {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, f.err
}
func (f *fakeRuns) Upload(_ context.Context, templateID, path string) (*models.Run, error) {
	f.gotTemplateID, f.gotPath = templateID, path
	return f.run, f.err
}
func (f *fakeRuns) Runs(context.Context) ([]*models.Run, error) { return f.runs, f.err }
func (f *fakeRuns) Run(_ context.Context, id string) (*models.Run, error) {
	f.gotRunID = id
	return f.run, f.err
}
func (f *fakeRuns) Stats(context.Context) (*models.RunStats, error) { return f.stats, f.err }
func (f *fakeRuns) DownloadURL(_ context.Context, id string) (string, error) {
	f.gotRunID = id
	return "https://signed", f.err
}
func (f *fakeRuns) Download(_ context.Context, id, destDir string) (string, error) {
	f.gotRunID, f.gotDestDir = id, destDir
	return destDir + "/batch.csv", f.err
}

func newTestApp(input string) (*App, *fakeAuth, *fakeRuns, *bytes.Buffer) {
	fa := &fakeAuth{}
	fr := &fakeRuns{}
	out := &bytes.Buffer{}
	return &App{auth: fa, runs: fr, reader: rdr(input), out: out, destDir: "/tmp/dl"}, fa, fr, out
}

var fixedTime = time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
