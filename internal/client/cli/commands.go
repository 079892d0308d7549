package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/runaudit/internal/client/client"
	"github.com/dmitrijs2005/runaudit/internal/client/models"
)

var errUsage = errors.New("usage")

const helpText = `Commands:
  signup [email]                   create an account
  login [email]                    log in and cache the access token
  logout                           forget the cached token
  me                               show the logged-in user
  templates                        list templates
  template <id>                    show one template
  upload <template-id> <file.csv>  validate a CSV header against a template
  runs                             list your runs, newest first
  run <run-id>                     show one run
  stats                            run totals
  download <run-id>                save the archived CSV of a run
  health                           server and database status
  help                             this text
  exit | quit                      leave the shell`

func usage(s string) error {
	return fmt.Errorf("%w: %s", errUsage, s)
}

// Execute runs one command. args[0] is the command name.
func (a *App) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usage("command required")
	}
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "help":
		fmt.Fprintln(a.out, helpText)
		return nil
	case "signup", "register":
		return a.Signup(ctx, rest)
	case "login":
		return a.Login(ctx, rest)
	case "logout":
		return a.Logout(ctx)
	case "me":
		return a.Me(ctx)
	case "templates":
		return a.Templates(ctx)
	case "template":
		if len(rest) != 1 {
			return usage("template <id>")
		}
		return a.Template(ctx, rest[0])
	case "upload":
		if len(rest) != 2 {
			return usage("upload <template-id> <file.csv>")
		}
		return a.Upload(ctx, rest[0], rest[1])
	case "runs", "list", "l":
		return a.Runs(ctx)
	case "run", "show":
		if len(rest) != 1 {
			return usage("run <run-id>")
		}
		return a.ShowRun(ctx, rest[0])
	case "stats":
		return a.Stats(ctx)
	case "download":
		if len(rest) != 1 {
			return usage("download <run-id>")
		}
		return a.Download(ctx, rest[0])
	case "health":
		return a.Health(ctx)
	default:
		return usage(fmt.Sprintf("unknown command %q, type 'help'", cmd))
	}
}

func (a *App) Templates(ctx context.Context) error {
	items, err := a.runs.Templates(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No templates.")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCOLUMNS")
	for _, t := range items {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", t.ID, t.Name, len(t.Columns))
	}
	return tw.Flush()
}

func (a *App) Template(ctx context.Context, id string) error {
	t, err := a.runs.Template(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "ID:          %s\n", t.ID)
	fmt.Fprintf(a.out, "Name:        %s\n", t.Name)
	if t.Description != nil {
		fmt.Fprintf(a.out, "Description: %s\n", *t.Description)
	}
	fmt.Fprintln(a.out, "Columns:")
	for _, c := range t.Columns {
		fmt.Fprintf(a.out, "  - %s\n", c)
	}
	return nil
}

func (a *App) Upload(ctx context.Context, templateID, path string) error {
	run, err := a.runs.Upload(ctx, templateID, path)
	if err != nil {
		return err
	}
	printRun(a.out, run)
	return nil
}

func (a *App) Runs(ctx context.Context) error {
	runs, err := a.runs.Runs(ctx)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(a.out, "No runs yet.")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTATUS\tTIMESTAMP\tFILE")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.ID, strings.ToUpper(r.Status), r.Timestamp.Local().Format("2006-01-02 15:04:05"), r.FileName)
	}
	return tw.Flush()
}

func (a *App) ShowRun(ctx context.Context, id string) error {
	run, err := a.runs.Run(ctx, id)
	if err != nil {
		return err
	}
	printRun(a.out, run)
	return nil
}

func (a *App) Stats(ctx context.Context) error {
	st, err := a.runs.Stats(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Total: %d  Passed: %d  Failed: %d\n", st.TotalRuns, st.PassedRuns, st.FailedRuns)
	return nil
}

func (a *App) Download(ctx context.Context, id string) error {
	path, err := a.runs.Download(ctx, id, a.destDir)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved to %s\n", path)
	return nil
}

func (a *App) Health(ctx context.Context) error {
	h, err := a.auth.Health(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Status: %s  Database: %s\n", h.Status, h.DBStatus)
	if h.Details != "" {
		fmt.Fprintf(a.out, "Details: %s\n", h.Details)
	}
	return nil
}

func printUser(w io.Writer, u *models.User) {
	fmt.Fprintf(w, "ID:    %s\n", u.ID)
	fmt.Fprintf(w, "Email: %s\n", u.Email)
	if u.FullName != nil {
		fmt.Fprintf(w, "Name:  %s\n", *u.FullName)
	}
	if u.Disabled {
		fmt.Fprintln(w, "Account disabled")
	}
}

func printRun(w io.Writer, r *models.Run) {
	fmt.Fprintf(w, "Run %s: %s\n", r.ID, strings.ToUpper(r.Status))
	fmt.Fprintf(w, "  template: %s\n", r.TemplateID)
	fmt.Fprintf(w, "  file:     %s\n", r.FileName)
	fmt.Fprintf(w, "  at:       %s\n", r.Timestamp.Local().Format("2006-01-02 15:04:05"))
	for _, e := range r.Errors {
		fmt.Fprintf(w, "  ! %s\n", e)
	}
}

// reportError prints err in a form suitable for the terminal.
func reportError(w io.Writer, err error) {
	switch {
	case errors.Is(err, client.ErrNotLoggedIn):
		fmt.Fprintln(w, "Not logged in. Run 'login' first.")
	case errors.Is(err, client.ErrUnavailable):
		fmt.Fprintf(w, "Server unavailable: %v\n", err)
	default:
		fmt.Fprintf(w, "Error: %v\n", err)
	}
}
