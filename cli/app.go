package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/viant/afs"

	"github.com/jotterhq/jotter"
	"github.com/jotterhq/jotter/client"
)

// App wires global options, the notes client and command output together.
// Commands hold a back reference so that Execute can reach the parsed
// global flags.
type App struct {
	Options
	fs     afs.Service
	stdout io.Writer
	client *client.Client
}

func newApp(stdout io.Writer) *App {
	app := &App{fs: afs.New(), stdout: stdout}
	app.Register.app = app
	app.Login.app = app
	app.Logout.app = app
	app.List.app = app
	app.Add.app = app
	app.Edit.app = app
	app.Remove.app = app
	return app
}

// connect builds the notes client on first use so that global flags are
// already parsed by the time a command executes.
func (a *App) connect() (*client.Client, error) {
	if a.client != nil {
		return a.client, nil
	}
	ret, err := jotter.NewClient(&jotter.ClientOptions{
		BaseURL:    a.BaseURL,
		TokenPath:  a.TokenPath,
		TimeoutSec: a.Timeout,
	})
	if err != nil {
		return nil, err
	}
	a.client = ret
	return ret, nil
}

// readContent loads note content from a local file or URL.
func (a *App) readContent(ctx context.Context, location string) (string, error) {
	data, err := a.fs.DownloadWithURL(ctx, location)
	if err != nil {
		return "", fmt.Errorf("failed to read %v: %w", location, err)
	}
	return string(data), nil
}

// expiredError drops the stale session token and tells the user how to recover.
func (a *App) expiredError() error {
	if a.client != nil {
		_ = a.client.Logout(context.Background())
	}
	return errors.New(`session expired: run "jot login" to sign in again`)
}
