package cli

import (
	"errors"
	"io"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/jotterhq/jotter/schema"
)

// Run executes a jot command line.
func Run(args []string) error {
	return run(args, os.Stdout)
}

func run(args []string, stdout io.Writer) error {
	app := newApp(stdout)
	parser := flags.NewParser(&app.Options, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		if errors.Is(err, schema.ErrSessionExpired) {
			return app.expiredError()
		}
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(stdout)
			return nil
		}
		return err
	}
	return nil
}
