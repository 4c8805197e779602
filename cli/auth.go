package cli

import (
	"context"
	"fmt"
)

type registerCmd struct {
	app  *App
	Args struct {
		Email    string `positional-arg-name:"email" description:"account email"`
		Password string `positional-arg-name:"password" description:"account password"`
	} `positional-args:"yes" required:"yes"`
}

func (c *registerCmd) Execute(_ []string) error {
	notes, err := c.app.connect()
	if err != nil {
		return err
	}
	if err = notes.Register(context.Background(), c.Args.Email, c.Args.Password); err != nil {
		return err
	}
	fmt.Fprintf(c.app.stdout, "registered %v\n", c.Args.Email)
	return nil
}

type loginCmd struct {
	app  *App
	Args struct {
		Email    string `positional-arg-name:"email" description:"account email"`
		Password string `positional-arg-name:"password" description:"account password"`
	} `positional-args:"yes" required:"yes"`
}

func (c *loginCmd) Execute(_ []string) error {
	notes, err := c.app.connect()
	if err != nil {
		return err
	}
	if err = notes.Login(context.Background(), c.Args.Email, c.Args.Password); err != nil {
		return err
	}
	fmt.Fprintf(c.app.stdout, "logged in as %v\n", c.Args.Email)
	return nil
}

type logoutCmd struct {
	app *App
}

func (c *logoutCmd) Execute(_ []string) error {
	notes, err := c.app.connect()
	if err != nil {
		return err
	}
	if err = notes.Logout(context.Background()); err != nil {
		return err
	}
	fmt.Fprintln(c.app.stdout, "logged out")
	return nil
}
