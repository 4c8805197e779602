package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jotterhq/jotter/schema"
)

type listCmd struct {
	app  *App
	JSON bool `long:"json" description:"print raw JSON"`
}

func (c *listCmd) Execute(_ []string) error {
	notes, err := c.app.connect()
	if err != nil {
		return err
	}
	items, err := notes.ListNotes(context.Background())
	if err != nil {
		return err
	}
	if c.JSON {
		data, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintf(c.app.stdout, "%s\n", data)
		return nil
	}
	for _, item := range items {
		fmt.Fprintf(c.app.stdout, "%4d  %v  %v\n", item.ID, item.CreatedAt.Format("2006-01-02 15:04"), item.Title)
	}
	return nil
}

type addCmd struct {
	app  *App
	File string `short:"f" long:"file" description:"read content from a file or URL"`
	Args struct {
		Title   string `positional-arg-name:"title" required:"yes" description:"note title"`
		Content string `positional-arg-name:"content" description:"note content, unless --file is used"`
	} `positional-args:"yes"`
}

func (c *addCmd) Execute(_ []string) error {
	ctx := context.Background()
	content := c.Args.Content
	if c.File != "" {
		var err error
		if content, err = c.app.readContent(ctx, c.File); err != nil {
			return err
		}
	}
	notes, err := c.app.connect()
	if err != nil {
		return err
	}
	note, err := notes.CreateNote(ctx, &schema.NoteRequest{Title: c.Args.Title, Content: content})
	if err != nil {
		return err
	}
	fmt.Fprintf(c.app.stdout, "added note %v\n", note.ID)
	return nil
}

type editCmd struct {
	app  *App
	File string `short:"f" long:"file" description:"read content from a file or URL"`
	Args struct {
		ID      int64  `positional-arg-name:"id" required:"yes" description:"note id"`
		Title   string `positional-arg-name:"title" required:"yes" description:"new title"`
		Content string `positional-arg-name:"content" description:"new content, unless --file is used"`
	} `positional-args:"yes"`
}

func (c *editCmd) Execute(_ []string) error {
	ctx := context.Background()
	content := c.Args.Content
	if c.File != "" {
		var err error
		if content, err = c.app.readContent(ctx, c.File); err != nil {
			return err
		}
	}
	notes, err := c.app.connect()
	if err != nil {
		return err
	}
	note, err := notes.UpdateNote(ctx, c.Args.ID, &schema.NoteRequest{Title: c.Args.Title, Content: content})
	if err != nil {
		return err
	}
	fmt.Fprintf(c.app.stdout, "updated note %v\n", note.ID)
	return nil
}

type removeCmd struct {
	app  *App
	Args struct {
		ID int64 `positional-arg-name:"id" required:"yes" description:"note id"`
	} `positional-args:"yes"`
}

func (c *removeCmd) Execute(_ []string) error {
	notes, err := c.app.connect()
	if err != nil {
		return err
	}
	if err = notes.DeleteNote(context.Background(), c.Args.ID); err != nil {
		return err
	}
	fmt.Fprintf(c.app.stdout, "deleted note %v\n", c.Args.ID)
	return nil
}
