package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-note-sync/internal/client"
	"github.com/MKhiriev/go-note-sync/models"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var errEmptyPassword = errors.New("password must not be empty")

func (c *cli) registerCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:     "register <login>",
		Short:   "Create an account on the server and log in",
		GroupID: "account",
		Args:    cobra.ExactArgs(1),
		RunE: c.withApp(func(cmd *cobra.Command, args []string, app *client.App) error {
			pass, err := passwordFrom(cmd, password)
			if err != nil {
				return err
			}
			return app.Register(cmd.Context(), args[0], pass)
		}),
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password, read from stdin when omitted")

	return cmd
}

func (c *cli) loginCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:     "login <login>",
		Short:   "Log in and store the session locally",
		GroupID: "account",
		Args:    cobra.ExactArgs(1),
		RunE: c.withApp(func(cmd *cobra.Command, args []string, app *client.App) error {
			pass, err := passwordFrom(cmd, password)
			if err != nil {
				return err
			}
			return app.Login(cmd.Context(), args[0], pass)
		}),
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password, read from stdin when omitted")

	return cmd
}

func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "logout",
		Short:   "Forget the stored session",
		GroupID: "account",
		Args:    cobra.NoArgs,
		RunE: c.withApp(func(cmd *cobra.Command, _ []string, app *client.App) error {
			return app.Logout(cmd.Context())
		}),
	}
}

func (c *cli) noteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "note",
		Short:   "Manage local notes",
		Long:    "Create, list, show, edit and copy notes. Changes reach the server on the next sync.",
		GroupID: "notes",
	}

	cmd.AddCommand(
		c.noteAddCmd(),
		c.noteListCmd(),
		c.noteShowCmd(),
		c.noteEditCmd(),
		c.noteCopyCmd(),
	)
	return cmd
}

func (c *cli) noteAddCmd() *cobra.Command {
	var (
		body     string
		isPublic bool
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a note",
		Long: `Create a note with a title and optional body.

Examples:
  note-sync note add "Groceries" --body "milk, eggs"
  echo "long text" | note-sync note add "Draft" --body -`,
		Args: cobra.ExactArgs(1),
		RunE: c.withApp(func(cmd *cobra.Command, args []string, app *client.App) error {
			text, err := bodyFrom(cmd.InOrStdin(), body)
			if err != nil {
				return err
			}
			return app.AddNote(cmd.Context(), args[0], text, isPublic)
		}),
	}
	cmd.Flags().StringVarP(&body, "body", "b", "", `note body, "-" reads it from stdin`)
	cmd.Flags().BoolVar(&isPublic, "public", false, "mark the note public")

	return cmd
}

func (c *cli) noteListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List local notes",
		Args:    cobra.NoArgs,
		RunE: c.withApp(func(cmd *cobra.Command, _ []string, app *client.App) error {
			return app.ListNotes(cmd.Context())
		}),
	}
}

func (c *cli) noteShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a note with its full body",
		Args:  cobra.ExactArgs(1),
		RunE: c.withApp(func(cmd *cobra.Command, args []string, app *client.App) error {
			return app.ShowNote(cmd.Context(), args[0])
		}),
	}
}

func (c *cli) noteEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a note",
		Long: `Edit the title, body or visibility of a note. Only the given flags change.

Examples:
  note-sync note edit 0192f5c4-... --title "Groceries (sat)"
  note-sync note edit 0192f5c4-... --public=false`,
		Args: cobra.ExactArgs(1),
	}
	cmd.Flags().StringP("title", "t", "", "new title")
	cmd.Flags().StringP("body", "b", "", `new body, "-" reads it from stdin`)
	cmd.Flags().Bool("public", false, "new visibility")

	cmd.RunE = c.withApp(func(cmd *cobra.Command, args []string, app *client.App) error {
		edit, err := noteEditFromFlags(cmd.Flags(), cmd.InOrStdin())
		if err != nil {
			return err
		}
		return app.EditNote(cmd.Context(), args[0], edit)
	})

	return cmd
}

func (c *cli) noteCopyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy <id>",
		Short: "Copy the title and body of a note to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: c.withApp(func(cmd *cobra.Command, args []string, app *client.App) error {
			return app.CopyNote(cmd.Context(), args[0])
		}),
	}
}

func (c *cli) syncCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "sync",
		Short:   "Run one sync pass between the local notes and the server",
		Long:    "Run one sync pass. The command fails when any part of the pass fails.",
		GroupID: "sync",
		Args:    cobra.NoArgs,
		RunE: c.withApp(func(cmd *cobra.Command, _ []string, app *client.App) error {
			return app.Sync(cmd.Context())
		}),
	}
}

func (c *cli) daemonCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "daemon",
		Short:   "Run sync passes periodically until interrupted",
		GroupID: "sync",
		Args:    cobra.NoArgs,
		RunE: c.withApp(func(cmd *cobra.Command, _ []string, app *client.App) error {
			return app.Daemon(cmd.Context())
		}),
	}
}

func (c *cli) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the client build and the server version",
		Args:  cobra.NoArgs,
		RunE: c.withApp(func(cmd *cobra.Command, _ []string, app *client.App) error {
			return app.Version(cmd.Context())
		}),
	}
}

// noteEditFromFlags builds an edit from the flags that were set explicitly.
func noteEditFromFlags(fs *pflag.FlagSet, stdin io.Reader) (models.NoteEdit, error) {
	var edit models.NoteEdit

	if fs.Changed("title") {
		title, err := fs.GetString("title")
		if err != nil {
			return edit, err
		}
		edit.Title = &title
	}

	if fs.Changed("body") {
		raw, err := fs.GetString("body")
		if err != nil {
			return edit, err
		}
		body, err := bodyFrom(stdin, raw)
		if err != nil {
			return edit, err
		}
		edit.Body = &body
	}

	if fs.Changed("public") {
		isPublic, err := fs.GetBool("public")
		if err != nil {
			return edit, err
		}
		edit.IsPublic = &isPublic
	}

	return edit, nil
}

// bodyFrom returns value, or the whole of stdin when value is "-".
func bodyFrom(stdin io.Reader, value string) (string, error) {
	if value != "-" {
		return value, nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read body from stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// passwordFrom returns the --password value, or the first line of stdin.
func passwordFrom(cmd *cobra.Command, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}

	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", errEmptyPassword
	}
	return line, nil
}
