package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/invtrack/internal/client/client"
	"github.com/dmitrijs2005/invtrack/internal/client/config"
)

var (
	errUsage   = errors.New("usage error")
	errNoToken = errors.New("no session token: pass -token or set INVTRACK_TOKEN (see 'invctl login')")
)

type App struct {
	api    client.Client
	token  string
	reader *bufio.Reader
	out    io.Writer
	prompt io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewHTTPClient(c.ServerURL, c.RequestTimeout)
	if err != nil {
		return nil, err
	}
	apiClient.SetToken(c.Token)

	return &App{
		api:    apiClient,
		token:  c.Token,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		prompt: os.Stderr,
	}, nil
}

// Run executes one command. args[0] is the command name.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return errUsage
	}

	cmd, rest := args[0], args[1:]

	switch cmd {
	case "help", "-h", "-help", "--help":
		a.usage()
		return nil
	case "signup", "register":
		return a.Signup(ctx)
	case "login":
		return a.Login(ctx)
	}

	if a.token == "" {
		return errNoToken
	}

	switch cmd {
	case "list", "l":
		return a.List(ctx, rest)
	case "get", "show":
		return a.Get(ctx, rest)
	case "add":
		return a.Add(ctx, rest)
	case "update":
		return a.Update(ctx, rest)
	case "delete":
		return a.Delete(ctx, rest)
	}

	fmt.Fprintln(a.prompt, "Unknown command:", cmd)
	a.usage()
	return errUsage
}

func (a *App) usage() {
	fmt.Fprintln(a.prompt, "Usage: invctl [-a url] [-t seconds] [-token token] <command> [args]")
	fmt.Fprintln(a.prompt, "Commands: signup, login, list, get <id>, add [k=v ...], update <id> [k=v ...], delete <id>")
}

// IsUsageError reports whether err came from bad command-line arguments.
func IsUsageError(err error) bool {
	return errors.Is(err, errUsage)
}
