package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/carlosdaniiel07/identity-service/internal/client/api"
	"github.com/carlosdaniiel07/identity-service/internal/common"
)

// Indirections over the input helpers, swappable in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

type App struct {
	reader *bufio.Reader
	out    io.Writer
	client *api.Client
}

func NewApp(serverURL string) *App {
	return &App{
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		client: api.New(serverURL),
	}
}

// Run dispatches a single command: "register" or "login".
func (a *App) Run(ctx context.Context, command string) error {
	switch command {
	case "register":
		return a.Register(ctx)
	case "login":
		return a.Login(ctx)
	default:
		return fmt.Errorf("unknown command %q (expected register or login)", command)
	}
}

// Register prompts for a display name, email, and password and creates an
// account. The password is wiped from memory before returning.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.client.SignUp(ctx, name, email, password); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Success!")
	return nil
}

// Login prompts for credentials and prints the issued access token.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	token, err := a.client.Login(ctx, email, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Access token: %s\n", token)
	return nil
}
