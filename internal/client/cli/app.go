// Package cli implements the command-line client for the taskhub API.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/taskhub/internal/client"
)

// App dispatches CLI commands against one server.
type App struct {
	client *client.Client
	in     *bufio.Reader
	out    io.Writer
}

func NewApp(serverURL string) *App {
	return &App{
		client: client.New(serverURL, client.LoadToken()),
		in:     bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

// Run executes a single command. Supported commands:
//
//	register            create an account (interactive)
//	login               authenticate (interactive)
//	list                print todos, newest first
//	add <title...>      create a todo
//	done <id>           mark a todo completed
//	rm <id>             delete a todo
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no command given; expected one of: register, login, list, add, done, rm")
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "register":
		return a.register(ctx)
	case "login":
		return a.login(ctx)
	case "list":
		return a.list(ctx)
	case "add":
		if len(rest) == 0 {
			return fmt.Errorf("usage: add <title>")
		}
		return a.add(ctx, strings.Join(rest, " "))
	case "done":
		if len(rest) != 1 {
			return fmt.Errorf("usage: done <id>")
		}
		return a.done(ctx, rest[0])
	case "rm":
		if len(rest) != 1 {
			return fmt.Errorf("usage: rm <id>")
		}
		return a.remove(ctx, rest[0])
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *App) register(ctx context.Context) error {
	name, err := GetSimpleText(a.in, "Display name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.in, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.client.Register(ctx, name, email, string(password))
	if err != nil {
		return err
	}
	if err := client.SaveToken(a.client.Token()); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Registered as %s <%s>\n", user.DisplayName, user.Email)
	return nil
}

func (a *App) login(ctx context.Context) error {
	email, err := GetSimpleText(a.in, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return err
	}
	if err := client.SaveToken(a.client.Token()); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s <%s>\n", user.DisplayName, user.Email)
	return nil
}

func (a *App) list(ctx context.Context) error {
	todos, err := a.client.ListTodos(ctx)
	if err != nil {
		return err
	}
	if len(todos) == 0 {
		fmt.Fprintln(a.out, "No todos yet")
		return nil
	}
	for _, t := range todos {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		fmt.Fprintf(a.out, "[%s] %s  %s\n", mark, t.ID, t.Title)
	}
	return nil
}

func (a *App) add(ctx context.Context, title string) error {
	todo, err := a.client.AddTodo(ctx, title)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added %s\n", todo.ID)
	return nil
}

func (a *App) done(ctx context.Context, id string) error {
	todo, err := a.client.CompleteTodo(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Completed %s\n", todo.ID)
	return nil
}

func (a *App) remove(ctx context.Context, id string) error {
	if err := a.client.DeleteTodo(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Deleted")
	return nil
}
