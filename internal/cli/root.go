package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

var errUsage = errors.New("usage")

type command struct {
	usage string
	run   func(a *App, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"info":     {"info", (*App).info},
	"list":     {"list", (*App).list},
	"show":     {"show <id>", (*App).show},
	"reveal":   {"reveal <id> <field>", (*App).reveal},
	"history":  {"history <id>", (*App).history},
	"addlogin": {"addlogin", (*App).addLogin},
	"addnote":  {"addnote", (*App).addNote},
	"attach":   {"attach <id> <path>", (*App).attach},
	"export":   {"export <id> <attachment-id> <path>", (*App).export},
	"tag":      {"tag <id> <tag>", (*App).tag},
	"delete":   {"delete <id>", (*App).delete},
	"passwd":   {"passwd", (*App).passwd},
	"save":     {"save", func(a *App, ctx context.Context, _ []string) error { return a.save(ctx) }},
}

func (a *App) getStatus() string {
	if a.dirty {
		return "(modified)"
	}
	return ""
}

// Root runs the REPL. It returns when the user exits or input ends; pending
// changes are saved on the way out.
func (a *App) Root(ctx context.Context) error {
	fmt.Fprintln(a.out, "Archive vault (type 'help' for commands)")

	for {
		fmt.Fprintf(a.out, "vault %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil && line == "" {
			if errors.Is(err, io.EOF) {
				return a.quit(ctx)
			}
			return err
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "help":
			a.help()
			continue
		case "exit", "quit":
			return a.quit(ctx)
		}

		cmd, ok := commands[name]
		if !ok {
			fmt.Fprintln(a.out, "Unknown command:", name)
			continue
		}
		if err := cmd.run(a, ctx, args); err != nil {
			if errors.Is(err, errUsage) {
				fmt.Fprintln(a.out, "Usage:", cmd.usage)
				continue
			}
			a.log.Error(ctx, "command failed", "command", name, "error", err)
			fmt.Fprintln(a.out, "error:", err)
		}
	}
}

func (a *App) help() {
	fmt.Fprintln(a.out, "Available commands:")
	for _, name := range []string{"info", "list", "show", "reveal", "history", "addlogin", "addnote",
		"attach", "export", "tag", "delete", "passwd", "save"} {
		fmt.Fprintln(a.out, "  "+commands[name].usage)
	}
	fmt.Fprintln(a.out, "  exit")
}

func (a *App) quit(ctx context.Context) error {
	if a.dirty {
		if err := a.save(ctx); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Changes saved.")
	}
	fmt.Fprintln(a.out, "Bye!")
	return nil
}
