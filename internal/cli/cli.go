package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/five82/roster/internal/logtail"
	"github.com/five82/roster/internal/roster"
)

// ErrRequestFailed is returned when the players service could not complete
// a request. The cause is written to the roster log, not returned.
var ErrRequestFailed = errors.New("request failed")

// UsageError reports a malformed command line.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

const defaultLogLines = 50

// Runner executes one-shot roster commands.
type Runner struct {
	API     *roster.API
	Out     io.Writer
	LogPath string
	// Prompter collects add fields missing from the command line. Nil
	// leaves them empty.
	Prompter Prompter
}

// Commands lists the subcommands Run accepts.
var Commands = []string{"list", "show", "add", "rm", "logs"}

// Run dispatches args[0] to its command.
func (r Runner) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return &UsageError{Msg: "missing command"}
	}
	if r.Out == nil {
		r.Out = io.Discard
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "list", "ls":
		return r.list(ctx, rest)
	case "show":
		return r.show(ctx, rest)
	case "add":
		return r.add(ctx, rest)
	case "rm", "remove":
		return r.remove(ctx, rest)
	case "logs":
		return r.logs(rest)
	default:
		return &UsageError{Msg: fmt.Sprintf("unknown command %q", cmd)}
	}
}

func (r Runner) list(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return &UsageError{Msg: "list takes no arguments"}
	}
	players := r.API.ListAll(ctx)
	if players == nil {
		return ErrRequestFailed
	}
	return writePlayers(r.Out, players)
}

func (r Runner) show(ctx context.Context, args []string) error {
	id, err := playerIDArg("show", args)
	if err != nil {
		return err
	}
	player := r.API.GetOne(ctx, id)
	if player == nil {
		return ErrRequestFailed
	}
	return writePlayer(r.Out, *player)
}

func (r Runner) add(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(r.Out)
	name := fs.String("name", "", "player name")
	breed := fs.String("breed", "", "player breed")
	status := fs.String("status", "", "player status")
	if err := fs.Parse(args); err != nil {
		return &UsageError{Msg: err.Error()}
	}
	if fs.NArg() != 0 {
		return &UsageError{Msg: "add takes only flags"}
	}

	fields := roster.Fields{Name: *name, Breed: *breed, Status: *status}
	if r.Prompter != nil {
		prompts := []struct {
			dst         *string
			message     string
			placeholder string
		}{
			{&fields.Name, "Name", "Banjo"},
			{&fields.Breed, "Breed", "Lab"},
			{&fields.Status, "Status", "field"},
		}
		for _, p := range prompts {
			if *p.dst != "" {
				continue
			}
			v, err := r.Prompter.Input(ctx, p.message, p.placeholder)
			if err != nil {
				return err
			}
			*p.dst = v
		}
	}

	body := r.API.Create(ctx, fields)
	if body == nil {
		return ErrRequestFailed
	}
	_, err := fmt.Fprintln(r.Out, string(body))
	return err
}

func (r Runner) remove(ctx context.Context, args []string) error {
	id, err := playerIDArg("rm", args)
	if err != nil {
		return err
	}
	if !r.API.Remove(ctx, id) {
		return ErrRequestFailed
	}
	_, err = fmt.Fprintf(r.Out, "Removed player #%s\n", id)
	return err
}

func (r Runner) logs(args []string) error {
	fs := flag.NewFlagSet("logs", flag.ContinueOnError)
	fs.SetOutput(r.Out)
	n := fs.Int("n", defaultLogLines, "number of lines to show (0 for all)")
	match := fs.String("match", "", "only show lines containing this text")
	if err := fs.Parse(args); err != nil {
		return &UsageError{Msg: err.Error()}
	}
	if r.LogPath == "" {
		return &UsageError{Msg: "no log file configured"}
	}
	lines, err := logtail.ReadMatching(r.LogPath, *n, *match)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(r.Out, line); err != nil {
			return err
		}
	}
	return nil
}

func playerIDArg(cmd string, args []string) (roster.PlayerID, error) {
	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		return "", &UsageError{Msg: cmd + " takes exactly one player id"}
	}
	return roster.PlayerID(strings.TrimSpace(args[0])), nil
}
