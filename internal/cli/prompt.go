package cli

import (
	"context"
	"errors"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/mattn/go-isatty"
)

// ErrAborted is returned when the user interrupts a prompt.
var ErrAborted = errors.New("aborted")

// Prompter asks the user for a single line of text. It lets add be tested
// without a terminal.
type Prompter interface {
	Input(ctx context.Context, message, placeholder string) (string, error)
}

// SurveyPrompter prompts on the controlling terminal.
type SurveyPrompter struct{}

// Input implements Prompter.
func (SurveyPrompter) Input(ctx context.Context, message, placeholder string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{
		Message: message,
		Help:    "for example " + placeholder,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", ErrAborted
		}
		return "", err
	}
	return out, nil
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
