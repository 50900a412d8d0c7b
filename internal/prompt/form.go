package prompt

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/huh"
)

// FormPrompter asks each question with a terminal confirm field.
// Use it only when both ends are terminals; LinePrompter covers pipes.
type FormPrompter struct {
	in         io.Reader
	out        io.Writer
	accessible bool
}

// NewFormPrompter returns a FormPrompter. accessible switches huh to its
// plain, screen-reader friendly mode.
func NewFormPrompter(in io.Reader, out io.Writer, accessible bool) *FormPrompter {
	return &FormPrompter{in: in, out: out, accessible: accessible}
}

// Confirm implements Prompter.
func (p *FormPrompter) Confirm(ctx context.Context, q Question) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var answer bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(q.Text).
				Affirmative("Yes").
				Negative("No").
				Value(&answer),
		),
	).
		WithInput(p.in).
		WithOutput(p.out).
		WithAccessible(p.accessible)

	if err := form.RunWithContext(ctx); err != nil {
		return false, formError(err)
	}

	return answer, nil
}

// formError maps a user abort (Ctrl-C / Esc in the form) to context.Canceled
// so callers handle it like a signal.
func formError(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return context.Canceled
	}

	return err
}

var (
	_ Prompter = (*FormPrompter)(nil)
	_ Prompter = (*LinePrompter)(nil)
)
