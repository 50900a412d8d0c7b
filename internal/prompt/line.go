package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// MaxAttempts bounds re-asking in strict mode.
const MaxAttempts = 3

// LinePrompter reads one line per question from an io.Reader.
//
// In permissive mode (the default) exactly "y" means yes and anything else,
// including end of input, means no. In strict mode answers are trimmed and
// case-folded, y/yes/n/no are accepted, and anything else is re-asked.
//
// Reads run in a background goroutine so a cancelled context unblocks
// Confirm immediately. A read abandoned by cancellation stays pending and its
// line is handed to the next Confirm; only one read is ever in flight.
type LinePrompter struct {
	in      *bufio.Reader
	out     io.Writer
	strict  bool
	pending chan lineResult
}

type lineResult struct {
	line string
	eof  bool
	err  error
}

// NewLinePrompter returns a LinePrompter writing prompts to out.
func NewLinePrompter(in io.Reader, out io.Writer, strict bool) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out, strict: strict}
}

// Confirm implements Prompter.
func (p *LinePrompter) Confirm(ctx context.Context, q Question) (bool, error) {
	attempts := 1
	if p.strict {
		attempts = MaxAttempts
	}
	for i := 0; i < attempts; i++ {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		if _, err := fmt.Fprintf(p.out, "\n%s\n", q.Text); err != nil {
			return false, err
		}
		line, eof, err := p.readLine(ctx)
		if err != nil {
			return false, err
		}
		if !p.strict {
			return line == "y", nil
		}
		if v, ok := parseStrict(line); ok {
			return v, nil
		}
		if eof {
			return false, ErrNoInput
		}
	}

	return false, ErrInvalidAnswer
}

// readLine returns the next line without its terminator, or ctx.Err() as
// soon as ctx is cancelled.
func (p *LinePrompter) readLine(ctx context.Context) (string, bool, error) {
	if p.pending == nil {
		ch := make(chan lineResult, 1)
		p.pending = ch
		go func() {
			line, eof, err := p.read()
			ch <- lineResult{line: line, eof: eof, err: err}
		}()
	}

	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	case r := <-p.pending:
		p.pending = nil
		return r.line, r.eof, r.err
	}
}

func (p *LinePrompter) read() (string, bool, error) {
	line, err := p.in.ReadString('\n')
	eof := err == io.EOF
	if err != nil && !eof {
		return "", false, err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return line, eof, nil
}

func parseStrict(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	}

	return false, false
}
