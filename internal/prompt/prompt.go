package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/phravins/projectgen/internal/tui"
	"golang.org/x/text/message"
)

// ErrClosed is returned by every ask once the prompter has been closed.
var ErrClosed = errors.New("prompter is closed")

// Prompter asks questions one line at a time. Each ask blocks until a full
// line is available on the input.
type Prompter struct {
	src     io.Reader
	reader  *bufio.Reader
	out     io.Writer
	report  *tui.Reporter
	printer *message.Printer
	closed  bool
}

// New creates a prompter reading from in and writing prompts to out.
// Validation messages are localized with p.
func New(in io.Reader, out io.Writer, p *message.Printer) *Prompter {
	return &Prompter{
		src:     in,
		reader:  bufio.NewReader(in),
		out:     out,
		report:  tui.NewReporter(out),
		printer: p,
	}
}

// AskText writes prompt and returns the next input line without its line
// terminator. Surrounding whitespace is preserved.
func (p *Prompter) AskText(prompt string) (string, error) {
	if p.closed {
		return "", ErrClosed
	}
	fmt.Fprint(p.out, prompt)

	line, err := p.reader.ReadString('\n')
	if err != nil {
		// A final line without a newline still counts as an answer.
		if errors.Is(err, io.EOF) && line != "" {
			return trimEOL(line), nil
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return trimEOL(line), nil
}

// AskRequiredText repeats AskText until the answer is not blank. The accepted
// answer is returned untrimmed.
func (p *Prompter) AskRequiredText(prompt, field string) (string, error) {
	for {
		answer, err := p.AskText(prompt)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(answer) != "" {
			return answer, nil
		}
		p.report.Error(p.printer.Sprintf("%s cannot be empty", field))
	}
}

// AskBoundedInt repeats AskText until the answer is an integer in [min, max].
// There is no retry limit.
func (p *Prompter) AskBoundedInt(prompt string, min, max int) (int, error) {
	for {
		answer, err := p.AskText(prompt)
		if err != nil {
			return 0, err
		}
		if n, ok := parseBounded(answer, min, max); ok {
			return n, nil
		}
		p.report.Error(p.printer.Sprintf("Please enter a number between %d and %d", min, max))
	}
}

// Close releases the input. Closing twice is a no-op.
func (p *Prompter) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	if c, ok := p.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (p *Prompter) Closed() bool { return p.closed }

func parseBounded(s string, min, max int) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < min || n > max {
		return 0, false
	}
	return n, true
}

func trimEOL(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
