// Package prompt implements the synchronous question/answer session the quiz
// runs on. A Session reads answers from any io.Reader and writes prompts to
// any io.Writer, so tests drive it with scripted input instead of a terminal.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Session is a blocking prompt/response loop over a reader/writer pair.
type Session struct {
	in  *bufio.Scanner
	out io.Writer
	eof bool
}

// NewSession creates a Session reading answers from r and writing prompts to w.
func NewSession(r io.Reader, w io.Writer) *Session {
	return &Session{in: bufio.NewScanner(r), out: w}
}

// Printf writes formatted text to the session output.
func (s *Session) Printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// Exhausted reports whether the input has run out. Collection loops stop
// instead of re-prompting forever once this is true.
func (s *Session) Exhausted() bool {
	return s.eof
}

// Ask prints the prompt and returns the next line of input, trimmed.
// Returns "" once the input is exhausted.
func (s *Session) Ask(prompt string) string {
	fmt.Fprintf(s.out, "%s ", prompt)
	if !s.in.Scan() {
		s.eof = true
		return ""
	}
	return strings.TrimSpace(s.in.Text())
}

// Choose presents a numbered menu and returns the text of the selected
// option, not its index. Non-numeric or out-of-range input prints a
// corrective message and re-prompts; there is no retry cap.
func (s *Session) Choose(prompt string, options []string) string {
	fmt.Fprintln(s.out, prompt)
	for i, option := range options {
		fmt.Fprintf(s.out, "  %d. %s\n", i+1, option)
	}

	for {
		answer := s.Ask("\nEnter the number of your choice:")
		if s.eof {
			return ""
		}
		n, err := strconv.Atoi(answer)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid input. Please enter a number.")
			continue
		}
		if n < 1 || n > len(options) {
			fmt.Fprintf(s.out, "Invalid choice. Please enter a number between 1 and %d.\n", len(options))
			continue
		}
		return options[n-1]
	}
}

// Collect gathers free-text entries until the user types "done" (any case).
// The terminator is never included in the result; an empty list is valid.
func (s *Session) Collect(prompt, itemName string) []string {
	fmt.Fprintln(s.out, prompt)
	items := []string{}
	for {
		item := s.Ask(fmt.Sprintf("Enter a %s (or type 'done' to finish):", itemName))
		if s.eof || strings.EqualFold(item, "done") {
			return items
		}
		items = append(items, item)
	}
}
