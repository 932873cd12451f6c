package jstype

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
)

const (
	prompt     = "> "
	contPrompt = "...> "
)

// session buffers input lines until they form a complete schema document.
type session struct {
	options *Options
	buf     strings.Builder
}

// REPL reads schemas from the terminal and prints their types. A schema may span
// many lines, input is buffered until its brackets are balanced.
func REPL(opts ...Option) error {
	rl, err := readline.New(prompt)
	if err != nil {
		return err
	}
	defer func() { _ = rl.Close() }()
	sess := &session{options: buildOptions(opts)}
	for {
		src, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if sess.pending() {
					rl.SetPrompt(prompt)
					sess.reset()
					fmt.Fprint(os.Stderr, "Press ctrl-c again to quit.\n")
					continue
				}
				break
			}
			if errors.Is(err, io.EOF) {
				break
			}
			fmt.Fprintln(os.Stderr, err)
			continue
		}

		res, done, err := sess.feed(src)
		if !done {
			rl.SetPrompt(contPrompt)
			continue
		}
		rl.SetPrompt(prompt)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		} else if res != "" {
			fmt.Fprintln(os.Stderr, res)
		}
	}
	return nil
}

// feed adds a line to the buffer. When the buffer holds a complete document it is
// transformed and the buffer is cleared. done is false while more input is needed.
func (s *session) feed(line string) (string, bool, error) {
	s.buf.WriteString(line)
	s.buf.WriteByte('\n')
	src := s.buf.String()
	if strings.TrimSpace(src) == "" {
		s.reset()
		return "", true, nil
	}
	if incomplete(src) {
		return "", false, nil
	}
	s.reset()
	doc, err := parseSource("<repl>", src, s.options)
	if err != nil {
		return "", true, err
	}
	return s.options.walker().Walk(doc).String(), true, nil
}

func (s *session) pending() bool { return s.buf.Len() > 0 }

func (s *session) reset() { s.buf.Reset() }

// incomplete reports whether src has unclosed brackets or an unterminated string.
func incomplete(src string) bool {
	depth := 0
	inString, escaped := false, false
	for _, ch := range src {
		switch {
		case escaped:
			escaped = false
		case inString:
			if ch == '\\' {
				escaped = true
			} else if ch == '"' {
				inString = false
			}
		case ch == '"':
			inString = true
		case ch == '{' || ch == '[':
			depth++
		case ch == '}' || ch == ']':
			depth--
		}
	}
	return inString || depth > 0
}
