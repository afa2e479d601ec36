// Package term implements the console front-end contract on a plain
// line-oriented terminal: prompts and pickers read from stdin, messages and
// output surfaces write to stdout.
package term

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/topiclens/topiclens/internal/console"
)

// Terminal implements console.Prompter, console.Presenter and console.Surfaces.
type Terminal struct {
	in  *bufio.Scanner
	out io.Writer
}

// New creates a terminal front end reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewScanner(in), out: out}
}

// Input prompts for one line of text. An empty line cancels. Invalid text is
// rejected inline and the prompt repeats.
func (t *Terminal) Input(placeholder string, validate func(string) error) (string, bool) {
	for {
		fmt.Fprintf(t.out, "%s: ", placeholder)
		line, ok := t.readLine()
		if !ok || line == "" {
			return "", false
		}
		if validate != nil {
			if err := validate(line); err != nil {
				fmt.Fprintln(t.out, err.Error())
				continue
			}
		}
		return line, true
	}
}

// PickTopic shows a numbered topic list and reads a selection, by number or
// by exact name. An empty answer cancels.
func (t *Terminal) PickTopic(topics []string) (string, bool) {
	if len(topics) == 0 {
		fmt.Fprintln(t.out, "No topics found")
		return "", false
	}
	for i, topic := range topics {
		fmt.Fprintf(t.out, "%3d) %s\n", i+1, topic)
	}
	fmt.Fprint(t.out, "Topic: ")

	line, ok := t.readLine()
	if !ok || line == "" {
		return "", false
	}
	if n, err := strconv.Atoi(line); err == nil {
		if n < 1 || n > len(topics) {
			return "", false
		}
		return topics[n-1], true
	}
	for _, topic := range topics {
		if topic == line {
			return topic, true
		}
	}
	return "", false
}

// ConfirmWarning shows the message and its button labels and reads the chosen
// label, by number or by exact text. Anything else dismisses the dialog.
func (t *Terminal) ConfirmWarning(message string, labels ...string) (string, bool) {
	fmt.Fprintln(t.out, message)
	for i, label := range labels {
		fmt.Fprintf(t.out, "%3d) %s\n", i+1, label)
	}
	fmt.Fprint(t.out, "Choice: ")

	line, ok := t.readLine()
	if !ok || line == "" {
		return "", false
	}
	if n, err := strconv.Atoi(line); err == nil {
		if n < 1 || n > len(labels) {
			return "", false
		}
		return labels[n-1], true
	}
	for _, label := range labels {
		if strings.EqualFold(label, line) {
			return label, true
		}
	}
	return "", false
}

// Info displays an informational message.
func (t *Terminal) Info(text string) {
	fmt.Fprintln(t.out, text)
}

// Error displays an error message.
func (t *Terminal) Error(text string) {
	fmt.Fprintf(t.out, "Error: %s\n", text)
}

// Surface opens a named output surface. Content is buffered until Show.
func (t *Terminal) Surface(name string) console.Surface {
	return &surface{name: name, out: t.out}
}

type surface struct {
	name    string
	out     io.Writer
	content strings.Builder
}

func (s *surface) Clear() {
	s.content.Reset()
}

func (s *surface) Append(text string) {
	s.content.WriteString(text)
}

func (s *surface) Show() {
	fmt.Fprintf(s.out, "--- %s ---\n%s", s.name, s.content.String())
}

// ReadLine prints a prompt and reads one trimmed line. Used by the command
// loop so that it shares the terminal's input buffering.
func (t *Terminal) ReadLine(prompt string) (string, bool) {
	fmt.Fprint(t.out, prompt)
	return t.readLine()
}

func (t *Terminal) readLine() (string, bool) {
	if !t.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(t.in.Text()), true
}
