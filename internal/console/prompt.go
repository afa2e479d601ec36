package console

import (
	"errors"
	"strconv"
)

// Prompt is one step of a sequential input flow.
type Prompt struct {
	Placeholder string
	Validate    func(text string) error
}

// Collect runs prompts strictly in order. It returns ok=false as soon as any
// prompt is cancelled or answered empty; callers never see partial answers.
func Collect(p Prompter, prompts ...Prompt) ([]string, bool) {
	answers := make([]string, 0, len(prompts))
	for _, pr := range prompts {
		text, ok := p.Input(pr.Placeholder, pr.Validate)
		if !ok || text == "" {
			return nil, false
		}
		answers = append(answers, text)
	}
	return answers, true
}

var errNotPositive = errors.New("Must be a positive number")

// PositiveNumber accepts base-10 integers greater than or equal to one.
// Everything else, including empty text, is rejected.
func PositiveNumber(text string) error {
	n, err := strconv.Atoi(text)
	if err != nil || n < 1 {
		return errNotPositive
	}
	return nil
}
