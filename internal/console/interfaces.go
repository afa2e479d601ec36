// Package console implements the interactive topic-lifecycle flows: guided
// topic creation, topic metadata dumps and the topic-deletion safety workflow.
// The front end (prompts, dialogs, output surfaces, tree view) is abstracted
// behind small interfaces so the flows never depend on a concrete UI.
package console

// Prompter collects user input. Every method reports ok=false when the user
// cancelled instead of answering.
type Prompter interface {
	// Input shows a single text prompt. The validator, when non-nil, is a pure
	// synchronous function returning an error for invalid text; the front end
	// surfaces it inline and keeps prompting. An empty answer counts as cancel.
	Input(placeholder string, validate func(text string) error) (string, bool)

	// PickTopic lets the user choose one topic out of the given names.
	PickTopic(topics []string) (string, bool)

	// ConfirmWarning shows a warning dialog with the given button labels and
	// returns the chosen label, or ok=false when the dialog was dismissed.
	ConfirmWarning(message string, labels ...string) (string, bool)
}

// Presenter displays fire-and-forget informational and error messages.
type Presenter interface {
	Info(text string)
	Error(text string)
}

// Surface is a named output area for rendered text.
type Surface interface {
	Clear()
	Append(text string)
	Show()
}

// Surfaces opens output surfaces by name, creating them on first use.
type Surfaces interface {
	Surface(name string) Surface
}

// Explorer is the cluster/topic tree view. Refresh is fire-and-forget and
// requires no acknowledgment.
type Explorer interface {
	Refresh()
}
