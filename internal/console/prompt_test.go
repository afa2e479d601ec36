package console_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/topiclens/topiclens/internal/console"
	"github.com/topiclens/topiclens/internal/testutil"
)

func TestPositiveNumber(t *testing.T) {
	t.Parallel()

	valid := []string{"1", "5", "100", "0042"}
	for _, text := range valid {
		require.NoError(t, console.PositiveNumber(text), "input %q", text)
	}

	invalid := []string{"", "0", "-3", "abc", "1.5", "2a", " 5", "+"}
	for _, text := range invalid {
		err := console.PositiveNumber(text)
		require.Error(t, err, "input %q", text)
		require.Equal(t, "Must be a positive number", err.Error())
	}
}

func TestCollectRunsPromptsInOrder(t *testing.T) {
	t.Parallel()
	p := &testutil.ScriptedPrompter{Inputs: []string{"orders", "3", "2"}}

	answers, ok := console.Collect(p,
		console.Prompt{Placeholder: "Topic name"},
		console.Prompt{Placeholder: "Number of partitions", Validate: console.PositiveNumber},
		console.Prompt{Placeholder: "Replication factor", Validate: console.PositiveNumber},
	)

	require.True(t, ok)
	require.Equal(t, []string{"orders", "3", "2"}, answers)
	require.Equal(t, []string{"Topic name", "Number of partitions", "Replication factor"}, p.Placeholders)
}

func TestCollectAbortsOnCancel(t *testing.T) {
	t.Parallel()

	// Cancelled mid-sequence: no partial answers, later prompts never run.
	p := &testutil.ScriptedPrompter{Inputs: []string{"orders", ""}}
	answers, ok := console.Collect(p,
		console.Prompt{Placeholder: "first"},
		console.Prompt{Placeholder: "second"},
		console.Prompt{Placeholder: "third"},
	)
	require.False(t, ok)
	require.Nil(t, answers)
	require.Equal(t, []string{"first", "second"}, p.Placeholders)
}

func TestCollectEmptyAnswerIsCancel(t *testing.T) {
	t.Parallel()
	p := &testutil.ScriptedPrompter{}

	answers, ok := console.Collect(p, console.Prompt{Placeholder: "anything"})
	require.False(t, ok)
	require.Nil(t, answers)
}
