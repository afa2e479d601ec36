package term

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/topiclens/topiclens/internal/console"
)

func TestInputRepromptsUntilValid(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	term := New(strings.NewReader("abc\n0\n5\n"), &out)

	text, ok := term.Input("Number of partitions", console.PositiveNumber)
	require.True(t, ok)
	require.Equal(t, "5", text)
	require.Contains(t, out.String(), "Must be a positive number")
}

func TestInputEmptyLineCancels(t *testing.T) {
	t.Parallel()
	term := New(strings.NewReader("\n"), &bytes.Buffer{})

	_, ok := term.Input("Topic name", nil)
	require.False(t, ok)
}

func TestInputEOFCancels(t *testing.T) {
	t.Parallel()
	term := New(strings.NewReader(""), &bytes.Buffer{})

	_, ok := term.Input("Topic name", nil)
	require.False(t, ok)
}

func TestPickTopicByNumberAndName(t *testing.T) {
	t.Parallel()
	topics := []string{"orders", "payments"}

	term := New(strings.NewReader("2\n"), &bytes.Buffer{})
	topic, ok := term.PickTopic(topics)
	require.True(t, ok)
	require.Equal(t, "payments", topic)

	term = New(strings.NewReader("orders\n"), &bytes.Buffer{})
	topic, ok = term.PickTopic(topics)
	require.True(t, ok)
	require.Equal(t, "orders", topic)

	term = New(strings.NewReader("7\n"), &bytes.Buffer{})
	_, ok = term.PickTopic(topics)
	require.False(t, ok)
}

func TestPickTopicEmptyListCancels(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	term := New(strings.NewReader("1\n"), &out)

	_, ok := term.PickTopic(nil)
	require.False(t, ok)
	require.Contains(t, out.String(), "No topics found")
}

func TestConfirmWarning(t *testing.T) {
	t.Parallel()

	term := New(strings.NewReader("Delete\n"), &bytes.Buffer{})
	choice, ok := term.ConfirmWarning("sure?", "Cancel", "Delete")
	require.True(t, ok)
	require.Equal(t, "Delete", choice)

	term = New(strings.NewReader("1\n"), &bytes.Buffer{})
	choice, ok = term.ConfirmWarning("sure?", "Cancel", "Delete")
	require.True(t, ok)
	require.Equal(t, "Cancel", choice)

	term = New(strings.NewReader("whatever\n"), &bytes.Buffer{})
	_, ok = term.ConfirmWarning("sure?", "Cancel", "Delete")
	require.False(t, ok)

	term = New(strings.NewReader("\n"), &bytes.Buffer{})
	_, ok = term.ConfirmWarning("sure?", "Cancel", "Delete")
	require.False(t, ok)
}

func TestSurfaceClearAppendShow(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	term := New(strings.NewReader(""), &out)

	s := term.Surface("Topic Details")
	s.Append("stale")
	s.Clear()
	s.Append("id: orders\n")
	s.Show()

	rendered := out.String()
	require.Contains(t, rendered, "Topic Details")
	require.Contains(t, rendered, "id: orders")
	require.NotContains(t, rendered, "stale")
}
