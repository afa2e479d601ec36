package console_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/topiclens/topiclens/internal/domain"
)

func TestDumpTopicRendersMergedRecord(t *testing.T) {
	t.Parallel()
	f := newFixture()
	f.client.Detail = &domain.Topic{ID: "orders", Partitions: 3, ReplicationFactor: 2}
	f.client.TopicCfgs = []domain.ConfigEntry{
		{Name: "retention.ms", Value: "604800000"},
		{Name: "cleanup.policy", Value: "delete"},
	}

	f.console.DumpTopic(context.Background(), &domain.TopicRef{Cluster: "c1", Topic: "orders"})

	surface := f.surfaces.Opened["Topic Details"]
	require.NotNil(t, surface)
	require.Equal(t, 1, surface.Clears)
	require.Equal(t, 1, surface.Shows)
	require.Contains(t, surface.Content, "id: orders")
	require.Contains(t, surface.Content, "partitions: 3")
	require.Contains(t, surface.Content, "replicationFactor: 2")
	require.Contains(t, surface.Content, "configs:")
	require.Contains(t, surface.Content, "retention.ms:")
	require.Contains(t, surface.Content, "cleanup.policy: delete")
	require.Empty(t, f.presenter.Errors)
}

func TestDumpTopicIsIdempotent(t *testing.T) {
	t.Parallel()
	f := newFixture()
	f.client.Detail = &domain.Topic{ID: "orders", Partitions: 3, ReplicationFactor: 2}
	f.client.TopicCfgs = []domain.ConfigEntry{
		{Name: "retention.ms", Value: "604800000"},
		{Name: "segment.bytes", Value: "1073741824"},
		{Name: "cleanup.policy", Value: "delete"},
	}
	ref := &domain.TopicRef{Cluster: "c1", Topic: "orders"}

	f.console.DumpTopic(context.Background(), ref)
	first := f.surfaces.Opened["Topic Details"].Content

	f.console.DumpTopic(context.Background(), ref)
	second := f.surfaces.Opened["Topic Details"].Content

	require.NotEmpty(t, first)
	require.Equal(t, first, second)
	require.Equal(t, 2, f.surfaces.Opened["Topic Details"].Clears)
}

func TestDumpTopicNoClusterSelected(t *testing.T) {
	t.Parallel()
	f := newFixture()
	f.repo.Cur = ""

	f.console.DumpTopic(context.Background(), nil)

	require.Equal(t, []string{"No cluster selected"}, f.presenter.Infos)
	require.Empty(t, f.surfaces.Opened)
}

func TestDumpTopicCancelledPickIsSilent(t *testing.T) {
	t.Parallel()
	f := newFixture()
	f.client.Topics = []string{"orders"}
	f.prompter.PickOK = false

	f.console.DumpTopic(context.Background(), nil)

	require.Empty(t, f.surfaces.Opened)
	require.Empty(t, f.presenter.Infos)
	require.Empty(t, f.presenter.Errors)
}

func TestDumpTopicInteractivePick(t *testing.T) {
	t.Parallel()
	f := newFixture()
	f.client.Topics = []string{"orders"}
	f.client.Detail = &domain.Topic{ID: "orders", Partitions: 1, ReplicationFactor: 1}
	f.prompter.Pick = "orders"
	f.prompter.PickOK = true

	f.console.DumpTopic(context.Background(), nil)

	require.Contains(t, f.surfaces.Opened["Topic Details"].Content, "id: orders")
}

func TestDumpTopicConfigFetchFailure(t *testing.T) {
	t.Parallel()
	f := newFixture()
	f.client.Detail = &domain.Topic{ID: "orders"}
	f.client.TopicCfgErr = errors.New("request timed out")

	f.console.DumpTopic(context.Background(), &domain.TopicRef{Cluster: "c1", Topic: "orders"})

	require.Len(t, f.presenter.Errors, 1)
	require.Contains(t, f.presenter.Errors[0], "request timed out")
	require.Empty(t, f.surfaces.Opened)
}

func TestDumpTopicListFailureIsReported(t *testing.T) {
	t.Parallel()
	f := newFixture()
	f.client.ListErr = errors.New("connection refused")

	f.console.DumpTopic(context.Background(), nil)

	require.Len(t, f.presenter.Errors, 1)
	require.Contains(t, f.presenter.Errors[0], "connection refused")
}
