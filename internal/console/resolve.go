package console

import (
	"context"
	"sort"

	"github.com/topiclens/topiclens/internal/domain"
)

type resolveState int

const (
	resolved resolveState = iota
	// resolveNoCluster means no cluster is selected or it has no live client.
	// Terminal, but not an error.
	resolveNoCluster
	// resolveNoTopic means the user cancelled the interactive topic pick.
	resolveNoTopic
)

type resolution struct {
	state  resolveState
	client domain.AdminClient
	topic  string
}

// resolveTopic binds an admin client and a topic name. When ref is nil the
// currently selected cluster is used and the topic is picked interactively;
// both the dump and the delete flow consume the same tagged result.
func (c *Console) resolveTopic(ctx context.Context, ref *domain.TopicRef) (resolution, error) {
	cluster := c.repo.Current()
	if ref != nil {
		cluster = ref.Cluster
	}
	if cluster == "" {
		return resolution{state: resolveNoCluster}, nil
	}

	client, ok := c.repo.GetClient(cluster)
	if !ok {
		return resolution{state: resolveNoCluster}, nil
	}
	if ref != nil {
		return resolution{state: resolved, client: client, topic: ref.Topic}, nil
	}

	topics, err := client.ListTopics(ctx)
	if err != nil {
		return resolution{}, err
	}
	sort.Strings(topics)

	topic, ok := c.prompter.PickTopic(topics)
	if !ok || topic == "" {
		return resolution{state: resolveNoTopic}, nil
	}
	return resolution{state: resolved, client: client, topic: topic}, nil
}
