package console

import (
	"context"
	"fmt"
	"strconv"

	"github.com/topiclens/topiclens/internal/domain"
	"github.com/topiclens/topiclens/internal/utils"
)

// CreateTopic walks the user through creating a topic on the given cluster:
// name, partition count and replication factor are collected in order, each
// numeric field validated before submission. Cancelling any prompt aborts
// silently. Does nothing when clusterID is empty.
func (c *Console) CreateTopic(ctx context.Context, clusterID string) {
	if clusterID == "" {
		return
	}

	answers, ok := Collect(c.prompter,
		Prompt{Placeholder: "Topic name"},
		Prompt{Placeholder: "Number of partitions", Validate: PositiveNumber},
		Prompt{Placeholder: "Replication factor", Validate: PositiveNumber},
	)
	if !ok {
		return
	}

	client, ok := c.repo.GetClient(clusterID)
	if !ok {
		c.presenter.Info(msgNoClusterSelected)
		return
	}

	name := answers[0]
	partitions, _ := strconv.Atoi(answers[1])
	replication, _ := strconv.Atoi(answers[2])

	results, err := client.CreateTopic(ctx, domain.CreateTopicRequest{
		Name:              name,
		Partitions:        int32(partitions),
		ReplicationFactor: int16(replication),
	})
	if err != nil {
		utils.Logger.Error("create topic failed", "cluster", clusterID, "topic", name, "err", err)
		c.presenter.Error(fmt.Sprintf("Failed to create topic '%s': %v", name, err))
		return
	}
	if len(results) > 0 {
		// Single-topic request: only the first outcome is inspected.
		utils.Logger.Error("create topic rejected", "cluster", clusterID, "topic", name, "err", results[0].Err)
		c.presenter.Error(fmt.Sprintf("Failed to create topic '%s': %v", name, results[0].Err))
		return
	}

	utils.Logger.Info("topic created", "cluster", clusterID, "topic", name)
	c.explorer.Refresh()
	c.presenter.Info(fmt.Sprintf("Topic '%s' created", name))
}
