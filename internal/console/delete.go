package console

import (
	"context"
	"fmt"

	"github.com/topiclens/topiclens/internal/domain"
	"github.com/topiclens/topiclens/internal/utils"
)

const (
	cancelLabel = "Cancel"
	deleteLabel = "Delete"
)

// scanAutoCreate reports whether any broker advertises automatic topic
// creation. Brokers are queried strictly in order and the scan stops at the
// first hit, so later brokers are never fetched. An empty broker list means
// no risk. Best effort: per-topic overrides are not checked.
func scanAutoCreate(ctx context.Context, client domain.AdminClient) (bool, error) {
	brokers, err := client.ListBrokers(ctx)
	if err != nil {
		return false, err
	}
	for _, b := range brokers {
		entries, err := client.BrokerConfigs(ctx, b.ID)
		if err != nil {
			return false, err
		}
		for _, e := range entries {
			if e.Name == domain.ConfigAutoCreateTopics && e.Value == "true" {
				return true, nil
			}
		}
	}
	return false, nil
}

// DeleteTopic asks for confirmation and deletes a single topic. Before the
// dialog is shown every broker's configuration is scanned for
// auto.create.topics.enable so the user is warned when the topic may come
// straight back. Anything but an explicit Delete answer aborts with no side
// effects.
func (c *Console) DeleteTopic(ctx context.Context, ref *domain.TopicRef) {
	res, err := c.resolveTopic(ctx, ref)
	if err != nil {
		c.presenter.Error(fmt.Sprintf("Failed to delete topic: %v", err))
		return
	}
	switch res.state {
	case resolveNoCluster:
		c.presenter.Info(msgNoClusterSelected)
		return
	case resolveNoTopic:
		return
	}

	risk, err := scanAutoCreate(ctx, res.client)
	if err != nil {
		utils.Logger.Error("auto-create scan failed", "topic", res.topic, "err", err)
		c.presenter.Error(fmt.Sprintf("Failed to delete topic '%s': %v", res.topic, err))
		return
	}

	message := fmt.Sprintf("Are you sure you want to delete topic '%s'?", res.topic)
	if risk {
		message += " The cluster is configured with auto.create.topics.enable=true, so the topic may be recreated automatically."
	}

	choice, ok := c.prompter.ConfirmWarning(message, cancelLabel, deleteLabel)
	if !ok || choice != deleteLabel {
		return
	}

	if err := res.client.DeleteTopics(ctx, res.topic); err != nil {
		utils.Logger.Error("delete topic failed", "topic", res.topic, "err", err)
		c.presenter.Error(fmt.Sprintf("Failed to delete topic '%s': %v", res.topic, err))
		return
	}

	utils.Logger.Info("topic deleted", "topic", res.topic)
	c.explorer.Refresh()
	c.presenter.Info(fmt.Sprintf("Topic '%s' deleted", res.topic))
}
