package console

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/topiclens/topiclens/internal/domain"
	"github.com/topiclens/topiclens/internal/utils"
)

const dumpSurfaceName = "Topic Details"

// DumpTopic renders a topic's identity and configuration as YAML on the
// "Topic Details" surface, clearing any previous content first. When ref is
// nil the topic is resolved interactively from the current cluster; a
// cancelled pick is a silent no-op.
func (c *Console) DumpTopic(ctx context.Context, ref *domain.TopicRef) {
	res, err := c.resolveTopic(ctx, ref)
	if err != nil {
		c.presenter.Error(fmt.Sprintf("Failed to dump topic: %v", err))
		return
	}
	switch res.state {
	case resolveNoCluster:
		c.presenter.Info(msgNoClusterSelected)
		return
	case resolveNoTopic:
		return
	}

	topic, err := res.client.DescribeTopic(ctx, res.topic)
	if err != nil {
		utils.Logger.Error("describe topic failed", "topic", res.topic, "err", err)
		c.presenter.Error(fmt.Sprintf("Failed to dump topic '%s': %v", res.topic, err))
		return
	}

	entries, err := res.client.TopicConfigs(ctx, res.topic)
	if err != nil {
		utils.Logger.Error("fetch topic configs failed", "topic", res.topic, "err", err)
		c.presenter.Error(fmt.Sprintf("Failed to dump topic '%s': %v", res.topic, err))
		return
	}

	configs := make(map[string]string, len(entries))
	for _, e := range entries {
		configs[e.Name] = e.Value
	}
	topic.Configs = configs

	// yaml.v3 sorts map keys, so identical inputs render byte-identically.
	rendered, err := yaml.Marshal(topic)
	if err != nil {
		c.presenter.Error(fmt.Sprintf("Failed to dump topic '%s': %v", res.topic, err))
		return
	}

	surface := c.surfaces.Surface(dumpSurfaceName)
	surface.Clear()
	surface.Append(string(rendered))
	surface.Show()
}
