package kafka

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/twmb/franz-go/pkg/kadm"

	"github.com/topiclens/topiclens/internal/domain"
)

var errTopicNotFound = errors.New("topic not found")

type Admin struct {
	client *kadm.Client
}

// NewAdmin creates a new Admin
func NewAdmin(client *kadm.Client) *Admin {
	return &Admin{client: client}
}

// BrokerMetadata returns broker metadata (used for health checks)
func (a *Admin) BrokerMetadata(ctx context.Context) (kadm.Metadata, error) {
	return a.client.BrokerMetadata(ctx)
}

// ListTopics returns the non-internal topic names, sorted.
func (a *Admin) ListTopics(ctx context.Context) ([]string, error) {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	details, err := a.client.ListTopics(cctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(details))
	for name := range details {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// DescribeTopic returns a topic's identity fields: partition count and
// replication factor. Configs are fetched separately via TopicConfigs.
func (a *Admin) DescribeTopic(ctx context.Context, name string) (*domain.Topic, error) {
	cctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	details, err := a.client.ListTopics(cctx, name)
	if err != nil {
		return nil, err
	}
	detail, ok := details[name]
	if !ok {
		return nil, errTopicNotFound
	}

	replicationFactor := 0
	if len(detail.Partitions) > 0 {
		replicationFactor = len(detail.Partitions[0].Replicas)
	}

	return &domain.Topic{
		ID:                name,
		Partitions:        int32(len(detail.Partitions)),
		ReplicationFactor: int16(replicationFactor),
	}, nil
}

// CreateTopic creates a single topic and reports per-topic outcomes; an empty
// slice means the cluster accepted the topic.
func (a *Admin) CreateTopic(ctx context.Context, req domain.CreateTopicRequest) ([]domain.TopicError, error) {
	cctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := a.client.CreateTopics(cctx, req.Partitions, req.ReplicationFactor, req.Configs, req.Name)
	if err != nil {
		return nil, err
	}

	var failed []domain.TopicError
	for _, r := range resp {
		if r.Err != nil {
			failed = append(failed, domain.TopicError{Topic: r.Topic, Err: r.Err})
		}
	}
	return failed, nil
}

// DeleteTopics deletes the given topics.
func (a *Admin) DeleteTopics(ctx context.Context, names ...string) error {
	cctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := a.client.DeleteTopics(cctx, names...)
	if err != nil {
		return err
	}
	for _, r := range resp {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}

// ListBrokers returns the cluster members ordered by node id.
func (a *Admin) ListBrokers(ctx context.Context) ([]domain.Broker, error) {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	meta, err := a.client.BrokerMetadata(cctx)
	if err != nil {
		return nil, err
	}

	brokers := make([]domain.Broker, 0, len(meta.Brokers))
	for _, b := range meta.Brokers {
		rack := ""
		if b.Rack != nil {
			rack = *b.Rack
		}
		brokers = append(brokers, domain.Broker{
			ID:   b.NodeID,
			Host: b.Host,
			Port: b.Port,
			Rack: rack,
		})
	}
	sort.Slice(brokers, func(i, j int) bool { return brokers[i].ID < brokers[j].ID })
	return brokers, nil
}

// BrokerConfigs fetches one broker's configuration entries.
func (a *Admin) BrokerConfigs(ctx context.Context, brokerID int32) ([]domain.ConfigEntry, error) {
	cctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	resources, err := a.client.DescribeBrokerConfigs(cctx, brokerID)
	if err != nil {
		return nil, err
	}
	return flattenConfigs(resources)
}

// TopicConfigs fetches one topic's configuration entries.
func (a *Admin) TopicConfigs(ctx context.Context, name string) ([]domain.ConfigEntry, error) {
	cctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	resources, err := a.client.DescribeTopicConfigs(cctx, name)
	if err != nil {
		return nil, err
	}
	return flattenConfigs(resources)
}

func flattenConfigs(resources kadm.ResourceConfigs) ([]domain.ConfigEntry, error) {
	var entries []domain.ConfigEntry
	for _, res := range resources {
		if res.Err != nil {
			return nil, res.Err
		}
		for _, cfg := range res.Configs {
			if cfg.Value == nil {
				continue
			}
			entries = append(entries, domain.ConfigEntry{Name: cfg.Key, Value: *cfg.Value})
		}
	}
	return entries, nil
}
