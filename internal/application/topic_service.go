package application

import (
	"context"

	"github.com/topiclens/topiclens/internal/domain"
	"github.com/topiclens/topiclens/internal/utils"
)

// TopicService handles topic-related business operations.
type TopicService struct {
	clusterService *ClusterService
	repo           domain.ClusterRepository
}

// NewTopicService creates a new topic service.
func NewTopicService(clusterService *ClusterService) *TopicService {
	return &TopicService{
		clusterService: clusterService,
		repo:           clusterService.getRepo(),
	}
}

// ListTopics retrieves all topic names from a cluster.
func (s *TopicService) ListTopics(ctx context.Context, clusterName string) ([]string, error) {
	client, ok := s.resolve(clusterName)
	if !ok {
		return nil, ErrClusterNotFound
	}

	topics, err := client.ListTopics(ctx)
	if err != nil {
		utils.Logger.Error("list topics failed", "cluster", clusterName, "err", err)
		return nil, err
	}
	return topics, nil
}

// GetTopic retrieves a topic's identity fields together with its configuration.
func (s *TopicService) GetTopic(ctx context.Context, clusterName, topicName string) (*domain.Topic, error) {
	client, ok := s.resolve(clusterName)
	if !ok {
		return nil, ErrClusterNotFound
	}

	topic, err := client.DescribeTopic(ctx, topicName)
	if err != nil {
		utils.Logger.Error("describe topic failed", "cluster", clusterName, "topic", topicName, "err", err)
		return nil, err
	}

	entries, err := client.TopicConfigs(ctx, topicName)
	if err != nil {
		utils.Logger.Error("fetch topic configs failed", "cluster", clusterName, "topic", topicName, "err", err)
		return nil, err
	}
	configs := make(map[string]string, len(entries))
	for _, e := range entries {
		configs[e.Name] = e.Value
	}
	topic.Configs = configs
	return topic, nil
}

// CreateTopic creates a new topic in the cluster. A per-topic rejection from
// the cluster is surfaced as the first reported error.
func (s *TopicService) CreateTopic(ctx context.Context, clusterName string, req domain.CreateTopicRequest) error {
	if req.Name == "" {
		return ErrInvalidTopicName
	}
	if req.Partitions < 1 {
		return ErrInvalidPartitionCount
	}
	if req.ReplicationFactor < 1 {
		return ErrInvalidReplicationFactor
	}

	client, ok := s.resolve(clusterName)
	if !ok {
		return ErrClusterNotFound
	}

	results, err := client.CreateTopic(ctx, req)
	if err != nil {
		utils.Logger.Error("create topic failed", "cluster", clusterName, "topic", req.Name, "err", err)
		return err
	}
	if len(results) > 0 {
		utils.Logger.Error("create topic rejected", "cluster", clusterName, "topic", req.Name, "err", results[0].Err)
		return results[0].Err
	}

	utils.Logger.Info("topic created", "cluster", clusterName, "topic", req.Name)
	return nil
}

// DeleteTopic removes a topic from the cluster.
func (s *TopicService) DeleteTopic(ctx context.Context, clusterName, topicName string) error {
	client, ok := s.resolve(clusterName)
	if !ok {
		return ErrClusterNotFound
	}

	if err := client.DeleteTopics(ctx, topicName); err != nil {
		utils.Logger.Error("delete topic failed", "cluster", clusterName, "topic", topicName, "err", err)
		return err
	}

	utils.Logger.Info("topic deleted", "cluster", clusterName, "topic", topicName)
	return nil
}

func (s *TopicService) resolve(clusterName string) (domain.AdminClient, bool) {
	if _, ok := s.clusterService.GetCluster(clusterName); !ok {
		return nil, false
	}
	client, ok := s.repo.GetClient(clusterName)
	if !ok {
		utils.Logger.Warn("client not found", "cluster", clusterName)
		return nil, false
	}
	return client, true
}
