package domain

import (
	"context"

	"github.com/topiclens/topiclens/internal/config"
)

// ClusterRepository defines operations for managing cluster configurations
// and the clients built from them. The currently selected cluster is owned
// here; command flows only read it.
type ClusterRepository interface {
	Save(cfg config.ClusterConfig) error
	Delete(name string) error
	FindByName(name string) (config.ClusterConfig, bool)
	FindAll() []config.ClusterConfig
	Current() string
	SetCurrent(name string) error
	Watch() error
	GetClient(name string) (AdminClient, bool)
	Close()
}

// ClientFactory creates admin clients from configuration.
type ClientFactory interface {
	CreateClient(cfg config.ClusterConfig) (AdminClient, error)
}

// AdminClient defines the administrative operations required from a Kafka
// cluster. CreateTopic reports per-topic outcomes; an empty slice is full
// success. DeleteTopics accepts multiple names even though the interactive
// flows only ever submit one.
type AdminClient interface {
	IsHealthy() bool
	ListTopics(ctx context.Context) ([]string, error)
	DescribeTopic(ctx context.Context, name string) (*Topic, error)
	CreateTopic(ctx context.Context, req CreateTopicRequest) ([]TopicError, error)
	DeleteTopics(ctx context.Context, names ...string) error
	ListBrokers(ctx context.Context) ([]Broker, error)
	BrokerConfigs(ctx context.Context, brokerID int32) ([]ConfigEntry, error)
	TopicConfigs(ctx context.Context, name string) ([]ConfigEntry, error)
	Close()
}
