package kafka

import (
	"github.com/topiclens/topiclens/internal/config"
	"github.com/topiclens/topiclens/internal/domain"
)

// Factory creates Kafka admin clients from configuration.
type Factory struct{}

// NewFactory creates a new client factory.
func NewFactory() *Factory {
	return &Factory{}
}

// CreateClient creates a new Kafka client from configuration.
func (f *Factory) CreateClient(cfg config.ClusterConfig) (domain.AdminClient, error) {
	return NewClient(cfg)
}
