// Package domain defines the core business entities and interfaces for topiclens.
// It includes data structures for Kafka clusters, topics, brokers and their
// configuration entries, as well as abstractions for the administrative client
// and the cluster repository.
package domain

// ConfigAutoCreateTopics is the broker setting that makes the cluster create
// topics implicitly on first reference. Its value is compared against the
// literal "true".
const ConfigAutoCreateTopics = "auto.create.topics.enable"

// Topic represents a Kafka topic with its metadata. Configs is populated
// lazily, only when the topic is dumped.
type Topic struct {
	ID                string            `json:"id" yaml:"id"`
	Partitions        int32             `json:"partitions" yaml:"partitions"`
	ReplicationFactor int16             `json:"replication_factor" yaml:"replicationFactor"`
	Configs           map[string]string `json:"configs,omitempty" yaml:"configs,omitempty"`
}

// TopicRef names a topic already bound to a cluster, typically the selection
// made in a tree view.
type TopicRef struct {
	Cluster string
	Topic   string
}

// Broker is one cluster member. Its configuration is fetched separately, on demand.
type Broker struct {
	ID   int32  `json:"id"`
	Host string `json:"host"`
	Port int32  `json:"port"`
	Rack string `json:"rack,omitempty"`
}

// ConfigEntry is a single broker- or topic-scoped configuration value.
type ConfigEntry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// CreateTopicRequest describes a topic to create. Partitions and
// ReplicationFactor are validated to be >= 1 before submission.
type CreateTopicRequest struct {
	Name              string             `json:"name"`
	Partitions        int32              `json:"partitions"`
	ReplicationFactor int16              `json:"replication_factor"`
	Configs           map[string]*string `json:"configs,omitempty"`
}

// TopicError is a per-topic creation outcome. A creation reply with no
// TopicError entries means full success.
type TopicError struct {
	Topic string
	Err   error
}
