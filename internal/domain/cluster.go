package domain

// Cluster represents a Kafka cluster with its metadata
type Cluster struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Brokers  []string `json:"brokers"`
	IsOnline bool     `json:"is_online"`
	AuthType string   `json:"auth_type"`
	Current  bool     `json:"current"`
}
