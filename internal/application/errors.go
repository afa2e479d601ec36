package application

import "errors"

var (
	// ErrClusterNotFound is returned when a cluster is not found
	ErrClusterNotFound = errors.New("cluster not found")

	// ErrInvalidClusterConfig is returned when cluster configuration is invalid
	ErrInvalidClusterConfig = errors.New("invalid cluster configuration")

	// ErrInvalidTopicName is returned when a topic name is empty
	ErrInvalidTopicName = errors.New("invalid topic name")

	// ErrInvalidPartitionCount is returned when the partition count is not positive
	ErrInvalidPartitionCount = errors.New("partition count must be positive")

	// ErrInvalidReplicationFactor is returned when the replication factor is not positive
	ErrInvalidReplicationFactor = errors.New("replication factor must be positive")
)
