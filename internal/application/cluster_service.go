package application

import (
	"github.com/topiclens/topiclens/internal/config"
	"github.com/topiclens/topiclens/internal/domain"
	"github.com/topiclens/topiclens/internal/utils"
)

// ClusterService provides operations related to cluster management.
type ClusterService struct {
	repo domain.ClusterRepository
}

// NewClusterService creates a new cluster service.
func NewClusterService(repo domain.ClusterRepository) *ClusterService {
	return &ClusterService{repo: repo}
}

func (s *ClusterService) getRepo() domain.ClusterRepository {
	return s.repo
}

// ListClusters lists all clusters with their auth type, online state and
// whether they are the current selection.
func (s *ClusterService) ListClusters() []domain.Cluster {
	cfgs := s.repo.FindAll()
	current := s.repo.Current()

	out := make([]domain.Cluster, 0, len(cfgs))
	for _, cfg := range cfgs {
		cluster := domain.Cluster{
			ID:       cfg.Name,
			Name:     cfg.Name,
			Brokers:  cfg.Brokers,
			AuthType: cfg.GetAuthType(),
			Current:  cfg.Name == current,
		}
		if client, ok := s.repo.GetClient(cfg.Name); ok {
			cluster.IsOnline = client.IsHealthy()
		}
		out = append(out, cluster)
	}
	return out
}

// GetCluster retrieves a cluster configuration by name.
func (s *ClusterService) GetCluster(name string) (config.ClusterConfig, bool) {
	return s.repo.FindByName(name)
}

// AddCluster adds a new cluster configuration.
func (s *ClusterService) AddCluster(cfg config.ClusterConfig) error {
	if cfg.Name == "" || len(cfg.Brokers) == 0 {
		return ErrInvalidClusterConfig
	}
	return s.repo.Save(cfg)
}

// DeleteCluster removes a cluster configuration.
func (s *ClusterService) DeleteCluster(name string) error {
	return s.repo.Delete(name)
}

// Current returns the name of the currently selected cluster, which may be empty.
func (s *ClusterService) Current() string {
	return s.repo.Current()
}

// SelectCluster makes the named cluster the current one.
func (s *ClusterService) SelectCluster(name string) error {
	if _, ok := s.repo.FindByName(name); !ok {
		return ErrClusterNotFound
	}
	if err := s.repo.SetCurrent(name); err != nil {
		return err
	}
	utils.Logger.Info("cluster selected", "cluster", name)
	return nil
}
