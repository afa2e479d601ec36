// Package repository persists cluster configurations to a YAML file and keeps
// one live admin client per configured cluster, reconciling the client set
// when the file changes on disk.
package repository

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/topiclens/topiclens/internal/application"
	"github.com/topiclens/topiclens/internal/config"
	"github.com/topiclens/topiclens/internal/domain"
	"github.com/topiclens/topiclens/internal/utils"
)

// ClusterRepository manages cluster configurations and their clients.
type ClusterRepository struct {
	mu         sync.RWMutex
	clients    map[string]domain.AdminClient
	configData config.FileConfig
	configPath string
	watcher    *fsnotify.Watcher
	factory    domain.ClientFactory
}

// NewClusterRepository creates a new cluster repository
func NewClusterRepository(configPath string, factory domain.ClientFactory) *ClusterRepository {
	return &ClusterRepository{
		clients:    make(map[string]domain.AdminClient),
		configPath: configPath,
		factory:    factory,
	}
}

// LoadFromFile loads configuration from file
func (r *ClusterRepository) LoadFromFile() error {
	cfg, err := config.ReadConfig(r.configPath)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.configData = cfg
	r.mu.Unlock()

	return r.reconcile(cfg)
}

// reconcile adds, replaces and removes clients to match the given config.
func (r *ClusterRepository) reconcile(cfg config.FileConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing := make(map[string]struct{})
	for _, c := range cfg.Clusters {
		existing[c.Name] = struct{}{}
		if _, ok := r.clients[c.Name]; ok {
			continue
		}
		client, err := r.factory.CreateClient(c)
		if err != nil {
			utils.Logger.Error("create client failed", "cluster", c.Name, "err", err)
			continue
		}
		r.clients[c.Name] = client
	}

	for name, client := range r.clients {
		if _, ok := existing[name]; !ok {
			client.Close()
			delete(r.clients, name)
		}
	}
	return nil
}

// Save persists a cluster configuration and (re)creates its client.
func (r *ClusterRepository) Save(cfg config.ClusterConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	client, err := r.factory.CreateClient(cfg)
	if err != nil {
		return err
	}

	if old, ok := r.clients[cfg.Name]; ok {
		old.Close()
	}
	r.clients[cfg.Name] = client

	found := false
	for i := range r.configData.Clusters {
		if r.configData.Clusters[i].Name == cfg.Name {
			r.configData.Clusters[i] = cfg
			found = true
			break
		}
	}
	if !found {
		r.configData.Clusters = append(r.configData.Clusters, cfg)
	}

	return r.writeToFile()
}

// Delete removes a cluster configuration by name
func (r *ClusterRepository) Delete(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	client, ok := r.clients[name]
	if !ok {
		return application.ErrClusterNotFound
	}
	client.Close()
	delete(r.clients, name)

	idx := -1
	for i := range r.configData.Clusters {
		if r.configData.Clusters[i].Name == name {
			idx = i
			break
		}
	}
	if idx >= 0 {
		r.configData.Clusters = append(r.configData.Clusters[:idx], r.configData.Clusters[idx+1:]...)
	}
	if r.configData.Current == name {
		r.configData.Current = ""
	}

	return r.writeToFile()
}

// FindByName retrieves a cluster configuration by name
func (r *ClusterRepository) FindByName(name string) (config.ClusterConfig, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.configData.Clusters {
		if c.Name == name {
			return c, true
		}
	}
	return config.ClusterConfig{}, false
}

// FindAll retrieves all cluster configurations
func (r *ClusterRepository) FindAll() []config.ClusterConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]config.ClusterConfig, len(r.configData.Clusters))
	copy(out, r.configData.Clusters)
	return out
}

// Current returns the name of the currently selected cluster.
func (r *ClusterRepository) Current() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.configData.Current
}

// SetCurrent selects a cluster and persists the selection.
func (r *ClusterRepository) SetCurrent(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.configData.Current = name
	return r.writeToFile()
}

// GetClient returns the admin client for the given cluster name
func (r *ClusterRepository) GetClient(name string) (domain.AdminClient, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, ok := r.clients[name]
	return client, ok
}

// Watch sets a fsnotify watcher on the file for hot reload
func (r *ClusterRepository) Watch() error {
	abs, err := filepath.Abs(r.configPath)
	if err != nil {
		return err
	}
	dir := filepath.Dir(abs)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return err
	}
	r.watcher = watcher

	go func() {
		for ev := range watcher.Events {
			if ev.Name != abs {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			utils.Logger.Info("config file changed", "path", ev.Name)
			if err := r.LoadFromFile(); err != nil {
				utils.Logger.Error("failed to reload config", "err", err)
			}
		}
	}()
	return nil
}

// Close stops the watcher and closes every client.
func (r *ClusterRepository) Close() {
	if r.watcher != nil {
		r.watcher.Close()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for name, client := range r.clients {
		client.Close()
		delete(r.clients, name)
	}
}

// writeToFile persists the in-memory config. Callers hold the lock.
func (r *ClusterRepository) writeToFile() error {
	return config.WriteConfig(r.configPath, r.configData)
}
