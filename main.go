package main

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/topiclens/topiclens/cmd"
	"github.com/topiclens/topiclens/internal/application"
	"github.com/topiclens/topiclens/internal/infrastructure/kafka"
	"github.com/topiclens/topiclens/internal/infrastructure/repository"
	"github.com/topiclens/topiclens/internal/utils"
)

func findConfigPath() string {
	names := []string{"config.yml", "config.yaml"}
	candidates := []string{}

	for _, n := range names {
		candidates = append(candidates, "./"+n)
	}

	home, _ := os.UserHomeDir()
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		for _, n := range names {
			candidates = append(candidates, filepath.Join(xdg, "topiclens", n))
		}
	}
	if home != "" {
		for _, n := range names {
			candidates = append(candidates, filepath.Join(home, ".config", "topiclens", n))
		}
	}
	for _, n := range names {
		candidates = append(candidates, filepath.Join("/etc", "topiclens", n))
	}

	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	createPath := "./config.yml"
	initial := []byte("# topiclens configuration\nclusters: []\n")
	if err := os.WriteFile(createPath, initial, 0644); err == nil {
		return createPath
	}
	return candidates[0]
}

func main() {
	godotenv.Load()
	utils.InitLogger()

	configPath := os.Getenv("TOPICLENS_CONFIG")
	if configPath == "" {
		configPath = findConfigPath()
	}

	factory := kafka.NewFactory()
	repo := repository.NewClusterRepository(configPath, factory)
	defer repo.Close()

	if err := repo.LoadFromFile(); err != nil {
		utils.Logger.Warn("failed to load config file", "path", configPath, "err", err)
	} else {
		utils.Logger.Info("configuration loaded", "path", configPath)
	}
	if err := repo.Watch(); err != nil {
		utils.Logger.Error("failed to start config watcher", "err", err)
	}

	clusterService := application.NewClusterService(repo)
	topicService := application.NewTopicService(clusterService)

	cmd.StartConsole(clusterService, topicService, repo)
}
