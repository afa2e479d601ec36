// Package cmd provides command implementations for topiclens. StartConsole
// runs the interactive console and, when configured, serves the HTTP API and
// the WebSocket refresh hub in the background.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	httpserver "github.com/topiclens/topiclens/internal/adapters/http"
	"github.com/topiclens/topiclens/internal/adapters/term"
	"github.com/topiclens/topiclens/internal/application"
	"github.com/topiclens/topiclens/internal/console"
	"github.com/topiclens/topiclens/internal/domain"
	"github.com/topiclens/topiclens/internal/utils"
)

const helpText = `Commands:
  clusters          list configured clusters
  use <cluster>     select the current cluster
  topics            list topics on the current cluster
  create            create a topic on the current cluster
  dump [topic]      dump a topic's metadata and configs
  delete [topic]    delete a topic (asks for confirmation)
  help              show this help
  quit              exit
`

// StartConsole wires the terminal front end to the console flows and runs the
// read-eval loop until the user quits.
func StartConsole(clusterService *application.ClusterService, topicService *application.TopicService, repo domain.ClusterRepository) {
	hub := httpserver.NewHub()
	if addr := os.Getenv("TOPICLENS_HTTP_ADDR"); addr != "" {
		srv := httpserver.New(clusterService, topicService, hub)
		go func() {
			if err := srv.Run(addr); err != nil {
				utils.Logger.Error("http server stopped", "err", err)
			}
		}()
	}

	terminal := term.New(os.Stdin, os.Stdout)
	con := console.New(repo, terminal, terminal, terminal, hub)
	ctx := context.Background()

	fmt.Println("topiclens - type 'help' for commands")
	for {
		line, ok := terminal.ReadLine(repo.Current() + "> ")
		if !ok {
			return
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "clusters":
			for _, c := range clusterService.ListClusters() {
				marker := " "
				if c.Current {
					marker = "*"
				}
				fmt.Printf("%s %s (%s) %s\n", marker, c.Name, c.AuthType, strings.Join(c.Brokers, ","))
			}
		case "use":
			if len(fields) < 2 {
				fmt.Println("usage: use <cluster>")
				continue
			}
			if err := clusterService.SelectCluster(fields[1]); err != nil {
				fmt.Println(err)
			}
		case "topics":
			topics, err := topicService.ListTopics(ctx, repo.Current())
			if err != nil {
				fmt.Println(err)
				continue
			}
			for _, topic := range topics {
				fmt.Println(topic)
			}
		case "create":
			con.CreateTopic(ctx, repo.Current())
		case "dump":
			con.DumpTopic(ctx, topicRef(repo.Current(), fields))
		case "delete":
			con.DeleteTopic(ctx, topicRef(repo.Current(), fields))
		case "help":
			fmt.Print(helpText)
		case "quit", "exit":
			return
		default:
			fmt.Printf("unknown command %q, type 'help'\n", fields[0])
		}
	}
}

// topicRef builds a bound topic reference from a command argument, or nil so
// the flow resolves the topic interactively.
func topicRef(cluster string, fields []string) *domain.TopicRef {
	if len(fields) < 2 {
		return nil
	}
	return &domain.TopicRef{Cluster: cluster, Topic: fields[1]}
}

