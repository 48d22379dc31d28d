// Package main provides the flock CLI for driving a backend instance:
// workflow management, session scheduling, attendance check-in and
// local preferences.
package main

import (
	"context"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"

	"github.com/flockhq/flock/pkg/client"
	"github.com/flockhq/flock/pkg/log"
)

func main() {
	command := &cli.Command{
		Name:                  "flock",
		Usage:                 "Manage workflows, sessions and attendance",
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "api-url",
				Usage:   "Base URL of the backend API",
				Value:   "http://localhost:9091",
				Sources: cli.EnvVars("FLOCK_API_URL"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "warn",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Commands: []*cli.Command{
			workflowsCommand(),
			sessionsCommand(),
			attendanceCommand(),
			prefsCommand(),
		},
	}

	if err := command.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newClient(command *cli.Command) *client.Client {
	log.Setup(command.String("log-level"))

	return client.New(command.String("api-url"),
		client.WithLogger(log.WithModule("client")))
}
