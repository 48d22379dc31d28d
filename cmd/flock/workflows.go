package main

import (
	"context"
	"fmt"

	cli "github.com/urfave/cli/v3"

	"github.com/flockhq/flock/pkg/models"
	"github.com/flockhq/flock/pkg/workflow"
)

func workflowsCommand() *cli.Command {
	return &cli.Command{
		Name:    "workflows",
		Aliases: []string{"w"},
		Usage:   "Manage workflow definitions",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List workflows with their trigger and step summaries",
				Action: func(ctx context.Context, command *cli.Command) error {
					workflows, err := newClient(command).Workflows(ctx)
					if err != nil {
						return err
					}

					for _, wf := range workflows {
						fmt.Printf("%s  %-8s  %s\n", wf.ID, wf.Status, wf.Name)
						fmt.Printf("    Trigger: %s\n", workflow.DescribeTrigger(wf.Trigger))
						fmt.Printf("    Steps:   %s\n", workflow.DescribeSteps(wf.Steps))
					}

					return nil
				},
			},
			{
				Name:  "create",
				Usage: "Create a draft workflow",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Usage:    "Workflow name",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "description",
						Usage: "Workflow description",
					},
				},
				Action: func(ctx context.Context, command *cli.Command) error {
					created, err := newClient(command).CreateWorkflow(ctx, &models.Workflow{
						Name:        command.String("name"),
						Description: command.String("description"),
					})
					if err != nil {
						return err
					}

					fmt.Printf("Created draft workflow %s\n", created.ID)

					return nil
				},
			},
			transitionCommand("activate", "Request activation of a workflow", models.WorkflowStatusActive),
			transitionCommand("pause", "Pause an active workflow", models.WorkflowStatusPaused),
			{
				Name:      "delete",
				Usage:     "Delete a workflow",
				ArgsUsage: "<workflow-id>",
				Action: func(ctx context.Context, command *cli.Command) error {
					id := command.Args().First()
					if id == "" {
						return fmt.Errorf("workflow ID is required")
					}

					if err := newClient(command).DeleteWorkflow(ctx, id); err != nil {
						return err
					}

					fmt.Printf("Deleted workflow %s\n", id)

					return nil
				},
			},
		},
	}
}

func transitionCommand(name, usage string, to models.WorkflowStatus) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "<workflow-id>",
		Action: func(ctx context.Context, command *cli.Command) error {
			id := command.Args().First()
			if id == "" {
				return fmt.Errorf("workflow ID is required")
			}

			confirmed, err := newClient(command).RequestStatusTransition(ctx, id, to)
			if err != nil {
				return err
			}

			fmt.Printf("Workflow %s is now %s\n", confirmed.ID, confirmed.Status)

			return nil
		},
	}
}
