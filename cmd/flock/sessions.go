package main

import (
	"context"
	"fmt"

	cli "github.com/urfave/cli/v3"

	"github.com/flockhq/flock/pkg/dates"
	"github.com/flockhq/flock/pkg/models"
)

func sessionsCommand() *cli.Command {
	return &cli.Command{
		Name:    "sessions",
		Aliases: []string{"s"},
		Usage:   "Manage sessions",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List sessions with display-friendly dates",
				Action: func(ctx context.Context, command *cli.Command) error {
					sessions, err := newClient(command).Sessions(ctx)
					if err != nil {
						return err
					}

					for _, session := range sessions {
						when := dates.FormatForDisplay(session.StartsAt.UTCTime, true)
						fmt.Printf("%s  %-24s  %s\n", session.ID, when, session.Title)
					}

					return nil
				},
			},
			{
				Name:  "create",
				Usage: "Schedule a session",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "title",
						Usage:    "Session title",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "at",
						Usage:    "Wall-clock start time (YYYY-MM-DDTHH:mm, local timezone)",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "group",
						Usage: "Group ID",
					},
					&cli.IntFlag{
						Name:  "duration",
						Usage: "Duration in minutes",
						Value: 60,
					},
				},
				Action: func(ctx context.Context, command *cli.Command) error {
					startsAt, ok := dates.Local.LocalDateTimeFromWallClock(command.String("at"))
					if !ok {
						return fmt.Errorf("invalid start time %q", command.String("at"))
					}

					result, err := newClient(command).CreateSession(ctx, &models.Session{
						Title:           command.String("title"),
						GroupID:         command.String("group"),
						StartsAt:        startsAt,
						DurationMinutes: command.Int("duration"),
					})
					if err != nil {
						return err
					}

					if created, ok := result.Created(); ok {
						fmt.Printf("Created session %s at %s\n", created.ID,
							dates.FormatForDisplay(created.StartsAt.UTCTime, true))
					}

					return nil
				},
			},
		},
	}
}
