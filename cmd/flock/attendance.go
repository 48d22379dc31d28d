package main

import (
	"context"
	"fmt"

	cli "github.com/urfave/cli/v3"

	"github.com/flockhq/flock/pkg/models"
)

func attendanceCommand() *cli.Command {
	return &cli.Command{
		Name:    "attendance",
		Aliases: []string{"a"},
		Usage:   "View and record attendance",
		Commands: []*cli.Command{
			{
				Name:      "list",
				Usage:     "List attendance records for a session",
				ArgsUsage: "<session-id>",
				Action: func(ctx context.Context, command *cli.Command) error {
					sessionID := command.Args().First()
					if sessionID == "" {
						return fmt.Errorf("session ID is required")
					}

					records, err := newClient(command).Attendance(ctx, sessionID)
					if err != nil {
						return err
					}

					for _, record := range records {
						fmt.Printf("%s  %s\n", record.MemberID, record.Status)
					}

					return nil
				},
			},
			{
				Name:  "mark",
				Usage: "Record a member's attendance for a session",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "session",
						Usage:    "Session ID",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "member",
						Usage:    "Member ID",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "status",
						Usage: "Attendance status (present, absent, late, excused)",
						Value: "present",
					},
				},
				Action: func(ctx context.Context, command *cli.Command) error {
					record, err := newClient(command).MarkAttendance(ctx,
						command.String("session"),
						command.String("member"),
						models.AttendanceStatus(command.String("status")),
					)
					if err != nil {
						return err
					}

					fmt.Printf("Marked %s as %s\n", record.MemberID, record.Status)

					return nil
				},
			},
		},
	}
}
