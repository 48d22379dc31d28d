package main

import (
	"context"
	"encoding/json"
	"fmt"

	cli "github.com/urfave/cli/v3"

	"github.com/flockhq/flock/pkg/cmd"
	"github.com/flockhq/flock/pkg/log"
	"github.com/flockhq/flock/pkg/prefs"
)

func prefsCommand() *cli.Command {
	storeFlag := &cli.StringFlag{
		Name:    "store-url",
		Usage:   "Preference store URL (directory path, file:// or redis://)",
		Value:   "./prefs",
		Sources: cli.EnvVars("FLOCK_PREFS_URL"),
	}

	return &cli.Command{
		Name:  "prefs",
		Usage: "Manage local preferences",
		Commands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "Print a preference value as JSON",
				ArgsUsage: "<key>",
				Flags:     []cli.Flag{storeFlag},
				Action: func(ctx context.Context, command *cli.Command) error {
					return withPrefsStore(ctx, command, func(store prefs.Store) error {
						key := command.Args().First()
						if key == "" {
							return fmt.Errorf("preference key is required")
						}

						var value any
						if !store.Get(ctx, key, &value) {
							fmt.Println("null")

							return nil
						}

						raw, err := json.Marshal(value)
						if err != nil {
							return err
						}

						fmt.Println(string(raw))

						return nil
					})
				},
			},
			{
				Name:      "set",
				Usage:     "Store a preference value (parsed as JSON, else stored as a string)",
				ArgsUsage: "<key> <value>",
				Flags:     []cli.Flag{storeFlag},
				Action: func(ctx context.Context, command *cli.Command) error {
					return withPrefsStore(ctx, command, func(store prefs.Store) error {
						key := command.Args().Get(0)
						raw := command.Args().Get(1)

						if key == "" || raw == "" {
							return fmt.Errorf("key and value are required")
						}

						var value any
						if err := json.Unmarshal([]byte(raw), &value); err != nil {
							value = raw
						}

						return store.Set(ctx, key, value)
					})
				},
			},
			{
				Name:      "delete",
				Usage:     "Remove a preference",
				ArgsUsage: "<key>",
				Flags:     []cli.Flag{storeFlag},
				Action: func(ctx context.Context, command *cli.Command) error {
					return withPrefsStore(ctx, command, func(store prefs.Store) error {
						key := command.Args().First()
						if key == "" {
							return fmt.Errorf("preference key is required")
						}

						return store.Delete(ctx, key)
					})
				},
			},
		},
	}
}

func withPrefsStore(ctx context.Context, command *cli.Command, fn func(prefs.Store) error) error {
	log.Setup(command.String("log-level"))

	store, err := cmd.NewPrefsStore(ctx, log.WithModule("prefs"), command.String("store-url"))
	if err != nil {
		return err
	}

	defer func() { _ = store.Close() }()

	return fn(store)
}
