package main

import (
	"context"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/tracktainment/duxmanager/cmd/app/commands"
	"github.com/tracktainment/duxmanager/internal/app"
	"github.com/tracktainment/duxmanager/internal/config"
	"github.com/tracktainment/duxmanager/internal/database"
)

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "server",
			Usage: "Start the HTTP server",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunServer(ctx, version)
			},
		},
		{
			Name:  "ensure-indexes",
			Usage: "Create the digital users collection indexes",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				coll, err := container.Collection()
				if err != nil {
					return err
				}

				return commands.RunEnsureIndexes(
					ctx,
					func(ctx context.Context) ([]string, error) {
						return database.EnsureIndexes(ctx, coll)
					},
					container.Logger(),
					commands.DefaultIO().Writer,
				)
			},
		},
		{
			Name:  "issue-token",
			Usage: "Sign a development bearer token for a digital user",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "subject",
					Aliases:  []string{"s"},
					Required: true,
					Usage:    "Digital user ID the token authenticates",
				},
				&cli.DurationFlag{
					Name:    "ttl",
					Aliases: []string{"t"},
					Value:   time.Hour,
					Usage:   "Token lifetime",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)

				return commands.RunIssueToken(
					container.TokenIssuer(),
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("subject"),
					cmd.Duration("ttl"),
					cmd.String("format"),
				)
			},
		},
	}
}
