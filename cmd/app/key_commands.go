package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/tracktainment/duxmanager/cmd/app/commands"
	cryptoService "github.com/tracktainment/duxmanager/internal/crypto/service"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "generate-salt",
			Usage: "Generate a random salt for ENCRYPTION_SALT",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "size",
					Aliases: []string{"n"},
					Value:   commands.DefaultSaltSize,
					Usage:   "Salt length in bytes",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunGenerateSalt(
					commands.DefaultIO().Writer,
					int(cmd.Int("size")),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "generate-secret",
			Usage: "Generate a field encryption secret, optionally wrapped with a KMS key",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "kms-key-uri",
					Value: "",
					Usage: "KMS key URI (e.g., base64key://, gcpkms://projects/.../cryptoKeys/..., hashivault://...)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

				return commands.RunGenerateSecret(
					ctx,
					cryptoService.NewKMSService(),
					logger,
					commands.DefaultIO().Writer,
					cmd.String("kms-key-uri"),
					cmd.String("format"),
				)
			},
		},
	}
}
