package main

import (
	"NoteManager/config"
	"NoteManager/pkg/database"
	"NoteManager/pkg/log"
	"NoteManager/pkg/server"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)

	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "note manager http api",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   path,
				Usage:   "config file path",
				EnvVars: []string{"NOTES_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					cfg := loadConfig(ctx)
					appProvider := InitServer(cfg)
					return server.Run(ctx, appProvider)
				},
			},
			{
				Name:  "migrate",
				Usage: "create or upgrade database tables",
				Action: func(ctx *cli.Context) error {
					cfg := loadConfig(ctx)
					if err := database.Migrate(database.NewDB(cfg)); err != nil {
						return err
					}
					log.L.Info("database migrated", zap.String("driver", cfg.Database.Driver))
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}

func loadConfig(ctx *cli.Context) *config.Config {
	cfg := config.New(ctx.String("config"))
	log.SetDebug(cfg.Debug())
	return cfg
}
