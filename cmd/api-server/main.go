package main

import (
	"AppNotas/config"
	"AppNotas/pkg/database"
	"AppNotas/pkg/log"
	"AppNotas/pkg/server"
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
	cfg := config.New(path)

	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "notes http api",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					appProvider, cleanup, err := InitServer(cfg)
					if err != nil {
						return err
					}
					defer cleanup()

					if err := database.Migrate(ctx.Context, appProvider.DB); err != nil {
						return err
					}
					return server.Run(ctx, appProvider)
				},
			},
			{
				Name:  "migrate",
				Usage: "create tables and seed system categories",
				Action: func(ctx *cli.Context) error {
					db, cleanup, err := database.NewDB(cfg)
					if err != nil {
						return err
					}
					defer cleanup()

					return database.Migrate(ctx.Context, db)
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}
