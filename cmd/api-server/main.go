package main

import (
	"Foodgram/config"
	"Foodgram/models"
	"Foodgram/pkg/database"
	"Foodgram/pkg/jwt"
	"Foodgram/pkg/log"
	"Foodgram/pkg/server"
	"Foodgram/service"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// conf is loaded before any command runs.
var conf *config.Config

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)

	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "foodgram recipe backend",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Value: path, Usage: "config file"},
		},
		Before: func(ctx *cli.Context) error {
			var err error
			if conf, err = config.Load(ctx.String("config")); err != nil {
				return err
			}
			return log.SetLevel(conf.App.LogLevel)
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					app, cleanup, err := InitServer(conf)
					if err != nil {
						return err
					}
					defer cleanup()
					return server.Run(ctx, app)
				},
			},
			{
				Name:  "migrate",
				Usage: "create or update database tables",
				Action: func(ctx *cli.Context) error {
					tools, cleanup, err := InitTools(conf)
					if err != nil {
						return err
					}
					defer cleanup()
					return database.Migrate(tools.DB)
				},
			},
			{
				Name:  "import",
				Usage: "load ingredients and tags from JSON files",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "ingredients", Usage: `JSON array of {"name", "measurement_unit"}`},
					&cli.StringFlag{Name: "tags", Usage: `JSON array of {"name", "slug"}`},
				},
				Action: importData,
			},
			{
				Name:  "create-user",
				Usage: "create a user when the email is not taken",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "username", Required: true},
					&cli.StringFlag{Name: "first-name"},
					&cli.StringFlag{Name: "last-name"},
				},
				Action: func(ctx *cli.Context) error {
					tools, cleanup, err := InitTools(conf)
					if err != nil {
						return err
					}
					defer cleanup()
					user := &models.User{
						Email:     ctx.String("email"),
						Username:  ctx.String("username"),
						FirstName: ctx.String("first-name"),
						LastName:  ctx.String("last-name"),
						IsActive:  true,
					}
					if err := tools.Users.GetOrCreateByEmail(ctx.Context, user); err != nil {
						return err
					}
					fmt.Fprintf(ctx.App.Writer, "user %d <%s>\n", user.ID, user.Email)
					return nil
				},
			},
			{
				Name:  "token",
				Usage: "issue an access token for a user id",
				Flags: []cli.Flag{
					&cli.Uint64Flag{Name: "user", Required: true},
				},
				Action: func(ctx *cli.Context) error {
					token, err := jwt.GenerateToken([]byte(conf.Jwt.Secret), ctx.Uint64("user"), jwt.TokenTypeAccess, conf.Jwt.AccessTTL)
					if err != nil {
						return err
					}
					fmt.Fprintln(ctx.App.Writer, token)
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("command failed", zap.Error(err))
	}
}

func importData(ctx *cli.Context) error {
	if ctx.String("ingredients") == "" && ctx.String("tags") == "" {
		return fmt.Errorf("nothing to import: pass --ingredients and/or --tags")
	}
	tools, cleanup, err := InitTools(conf)
	if err != nil {
		return err
	}
	defer cleanup()

	if file := ctx.String("ingredients"); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		items, err := service.ParseIngredients(data)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		res, err := tools.Ingredients.Import(ctx.Context, items)
		if err != nil {
			return err
		}
		fmt.Fprintf(ctx.App.Writer, "ingredients: %d created, %d existing\n", res.Created, res.Existing)
	}
	if file := ctx.String("tags"); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		items, err := service.ParseTags(data)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		res, err := tools.Tags.Import(ctx.Context, items)
		if err != nil {
			return err
		}
		fmt.Fprintf(ctx.App.Writer, "tags: %d created, %d existing\n", res.Created, res.Existing)
	}
	return nil
}
