// Command-line tools for operating an artfolio deployment
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"artfolio/artfolio/config"
	"artfolio/artfolio/migrations"
	"artfolio/artfolio/sources/backend"
	"artfolio/artfolio/sources/memory"
	"artfolio/artfolio/sources/models"
	"artfolio/artfolio/sources/sqlstore"
	"artfolio/artfolio/utils/logging"
	"artfolio/artfolio/utils/slug"

	"go.uber.org/zap"
)

func usage() {
	fmt.Println("artfolio CLI usage:")
	fmt.Println("  artfolio migrate [up|down|status]   # goose migrations (sql backend)")
	fmt.Println("  artfolio slug <text>                # print the slug for text")
	fmt.Println("  artfolio seed                       # create the demo user")
}

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	// slug needs no config
	if args[0] == "slug" {
		if len(args) < 2 {
			usage()
			os.Exit(1)
		}
		fmt.Println(slug.Normalize(strings.Join(args[1:], " ")))
		return
	}

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}
	logging.InitLogger(cfg.LogDir, true)
	defer logging.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	switch args[0] {
	case "migrate":
		command := "up"
		if len(args) > 1 {
			command = args[1]
		}
		if err := migrate(ctx, cfg, command); err != nil {
			logging.ErrorLogger.Error("migration failed", zap.String("command", command), zap.Error(err))
			os.Exit(1)
		}
	case "seed":
		if err := seed(ctx, cfg); err != nil {
			logging.ErrorLogger.Error("seed failed", zap.Error(err))
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(1)
	}
}

func migrate(ctx context.Context, cfg config.Config, command string) error {
	s, err := sqlstore.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer s.Close()
	return migrations.Run(ctx, s.DB().DB, command)
}

func seed(ctx context.Context, cfg config.Config) error {
	if cfg.StoreBackend == config.BackendMemory {
		fmt.Println("memory backend is seeded on startup; nothing to do")
		return nil
	}
	s, err := backend.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	existing, err := s.GetUser(ctx, memory.DemoUserID)
	if err != nil {
		return err
	}
	if existing != nil {
		fmt.Println("demo user already exists:", existing.ID)
		return nil
	}
	name, username := memory.DemoFullName, memory.DemoUsername
	u, err := s.CreateUser(ctx, &models.User{
		ID:       memory.DemoUserID,
		FullName: &name,
		Username: &username,
		Email:    "test@example.com",
	})
	if err != nil {
		return err
	}
	logging.AppLogger.Info("demo user created", zap.String("user_id", u.ID))
	fmt.Println("demo user created:", u.ID)
	return nil
}
