package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"userstore/internal/config"
	"userstore/internal/logger"
	"userstore/internal/model"
	"userstore/internal/repository/memory"
	"userstore/internal/service"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx := context.Background()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	var userRepo *memory.UserRepository
	if cfg.Store.Capacity > 0 {
		userRepo = memory.NewBoundedUserRepository(cfg.Store.Capacity)
	} else {
		userRepo = memory.NewUserRepository()
	}

	userService := service.NewUser(userRepo, logger)

	logAppVersion()

	if err := runDemo(ctx, logger, userService); err != nil {
		logger.Fatal("demo failed", "error", err)
	}
}

// runDemo walks the store through a full user lifecycle and logs each
// result.
func runDemo(ctx context.Context, logger *logger.Logger, users *service.User) error {
	alice, err := users.CreateUser(ctx, "Alice", "alice@example.com")
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	bob, err := users.CreateUser(ctx, "Bob", "bob@example.com")
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	logger.Info("users stored", "count", users.CountUsers(ctx))

	if _, err := users.PromoteToAdmin(ctx, alice.ID); err != nil {
		return fmt.Errorf("failed to promote user: %w", err)
	}

	if _, err := users.SuspendUser(ctx, bob.ID, "manual review"); err != nil {
		return fmt.Errorf("failed to suspend user: %w", err)
	}

	for _, user := range users.ActiveUsers(ctx) {
		logger.Info("active user", "id", user.ID, "name", user.Name, "role", user.Role)
	}

	// Invalid input is reported, not stored.
	if _, err := users.CreateUser(ctx, "X", "no-at-sign"); err != nil {
		var vErr *model.ValidationError
		if errors.As(err, &vErr) {
			logger.Info("rejected invalid user", "field", vErr.Field, "message", vErr.Message)
		}
	}

	users.DeleteUser(ctx, alice.ID)

	if _, err := users.GetUser(ctx, alice.ID); errors.Is(err, model.ErrNotFound) {
		logger.Info("user gone after delete", "id", alice.ID)
	}

	logger.Info("users remaining", "count", users.CountUsers(ctx))

	return nil
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
