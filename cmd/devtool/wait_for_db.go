package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/osse101/HabitInventory_Go/internal/database"
)

type WaitForDBCommand struct{}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Wait for database to be ready (with retries)"
}

func (c *WaitForDBCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	maxRetries := fs.Int("retries", 30, "number of attempts")
	interval := fs.Duration("interval", 2*time.Second, "delay between attempts")
	if err := fs.Parse(args); err != nil {
		return err
	}

	PrintHeader("Waiting for database...")

	var lastErr error
	for i := 0; i < *maxRetries; i++ {
		pool, err := database.NewPool(dbURL(), 1, time.Minute, time.Minute)
		if err == nil {
			ctx, cancel := context.WithTimeout(context.Background(), *interval)
			err = pool.Ping(ctx)
			cancel()
			pool.Close()
			if err == nil {
				PrintSuccess("Database is ready")
				return nil
			}
		}
		lastErr = err

		fmt.Printf("Database not ready (%d/%d): %v\n", i+1, *maxRetries, err)
		time.Sleep(*interval)
	}

	return fmt.Errorf("database failed to become ready after %d attempts: %w", *maxRetries, lastErr)
}
