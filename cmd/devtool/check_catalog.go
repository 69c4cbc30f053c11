package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/osse101/HabitInventory_Go/internal/catalog"
)

const fetchTimeout = time.Minute

type CheckCatalogCommand struct{}

func (c *CheckCatalogCommand) Name() string {
	return "check-catalog"
}

func (c *CheckCatalogCommand) Description() string {
	return "Fetch, schema-check and validate an egg catalog (path or URL)"
}

func (c *CheckCatalogCommand) Run(args []string) error {
	src := getEnv("CATALOG_SOURCE", "configs/catalog/eggs.json")
	if len(args) > 0 {
		src = args[0]
	}
	PrintHeader(fmt.Sprintf("Checking catalog %s", src))

	dir, err := os.MkdirTemp("", "catalog-check-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	path, err := catalog.Fetch(ctx, src, dir)
	if err != nil {
		return err
	}

	cat, err := catalog.LoadFile(catalog.NewLoader(), path)
	if err != nil {
		return err
	}

	for _, egg := range cat.Eggs() {
		PrintInfo("%-16s %s", egg.Key, catalog.Describe(egg))
	}
	PrintSuccess("Catalog %s is valid (%d eggs)", cat.Version(), cat.Len())
	return nil
}
