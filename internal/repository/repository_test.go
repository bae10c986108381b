package repository_test

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

const postgresImage = "postgres:17.6-alpine3.22"

// migrations returns the up scripts in apply order; Glob sorts by name.
func migrations() ([]string, error) {
	scripts, err := filepath.Glob("../migrations/*.up.sql")
	if err != nil {
		return nil, fmt.Errorf("filepath.Glob: %w", err)
	}
	if len(scripts) == 0 {
		return nil, fmt.Errorf("no migrations found")
	}

	return scripts, nil
}

// startPostgres runs a container with the catalog and order schema applied.
func startPostgres(ctx context.Context) (*postgres.PostgresContainer, string, error) {
	scripts, err := migrations()
	if err != nil {
		return nil, "", fmt.Errorf("migrations: %w", err)
	}

	pc, err := postgres.Run(ctx, postgresImage,
		postgres.BasicWaitStrategies(),
		postgres.WithInitScripts(scripts...),
	)
	if err != nil {
		return nil, "", fmt.Errorf("postgres.Run: %w", err)
	}

	connStr, err := pc.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", fmt.Errorf("pc.ConnectionString: %w", err)
	}

	return pc, connStr, nil
}
