package internal

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/justtrackio/gosoline/pkg/appctx"
	"github.com/justtrackio/gosoline/pkg/cfg"
	"github.com/justtrackio/gosoline/pkg/exec"
	"github.com/justtrackio/gosoline/pkg/log"
	_ "github.com/trinodb/trino-go-client/trino"
)

type TrinoSettings struct {
	DSN     string `cfg:"dsn"`
	Catalog string `cfg:"catalog" default:"lakehouse"`
	Schema  string `cfg:"schema" default:"main"`
}

type trinoCtxKey struct{}

func ProvideTrinoClient(ctx context.Context, config cfg.Config, logger log.Logger) (*TrinoClient, error) {
	return appctx.Provide(ctx, trinoCtxKey{}, func() (*TrinoClient, error) {
		var err error
		var db *sqlx.DB
		var backoffSettings exec.BackoffSettings

		settings := &TrinoSettings{}
		if err = config.UnmarshalKey("trino", settings); err != nil {
			return nil, fmt.Errorf("could not unmarshal trino settings: %w", err)
		}

		if db, err = sqlx.Open("trino", settings.DSN); err != nil {
			return nil, fmt.Errorf("could not connect to database: %w", err)
		}

		if backoffSettings, err = exec.ReadBackoffSettings(config); err != nil {
			return nil, fmt.Errorf("could not read backoff settings: %w", err)
		}

		checks := []exec.ErrorChecker{
			exec.CheckConnectionError,
			func(_ any, err error) exec.ErrorType {
				if strings.Contains(err.Error(), "query failed") {
					return exec.ErrorTypeRetryable
				}

				return exec.ErrorTypePermanent
			},
		}
		executor := exec.NewExecutor(logger, &exec.ExecutableResource{Type: "trino", Name: "default"}, &backoffSettings, checks)

		return NewTrinoClientWithInterfaces(db, executor, settings), nil
	})
}

func NewTrinoClientWithInterfaces(db *sqlx.DB, executor exec.Executor, settings *TrinoSettings) *TrinoClient {
	return &TrinoClient{
		db:       db,
		exec:     executor,
		settings: settings,
	}
}

type TrinoClient struct {
	db       *sqlx.DB
	exec     exec.Executor
	settings *TrinoSettings
}

// QualifiedTable returns the quoted catalog.schema.table name of a logical table.
func (c *TrinoClient) QualifiedTable(table string) string {
	schema := c.settings.Schema

	if idx := strings.LastIndex(table, "."); idx >= 0 {
		schema, table = table[:idx], table[idx+1:]
	}

	return qualifiedTableName(c.settings.Catalog, schema, table)
}

func (c *TrinoClient) Exec(ctx context.Context, query string, args ...any) error {
	_, err := c.exec.Execute(ctx, func(ctx context.Context) (any, error) {
		return c.db.ExecContext(ctx, query, args...)
	})
	if err != nil {
		return fmt.Errorf("could not execute trino statement: %w", err)
	}

	return nil
}
