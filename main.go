package main

import (
	"context"
	_ "embed"

	"github.com/gin-contrib/cors"
	"github.com/gosoline-project/httpserver"
	"github.com/justtrackio/gosoline/pkg/application"
	"github.com/justtrackio/gosoline/pkg/cfg"
	"github.com/justtrackio/gosoline/pkg/log"
	"github.com/justtrackio/lakehouse-health/internal"
)

//go:embed config.dist.yml
var configDist []byte

func main() {
	application.New(
		application.WithConfigDebug,
		application.WithConfigBytes(configDist, "yml"),
		application.WithConfigEnvKeyReplacer(cfg.DefaultEnvKeyReplacer),
		application.WithConfigFileFlag,
		application.WithConfigSanitizers(cfg.TimeSanitizer),
		application.WithLoggerHandlersFromConfig,
		application.WithUTCClock(true),
		application.WithModuleFactory("tasks", internal.NewModuleTasks),
		application.WithModuleFactory("health", internal.NewModuleHealth),
		application.WithModuleFactory("http", httpserver.NewServer("default", func(ctx context.Context, config cfg.Config, logger log.Logger, router *httpserver.Router) error {
			router.Use(cors.Default())

			router.Group("/api/health").HandleWith(httpserver.With(internal.NewHandlerHealth, func(r *httpserver.Router, handler *internal.HandlerHealth) {
				r.GET("/tables", httpserver.BindN(handler.ListTables))
				r.GET("/:table", httpserver.Bind(handler.GetReport))
				r.GET("/:table/history", httpserver.Bind(handler.ListHistory))
				r.GET("/:table/snapshots", httpserver.Bind(handler.ListSnapshots))
				r.POST("/:table/remediate", httpserver.Bind(handler.Remediate))
			}))

			router.Group("/api/tasks").HandleWith(httpserver.With(internal.NewHandlerTasks, func(r *httpserver.Router, handler *internal.HandlerTasks) {
				r.GET("", httpserver.Bind(handler.ListTasks))
				r.GET("/counts", httpserver.Bind(handler.TaskCounts))
				r.DELETE("", httpserver.Bind(handler.FlushTasks))
			}))

			router.Group("/api/settings").HandleWith(httpserver.With(internal.NewHandlerSettings, func(r *httpserver.Router, handler *internal.HandlerSettings) {
				r.GET("/task-concurrency", httpserver.BindN(handler.GetTaskConcurrency))
				r.PUT("/task-concurrency", httpserver.Bind(handler.SetTaskConcurrency))
				r.GET("/auto-remediation", httpserver.BindN(handler.GetAutoRemediation))
				r.PUT("/auto-remediation", httpserver.Bind(handler.SetAutoRemediation))
			}))

			return nil
		})),
	).Run()
}
