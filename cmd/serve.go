package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"agilefant.com/agilefant/internal/cache"
	config "agilefant.com/agilefant/internal/configs"
	httpapi "agilefant.com/agilefant/internal/http"
	"agilefant.com/agilefant/internal/i18n"
	"agilefant.com/agilefant/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the backlog HTTP API and, when enabled, the autocomplete cache warmer",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		database, err := config.NewDatabaseClient(cfg.DatabaseDSN)
		if err != nil {
			return err
		}

		localizer, err := i18n.New(cfg.DefaultLocale)
		if err != nil {
			return err
		}

		var autocompleteCache cache.AutocompleteCache
		if cfg.CacheEnabled {
			redisClient, err := config.NewRedisClient(cfg.RedisAddr())
			if err != nil {
				return err
			}
			defer redisClient.Close()
			autocompleteCache = cache.NewRedisAutocompleteCache(redisClient, cfg.RedisKeyPrefix, cfg.AutocompleteTTL())
		}

		a := newApp(database, autocompleteCache)

		var warmer *services.AutocompleteWarmer
		if autocompleteCache != nil {
			warmer = services.NewAutocompleteWarmer(a.autocomplete, cfg.AutocompleteRefreshInterval())
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e := echo.New()
		e.HideBanner = true
		handler := httpapi.NewHandler(httpapi.Deps{
			Transfer:      a.transfer,
			Autocomplete:  a.autocomplete,
			Projects:      a.projects,
			StoryBusiness: a.storyService,
			Iterations:    a.iterations,
			Stories:       a.stories,
			TaskService:   a.taskService,
			HourEntries:   a.hourEntries,
			WorkTypes:     a.workTypes,
			ActivityTypes: a.activityTypes,
			Localizer:     localizer,
		})
		httpapi.Register(e, handler, cfg.RateLimit)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL())
			if err := e.Start(cfg.AppURL()); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
		defer cancel()
		_ = e.Shutdown(shutdownCtx)

		if warmer != nil {
			warmer.Shutdown(shutdownCtx)
		}

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
