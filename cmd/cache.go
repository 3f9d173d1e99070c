package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"agilefant.com/agilefant/internal/cache"
	config "agilefant.com/agilefant/internal/configs"
	"agilefant.com/agilefant/internal/services"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the autocomplete cache",
}

var cacheFlushCmd = &cobra.Command{
	Use:   "flush",
	Short: "Drop the cached autocomplete lists",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if !cfg.CacheEnabled {
			return fmt.Errorf("autocomplete cache is disabled")
		}

		redisClient, err := config.NewRedisClient(cfg.RedisAddr())
		if err != nil {
			return err
		}
		defer redisClient.Close()

		c := cache.NewRedisAutocompleteCache(redisClient, cfg.RedisKeyPrefix, cfg.AutocompleteTTL())
		if err := services.NewAutocompleteService(nil, c).Invalidate(cmd.Context()); err != nil {
			return fmt.Errorf("flush autocomplete cache: %w", err)
		}

		fmt.Println(color.GreenString("flushed %d autocomplete lists", len(cache.Kinds())))
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheFlushCmd)
	rootCmd.AddCommand(cacheCmd)
}
