package cmd

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	config "agilefant.com/agilefant/internal/configs"
)

var rootCmd = &cobra.Command{
	Use:           "agilefant",
	Short:         "Agilefant backlog service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using environment variables")
	}
	return config.Load()
}
