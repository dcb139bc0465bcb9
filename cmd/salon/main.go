package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:           "salon",
		Short:         "Salon booking service",
		Long:          "Запись клиентов в салон, подбор мастеров и управление сменами.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.toml", "путь к config.toml")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(approveWeekCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
