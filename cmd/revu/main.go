// Package main is the entry point for the Revu API server.
//
//	@title			Revu API
//	@version		1.0
//	@description	Ticket and review service with follows, blocks and a personalized feed.
//	@BasePath		/
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"os"

	"github.com/spf13/cobra"

	"revu/internal/interfaces/cli/migrate"
	"revu/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "revu",
		Short: "Revu - ticket and review service",
		Long:  `Revu is a web service where users request reviews through tickets, write reviews for each other, and follow other users to build a personalized feed.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
