package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cv-intake/internal/schemas"
	"cv-intake/internal/storage"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Database and JSON schema helpers",
}

var schemaInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the tables if they do not exist",
	RunE:  runSchemaInit,
}

var schemaPrintCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the parsed profile JSON schema",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), schemas.ParsedProfileSchema())
		return err
	},
}

var schemaDatabaseURL string

func init() {
	schemaInitCmd.Flags().StringVar(&schemaDatabaseURL, "db", "", "Database URL (defaults to DATABASE_URL)")

	schemaCmd.AddCommand(schemaInitCmd, schemaPrintCmd)
	rootCmd.AddCommand(schemaCmd)
}

func runSchemaInit(cmd *cobra.Command, _ []string) error {
	dsn := schemaDatabaseURL
	if dsn == "" {
		dsn = os.Getenv("DATABASE_URL")
	}
	if dsn == "" {
		return errors.New("--db or DATABASE_URL is required")
	}

	db, err := storage.NewDB(dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.EnsureSchema(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "schema ready (%s)\n", db.Dialect())
	return nil
}
