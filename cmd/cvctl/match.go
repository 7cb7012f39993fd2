package main

import (
	"encoding/json"
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"cv-intake/internal/match"
	"cv-intake/internal/storage"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a candidate's skills against a job",
	Long: `Score either literal skill lists (--job-skills and --skills) or a stored
candidate against a stored job (--candidate, --job and --db).`,
	RunE: runMatch,
}

var (
	matchJobSkills   string
	matchSkills      string
	matchCandidateID int64
	matchJobID       int64
	matchDatabaseURL string
)

func init() {
	matchCmd.Flags().StringVar(&matchJobSkills, "job-skills", "", "Comma-separated required skills")
	matchCmd.Flags().StringVar(&matchSkills, "skills", "", "Comma-separated candidate skills")
	matchCmd.Flags().Int64Var(&matchCandidateID, "candidate", 0, "Stored candidate ID")
	matchCmd.Flags().Int64Var(&matchJobID, "job", 0, "Stored job ID")
	matchCmd.Flags().StringVar(&matchDatabaseURL, "db", "", "Database URL (defaults to DATABASE_URL)")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	var res match.Result

	switch {
	case matchJobSkills != "":
		res = match.Score(matchJobSkills, strings.Split(matchSkills, ","))
	case matchCandidateID > 0 && matchJobID > 0:
		dsn := matchDatabaseURL
		if dsn == "" {
			dsn = os.Getenv("DATABASE_URL")
		}
		if dsn == "" {
			return errors.New("--db or DATABASE_URL is required with --candidate/--job")
		}
		db, err := storage.NewDB(dsn)
		if err != nil {
			return err
		}
		defer db.Close()

		res, err = match.NewService(db, db).Match(cmd.Context(), matchCandidateID, matchJobID)
		if err != nil {
			return err
		}
	default:
		return errors.New("provide --job-skills, or --candidate and --job")
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
