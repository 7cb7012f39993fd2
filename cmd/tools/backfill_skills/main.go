// backfill_skills re-parses the latest stored resume of each candidate and
// rewrites their skill list. Useful after the skill normalizer changes.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"slices"
	"time"

	"cv-intake/internal/blob"
	"cv-intake/internal/config"
	"cv-intake/internal/cv"
	"cv-intake/internal/profile"
	"cv-intake/internal/storage"
	"cv-intake/pkg/logger"
)

func main() {
	var dryRun bool
	var limit int
	flag.BoolVar(&dryRun, "dry-run", true, "If true, do not persist updates; just print changes")
	flag.IntVar(&limit, "limit", 200, "Max number of candidates to process in one run (0 = all)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	if err := run(context.Background(), cfg, dryRun, limit); err != nil {
		slog.Error("backfill failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, dryRun bool, limit int) error {
	db, err := storage.NewDB(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	var blobs blob.Store
	if cfg.BlobBackend == "s3" {
		blobs, err = blob.NewS3Store(ctx, blob.S3Config{
			Bucket:    cfg.S3Bucket,
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	} else {
		blobs, err = blob.NewLocalStore(cfg.UploadsDir)
	}
	if err != nil {
		return err
	}

	phone, err := cv.NewPhoneRule(cfg.PhonePattern)
	if err != nil {
		return err
	}
	var ocr cv.ImageOCR
	if cfg.OCREnabled {
		ocr = cv.NewPopplerOCR(cfg.OCRDPI, cfg.OCRTimeout)
	}
	parser := cv.NewParser(cv.NewExtractor(ocr), nil, phone)
	archive := profile.NewArchive(db, blobs)

	files, err := db.LatestCVFiles(ctx, limit)
	if err != nil {
		return err
	}
	slog.Info("found candidates with stored resumes", "count", len(files), "limit", limit, "dry_run", dryRun)

	var updated, skipped int
	for _, f := range files {
		log := slog.With("candidate_id", f.CandidateID, "file", f.Filename)

		doc, err := archive.Load(ctx, f)
		if err != nil {
			log.Warn("resume unavailable, skipping", "error", err)
			skipped++
			continue
		}
		parsed, err := parser.Parse(ctx, doc)
		if err != nil {
			log.Warn("parse failed, skipping", "error", err)
			skipped++
			continue
		}
		current, err := db.CandidateSkills(ctx, f.CandidateID)
		if err != nil {
			return err
		}
		if slices.Equal(current, parsed.Skills) {
			continue
		}

		log.Info("skills changed", "before", current, "after", parsed.Skills)
		if dryRun {
			continue
		}
		if err := db.ReplaceSkills(ctx, f.CandidateID, parsed.Skills); err != nil {
			log.Error("failed to replace skills", "error", err)
			continue
		}
		updated++

		// small pause between candidates
		time.Sleep(100 * time.Millisecond)
	}

	slog.Info("backfill finished", "updated", updated, "skipped", skipped, "dry_run", dryRun)
	return nil
}
