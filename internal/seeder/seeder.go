package seeder

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/feral-file/ff-disctracker/internal/adapter"
	"github.com/feral-file/ff-disctracker/internal/domain"
	"github.com/feral-file/ff-disctracker/internal/logger"
	"github.com/feral-file/ff-disctracker/internal/reconciler"
)

// RowFailure describes a CSV row that could not be seeded
type RowFailure struct {
	Line       int
	ExternalID string
	Err        error
}

// Report summarizes a seeding run
type Report struct {
	Processed    int
	Added        int
	AlreadyOwned int
	Snapshots    int
	Failures     []RowFailure
}

// Seeder imports external ids from CSV into a user's collection
//
//go:generate mockgen -source=seeder.go -destination=../mocks/seeder.go -package=mocks -mock_names=Seeder=MockSeeder
type Seeder interface {
	// SeedFile opens path and seeds every row of it
	SeedFile(ctx context.Context, user domain.UserID, path string) (*Report, error)
	// Seed reads CSV from r. The first column of each row is an external id; other columns are ignored.
	// Row failures are collected in the report and do not stop the run.
	Seed(ctx context.Context, user domain.UserID, r io.Reader) (*Report, error)
}

type seeder struct {
	reconciler reconciler.Reconciler
	fs         adapter.FileSystem
}

// NewSeeder creates a new CSV seeder
func NewSeeder(rec reconciler.Reconciler, fs adapter.FileSystem) Seeder {
	return &seeder{reconciler: rec, fs: fs}
}

func (s *seeder) SeedFile(ctx context.Context, user domain.UserID, path string) (*Report, error) {
	f, err := s.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logger.WarnCtx(ctx, "Failed to close seed file", zap.String("path", path), zap.Error(err))
		}
	}()

	return s.Seed(ctx, user, f)
}

func (s *seeder) Seed(ctx context.Context, user domain.UserID, r io.Reader) (*Report, error) {
	if !user.Valid() {
		return nil, domain.NewValidationError("user identity is required")
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	report := &Report{}
	for {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				report.Failures = append(report.Failures, RowFailure{Line: parseErr.Line, Err: err})
				continue
			}
			return report, fmt.Errorf("failed to read csv: %w", err)
		}

		if len(record) == 0 {
			continue
		}
		externalID := strings.TrimSpace(record[0])
		if externalID == "" {
			continue
		}
		line, _ := reader.FieldPos(0)

		report.Processed++
		result, err := s.reconciler.Add(ctx, user, externalID)
		if err != nil {
			logger.WarnCtx(ctx, "Failed to seed item",
				zap.Int("line", line),
				zap.String("external_id", externalID),
				zap.Error(err),
			)
			report.Failures = append(report.Failures, RowFailure{Line: line, ExternalID: externalID, Err: err})
			continue
		}

		if result.AlreadyOwned {
			report.AlreadyOwned++
		} else {
			report.Added++
		}
		if result.Snapshot != nil {
			report.Snapshots++
		}

		logger.InfoCtx(ctx, "Seeded item",
			zap.Int("line", line),
			zap.String("external_id", externalID),
			zap.Bool("snapshot_recorded", result.Snapshot != nil),
		)
	}

	logger.InfoCtx(ctx, "Seeding finished",
		zap.String("user_id", string(user)),
		zap.Int("processed", report.Processed),
		zap.Int("added", report.Added),
		zap.Int("already_owned", report.AlreadyOwned),
		zap.Int("failed", len(report.Failures)),
	)

	return report, nil
}
