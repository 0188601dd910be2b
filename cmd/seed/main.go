package main

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"campusbot/internal/repository"
	"campusbot/pkg/config"
	"campusbot/pkg/logger"
	"campusbot/pkg/postgres"

	"go.uber.org/zap"
)

// seed loads the sample student records into PostgreSQL so the server can
// run with STUDENT_SOURCE=postgres.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(logger.Options{Level: cfg.Logger.Level}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	repo := repository.NewPostgresStudentRepository(db, appLogger)
	if err := repo.EnsureSchema(ctx); err != nil {
		appLogger.Fatal("Failed to prepare schema", zap.Error(err))
	}

	cacheFile := filepath.Join(filepath.Dir(cfg.Students.Path), ".seed_cache.json")
	if err := seedStudents(ctx, cfg.Students.Path, cacheFile, repo, appLogger); err != nil {
		appLogger.Fatal("Failed to seed students", zap.Error(err))
	}

	appLogger.Info("Database seeding completed successfully")
}

type seedCache struct {
	FileHash string    `json:"file_hash"`
	SeededAt time.Time `json:"seeded_at"`
}

func loadCache(cacheFile string) (*seedCache, error) {
	data, err := os.ReadFile(cacheFile)
	if os.IsNotExist(err) {
		return &seedCache{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}

	var cache seedCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil, fmt.Errorf("failed to parse cache file: %w", err)
	}
	return &cache, nil
}

func saveCache(cacheFile string, cache *seedCache) error {
	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache: %w", err)
	}
	return os.WriteFile(cacheFile, data, 0o644)
}

func fileHash(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", fmt.Errorf("failed to calculate hash: %w", err)
	}
	return fmt.Sprintf("%x", hash.Sum(nil)), nil
}

// seedStudents upserts every record of the students file, skipping the run
// when the file is unchanged since the last successful seed.
func seedStudents(
	ctx context.Context,
	studentsPath string,
	cacheFile string,
	repo *repository.PostgresStudentRepository,
	logger *zap.Logger,
) error {
	hash, err := fileHash(studentsPath)
	if err != nil {
		return err
	}

	cache, err := loadCache(cacheFile)
	if err != nil {
		logger.Warn("Failed to load seed cache, reseeding", zap.Error(err))
		cache = &seedCache{}
	}
	if cache.FileHash == hash {
		logger.Info("Student data unchanged, skipping",
			zap.String("path", studentsPath),
			zap.Time("seeded_at", cache.SeededAt),
		)
		return nil
	}

	source, err := repository.NewFileStudentRepository(studentsPath, logger)
	if err != nil {
		return err
	}
	students, err := source.ListStudents(ctx)
	if err != nil {
		return err
	}

	for _, student := range students {
		if err := repo.Upsert(ctx, student); err != nil {
			return fmt.Errorf("failed to upsert student %s: %w", student.ID, err)
		}
		logger.Info("Seeded student", zap.String("id", student.ID), zap.String("name", student.Name))
	}

	if err := saveCache(cacheFile, &seedCache{FileHash: hash, SeededAt: time.Now()}); err != nil {
		logger.Warn("Failed to save seed cache", zap.Error(err))
	}
	return nil
}
