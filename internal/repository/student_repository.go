package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"campusbot/internal/models"

	"go.uber.org/zap"
)

var ErrStudentDataNotFound = errors.New("student data file not found")

// FileStudentRepository serves students decoded once from a JSON file.
// The file holds either {"students": [...]} or a bare array.
type FileStudentRepository struct {
	students []*models.Student
	logger   *zap.Logger
}

func NewFileStudentRepository(path string, logger *zap.Logger) (*FileStudentRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrStudentDataNotFound, path)
		}
		return nil, fmt.Errorf("failed to read student data: %w", err)
	}

	students, err := decodeStudents(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse student data: %w", err)
	}

	logger.Info("Student records loaded", zap.String("path", path), zap.Int("students", len(students)))

	return NewMemoryStudentRepository(students, logger), nil
}

// NewMemoryStudentRepository wraps an in-memory list, mainly for tests and the CLI.
func NewMemoryStudentRepository(students []*models.Student, logger *zap.Logger) *FileStudentRepository {
	return &FileStudentRepository{
		students: students,
		logger:   logger,
	}
}

func (r *FileStudentRepository) ListStudents(ctx context.Context) ([]*models.Student, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]*models.Student, len(r.students))
	copy(out, r.students)
	return out, nil
}

func decodeStudents(data []byte) ([]*models.Student, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var students []*models.Student
		if err := json.Unmarshal(data, &students); err != nil {
			return nil, err
		}
		return students, nil
	}

	var doc struct {
		Students []*models.Student `json:"students"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.Students, nil
}
