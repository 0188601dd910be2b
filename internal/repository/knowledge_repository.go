package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"campusbot/internal/models"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var (
	ErrKnowledgeBaseNotFound = errors.New("knowledge base file not found")
	ErrUnsupportedFormat     = errors.New("unsupported file format")
)

// KnowledgeRepository reads the campus knowledge base from a JSON or YAML file.
type KnowledgeRepository struct {
	path   string
	logger *zap.Logger
}

func NewKnowledgeRepository(path string, logger *zap.Logger) *KnowledgeRepository {
	return &KnowledgeRepository{
		path:   path,
		logger: logger,
	}
}

// Load parses the file selected by its extension (.json, .yaml, .yml).
func (r *KnowledgeRepository) Load(ctx context.Context) (*models.KnowledgeBase, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrKnowledgeBaseNotFound, r.path)
		}
		return nil, fmt.Errorf("failed to read knowledge base: %w", err)
	}

	var kb models.KnowledgeBase
	switch ext := strings.ToLower(filepath.Ext(r.path)); ext {
	case ".json":
		err = json.Unmarshal(data, &kb)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &kb)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse knowledge base: %w", err)
	}

	r.logger.Info("Knowledge base loaded",
		zap.String("path", r.path),
		zap.Int("qa_pairs", len(kb.QAPairs)),
		zap.Int("admissions", len(kb.Admissions)),
		zap.Int("courses", len(kb.Courses)),
		zap.Int("fee_structure", len(kb.FeeStructure)),
		zap.Int("placements", len(kb.Placements)),
		zap.Int("facilities", len(kb.Facilities)),
		zap.Int("departments", len(kb.Departments)),
	)

	return &kb, nil
}
