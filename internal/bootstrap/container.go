package bootstrap

import (
	"context"
	"fmt"

	"campusbot/internal/models"
	"campusbot/internal/repository"
	"campusbot/internal/service"
	"campusbot/pkg/config"
	"campusbot/pkg/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Container is the immutable engine shared by every request.
type Container struct {
	KnowledgeBase *models.KnowledgeBase
	Index         *service.SimilarityIndex
	ChatService   *service.ChatService

	db *pgxpool.Pool
}

// NewContainer loads the knowledge base, builds the index and wires the
// services. Any failure here is a startup error.
func NewContainer(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Container, error) {
	kb, err := repository.NewKnowledgeRepository(cfg.Knowledge.Path, logger).Load(ctx)
	if err != nil {
		return nil, err
	}

	store, db, err := newStudentStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	corpus := service.BuildCorpus(kb)
	index := service.NewSimilarityIndex(corpus)
	if !index.Available() {
		logger.Warn("Knowledge base produced an empty corpus, similarity search disabled")
	}
	logger.Info("Similarity index built",
		zap.Int("corpus_size", index.Len()),
		zap.Int("vocabulary_size", index.VocabularySize()),
	)

	picker := service.NewLockedRand(cfg.Recognition.Seed)
	recognizer := service.NewRecognitionService(store, picker, cfg.Recognition.Latency, logger)
	router := service.NewIntentRouter(kb, index, recognizer, service.NewResponseFormatter(), picker, logger)

	return &Container{
		KnowledgeBase: kb,
		Index:         index,
		ChatService:   service.NewChatService(kb, index, router, cfg.Recognition.Timeout, logger),
		db:            db,
	}, nil
}

// Close releases the database pool, if one was opened.
func (c *Container) Close() {
	if c.db != nil {
		c.db.Close()
	}
}

func newStudentStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (service.StudentStore, *pgxpool.Pool, error) {
	switch cfg.Students.Source {
	case config.StudentSourcePostgres:
		db, err := postgres.NewPool(ctx, &cfg.Database, logger)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewPostgresStudentRepository(db, logger), db, nil
	case config.StudentSourceFile:
		store, err := repository.NewFileStudentRepository(cfg.Students.Path, logger)
		if err != nil {
			return nil, nil, err
		}
		return store, nil, nil
	}
	return nil, nil, fmt.Errorf("unknown student source %q", cfg.Students.Source)
}
