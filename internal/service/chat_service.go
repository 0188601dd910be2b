package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"campusbot/internal/models"

	"go.uber.org/zap"
)

type KnowledgeStats struct {
	QAPairs        int
	Categories     map[models.Category]int
	CorpusSize     int
	VocabularySize int
}

// Router answers one message.
type Router interface {
	Route(ctx context.Context, message string, image []byte) models.Response
}

// ChatService is the request boundary of the engine. It never returns an
// error: faults inside routing become an apology response.
type ChatService struct {
	kb                 *models.KnowledgeBase
	index              *SimilarityIndex
	router             Router
	recognitionTimeout time.Duration
	logger             *zap.Logger
}

func NewChatService(
	kb *models.KnowledgeBase,
	index *SimilarityIndex,
	router Router,
	recognitionTimeout time.Duration,
	logger *zap.Logger,
) *ChatService {
	return &ChatService{
		kb:                 kb,
		index:              index,
		router:             router,
		recognitionTimeout: recognitionTimeout,
		logger:             logger,
	}
}

// Respond produces the reply for a single message and optional photo.
func (s *ChatService) Respond(ctx context.Context, message string, image []byte) (resp models.Response) {
	message = strings.TrimSpace(sanitizeUTF8(message))

	defer func() {
		if rec := recover(); rec != nil {
			s.logger.Error("Recovered from panic while generating response",
				zap.String("panic", fmt.Sprint(rec)),
				zap.String("message", message),
			)
			resp = models.Response{Text: ErrorApologyMessage, Type: models.ResponseTypeError}
		}
	}()

	if len(image) > 0 && s.recognitionTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.recognitionTimeout)
		defer cancel()
	}

	resp = s.router.Route(ctx, message, image)

	s.logger.Debug("Generated response",
		zap.String("message", message),
		zap.Bool("has_image", len(image) > 0),
		zap.String("type", string(resp.Type)),
	)
	return resp
}

func (s *ChatService) Stats() KnowledgeStats {
	stats := KnowledgeStats{
		QAPairs:        len(s.kb.QAPairs),
		Categories:     make(map[models.Category]int, len(models.Categories)),
		CorpusSize:     s.index.Len(),
		VocabularySize: s.index.VocabularySize(),
	}
	for _, category := range models.Categories {
		stats.Categories[category] = len(s.kb.Facts(category))
	}
	return stats
}
