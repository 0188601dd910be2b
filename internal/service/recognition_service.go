package service

import (
	"context"
	"fmt"
	"time"

	"campusbot/internal/models"

	"go.uber.org/zap"
)

// StudentStore is a read-only source of student records.
type StudentStore interface {
	ListStudents(ctx context.Context) ([]*models.Student, error)
}

// RecognitionService simulates photo recognition: after a fixed processing
// delay it returns a student picked uniformly at random. The image content is
// not inspected.
type RecognitionService struct {
	store   StudentStore
	picker  Picker
	latency time.Duration
	logger  *zap.Logger
}

func NewRecognitionService(store StudentStore, picker Picker, latency time.Duration, logger *zap.Logger) *RecognitionService {
	return &RecognitionService{
		store:   store,
		picker:  picker,
		latency: latency,
		logger:  logger,
	}
}

// MaxLatency is the worst-case time Recognize spends waiting, excluding the store lookup.
func (s *RecognitionService) MaxLatency() time.Duration {
	return s.latency
}

// Recognize returns nil without error when the store holds no students.
func (s *RecognitionService) Recognize(ctx context.Context, image []byte) (*models.Student, error) {
	students, err := s.store.ListStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	if len(students) == 0 {
		s.logger.Warn("Student store is empty, nothing to recognize")
		return nil, nil
	}

	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	student := students[s.picker.Intn(len(students))]
	s.logger.Info("Student recognized",
		zap.String("usn", student.USN),
		zap.Int("image_bytes", len(image)),
	)
	return student, nil
}
