package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"campusbot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRecognitionService_Recognize_PicksFromStore(t *testing.T) {
	students := []*models.Student{{USN: "A"}, {USN: "B"}, {USN: "C"}}
	svc := NewRecognitionService(&fakeStore{students: students}, fixedPicker{idx: 2}, 0, zap.NewNop())

	student, err := svc.Recognize(context.Background(), []byte("img"))

	require.NoError(t, err)
	assert.Equal(t, "C", student.USN)
}

func TestRecognitionService_Recognize_EmptyStore(t *testing.T) {
	svc := NewRecognitionService(&fakeStore{}, fixedPicker{}, time.Hour, zap.NewNop())

	student, err := svc.Recognize(context.Background(), []byte("img"))

	require.NoError(t, err)
	assert.Nil(t, student)
}

func TestRecognitionService_Recognize_StoreError(t *testing.T) {
	storeErr := errors.New("connection refused")
	svc := NewRecognitionService(&fakeStore{err: storeErr}, fixedPicker{}, 0, zap.NewNop())

	_, err := svc.Recognize(context.Background(), []byte("img"))

	assert.ErrorIs(t, err, storeErr)
}

func TestRecognitionService_Recognize_HonoursCancellation(t *testing.T) {
	svc := NewRecognitionService(&fakeStore{students: []*models.Student{{USN: "A"}}}, fixedPicker{}, time.Hour, zap.NewNop())
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	student, err := svc.Recognize(ctx, []byte("img"))

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Nil(t, student)
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, time.Hour, svc.MaxLatency())
}

func TestLockedRand_SameSeedSameSequence(t *testing.T) {
	a, b := NewLockedRand(42), NewLockedRand(42)

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Intn(100), b.Intn(100))
	}
}
