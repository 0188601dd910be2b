package service

import (
	"testing"

	"campusbot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimilarityIndex_ExactQuestionScoresHigh(t *testing.T) {
	corpus := BuildCorpus(testKnowledgeBase())
	index := NewSimilarityIndex(corpus)
	require.True(t, index.Available())

	for _, entry := range corpus {
		answer, score, ok := index.Query(entry.Question)
		require.True(t, ok)
		assert.GreaterOrEqual(t, score, 0.99, entry.Question)
		assert.Equal(t, entry.Answer, answer, entry.Question)
	}
}

func TestSimilarityIndex_PunctuationAndCaseIgnored(t *testing.T) {
	index := NewSimilarityIndex(BuildCorpus(testKnowledgeBase()))

	answer, score, ok := index.Query("WHO is the PRINCIPAL???")

	require.True(t, ok)
	assert.InDelta(t, 1.0, score, 1e-9)
	assert.Equal(t, "Dr. H B Aravinda is the principal.", answer)
}

func TestSimilarityIndex_UnknownTermsScoreZeroAndPickFirst(t *testing.T) {
	corpus := BuildCorpus(testKnowledgeBase())
	index := NewSimilarityIndex(corpus)

	answer, score, ok := index.Query("hello")

	require.True(t, ok)
	assert.Zero(t, score)
	assert.Equal(t, corpus[0].Answer, answer)
}

func TestSimilarityIndex_TiesGoToEarliestEntry(t *testing.T) {
	index := NewSimilarityIndex([]models.CorpusEntry{
		{Question: "hostel rooms", Answer: "first"},
		{Question: "hostel rooms", Answer: "second"},
	})

	answer, _, ok := index.Query("hostel rooms")

	require.True(t, ok)
	assert.Equal(t, "first", answer)
}

func TestSimilarityIndex_EmptyCorpusIsUnavailable(t *testing.T) {
	index := NewSimilarityIndex(nil)

	answer, score, ok := index.Query("anything")

	assert.False(t, index.Available())
	assert.False(t, ok)
	assert.Empty(t, answer)
	assert.Zero(t, score)
	assert.Zero(t, index.Len())
	assert.Zero(t, index.VocabularySize())
}

func TestSimilarityIndex_UnicodeSpacesMatchLikeASCII(t *testing.T) {
	index := NewSimilarityIndex([]models.CorpusEntry{
		{Question: "hostel rooms", Answer: "Separate hostels for boys and girls."},
		{Question: "library timings", Answer: "Library is open 8 AM to 8 PM."},
	})

	for _, query := range []string{"hostel rooms", "hostel\u00a0rooms", "hostel\u3000rooms"} {
		answer, score, ok := index.Query(query)
		require.True(t, ok)
		assert.InDelta(t, 1.0, score, 1e-9, query)
		assert.Equal(t, "Separate hostels for boys and girls.", answer)
	}
}
