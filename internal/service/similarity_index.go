package service

import (
	"campusbot/internal/models"
	"campusbot/pkg/tfidf"
)

// MatchThreshold is the score a similarity match must strictly exceed to be used.
const MatchThreshold = 0.30

// SimilarityIndex answers free-text queries with the nearest corpus question.
// It is built once and safe for concurrent reads.
type SimilarityIndex struct {
	vectorizer *tfidf.Vectorizer
	rows       []tfidf.Vector
	answers    []string
}

// NewSimilarityIndex fits unigram and bigram TF-IDF weights over the corpus
// questions. An empty corpus yields an unavailable index.
func NewSimilarityIndex(corpus []models.CorpusEntry) *SimilarityIndex {
	if len(corpus) == 0 {
		return &SimilarityIndex{}
	}

	questions := make([]string, len(corpus))
	answers := make([]string, len(corpus))
	for i, entry := range corpus {
		questions[i] = entry.Question
		answers[i] = entry.Answer
	}

	vectorizer, rows := tfidf.Fit(questions, tfidf.Options{
		StopWords: tfidf.EnglishStopWords,
		MaxNGram:  2,
	})

	return &SimilarityIndex{
		vectorizer: vectorizer,
		rows:       rows,
		answers:    answers,
	}
}

func (i *SimilarityIndex) Available() bool {
	return i != nil && i.vectorizer != nil
}

func (i *SimilarityIndex) Len() int {
	if !i.Available() {
		return 0
	}
	return len(i.rows)
}

func (i *SimilarityIndex) VocabularySize() int {
	if !i.Available() {
		return 0
	}
	return i.vectorizer.VocabularySize()
}

// Query returns the answer of the most similar corpus question and its cosine
// score in [0,1]. Ties go to the earliest entry. ok is false only when the
// index is unavailable.
func (i *SimilarityIndex) Query(text string) (answer string, score float64, ok bool) {
	if !i.Available() {
		return "", 0, false
	}

	q := i.vectorizer.Transform(preprocessQuery(text))

	best, bestScore := 0, -1.0
	for idx, row := range i.rows {
		s := tfidf.Cosine(q, row)
		if s > bestScore {
			best, bestScore = idx, s
		}
	}

	return i.answers[best], clampScore(bestScore), true
}

func clampScore(s float64) float64 {
	switch {
	case s < 0:
		return 0
	case s > 1:
		return 1
	}
	return s
}
