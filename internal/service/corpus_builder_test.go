package service

import (
	"testing"

	"campusbot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCorpus_QAPairsFirstThenCategoriesInOrder(t *testing.T) {
	kb := testKnowledgeBase()

	corpus := BuildCorpus(kb)

	// 2 QA pairs plus 9 facts, of which "Wi-Fi" has no key term.
	require.Len(t, corpus, 10)
	assert.Equal(t, "What is the admission process?", corpus[0].Question)
	assert.Empty(t, corpus[0].SourceCategory)
	assert.Equal(t, "Who is the principal?", corpus[1].Question)

	var order []models.Category
	for _, entry := range corpus[2:] {
		if len(order) == 0 || order[len(order)-1] != entry.SourceCategory {
			order = append(order, entry.SourceCategory)
		}
	}
	assert.Equal(t, models.Categories, order)
}

func TestBuildCorpus_SyntheticEntry(t *testing.T) {
	kb := &models.KnowledgeBase{
		FeeStructure: []string{"Tuition fee for KCET students is ₹85,000 per year"},
	}

	corpus := BuildCorpus(kb)

	require.Len(t, corpus, 1)
	assert.Equal(t, models.CorpusEntry{
		Question:       "what is tuition kcet students year",
		Answer:         "**Fee Structure:**\n\nTuition fee for KCET students is ₹85,000 per year",
		SourceCategory: models.CategoryFeeStructure,
	}, corpus[0])
}

func TestBuildCorpus_EmptyKnowledgeBase(t *testing.T) {
	assert.Empty(t, BuildCorpus(&models.KnowledgeBase{}))
	assert.Empty(t, BuildCorpus(nil))
}
