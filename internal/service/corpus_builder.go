package service

import (
	"fmt"

	"campusbot/internal/models"
)

// BuildCorpus flattens the knowledge base into searchable entries: explicit QA
// pairs first, then one synthetic "what is ..." question per category fact.
// Facts without any key term are skipped.
func BuildCorpus(kb *models.KnowledgeBase) []models.CorpusEntry {
	if kb == nil {
		return nil
	}

	corpus := make([]models.CorpusEntry, 0, len(kb.QAPairs))
	for _, qa := range kb.QAPairs {
		corpus = append(corpus, models.CorpusEntry{
			Question: qa.Question,
			Answer:   qa.Answer,
		})
	}

	for _, category := range models.Categories {
		label := categoryLabel(category)
		for _, fact := range kb.Facts(category) {
			terms := extractKeyTerms(fact)
			if terms == "" {
				continue
			}
			corpus = append(corpus, models.CorpusEntry{
				Question:       "what is " + terms,
				Answer:         fmt.Sprintf("**%s:**\n\n%s", label, fact),
				SourceCategory: category,
			})
		}
	}

	return corpus
}
