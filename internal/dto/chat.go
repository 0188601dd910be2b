package dto

type ChatRequest struct {
	Message string `json:"message" validate:"max=4000"`
	// Image is a base64 payload or data URL; any non-empty value counts as a photo.
	Image string `json:"image"`
}

type ChatResponse struct {
	Reply     string `json:"reply"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp,omitempty"`
}

type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

type KnowledgeStatsResponse struct {
	QAPairs        int `json:"qa_pairs"`
	Admissions     int `json:"admissions"`
	Courses        int `json:"courses"`
	FeeStructure   int `json:"fee_structure"`
	Placements     int `json:"placements"`
	Facilities     int `json:"facilities"`
	Departments    int `json:"departments"`
	CorpusSize     int `json:"corpus_size"`
	VocabularySize int `json:"vocabulary_size"`
}
