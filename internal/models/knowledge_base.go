package models

type Category string

const (
	CategoryAdmissions   Category = "admissions"
	CategoryCourses      Category = "courses"
	CategoryFeeStructure Category = "fee_structure"
	CategoryPlacements   Category = "placements"
	CategoryFacilities   Category = "facilities"
	CategoryDepartments  Category = "departments"
)

// Categories is the fixed order used when synthetic questions are appended to the corpus.
var Categories = []Category{
	CategoryAdmissions,
	CategoryCourses,
	CategoryFeeStructure,
	CategoryPlacements,
	CategoryFacilities,
	CategoryDepartments,
}

type QAPair struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// KnowledgeBase is loaded once at startup and never mutated afterwards.
type KnowledgeBase struct {
	Admissions   []string `json:"admissions" yaml:"admissions"`
	Courses      []string `json:"courses" yaml:"courses"`
	FeeStructure []string `json:"fee_structure" yaml:"fee_structure"`
	Placements   []string `json:"placements" yaml:"placements"`
	Facilities   []string `json:"facilities" yaml:"facilities"`
	Departments  []string `json:"departments" yaml:"departments"`

	QAPairs   []QAPair `json:"qa_pairs" yaml:"qa_pairs"`
	Greetings []string `json:"greetings" yaml:"greetings"`
	Fallbacks []string `json:"fallback_responses" yaml:"fallback_responses"`
}

// Facts returns the ordered facts of a category, nil for an unknown one.
func (kb *KnowledgeBase) Facts(category Category) []string {
	if kb == nil {
		return nil
	}
	switch category {
	case CategoryAdmissions:
		return kb.Admissions
	case CategoryCourses:
		return kb.Courses
	case CategoryFeeStructure:
		return kb.FeeStructure
	case CategoryPlacements:
		return kb.Placements
	case CategoryFacilities:
		return kb.Facilities
	case CategoryDepartments:
		return kb.Departments
	}
	return nil
}

// CorpusEntry is one searchable question. SourceCategory is empty for explicit QA pairs.
type CorpusEntry struct {
	Question       string
	Answer         string
	SourceCategory Category
}
