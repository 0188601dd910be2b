package service

import (
	"context"
	"strings"

	"campusbot/internal/models"

	"go.uber.org/zap"
)

// StudentRecognizer maps an uploaded photo to a student record. A nil student
// with a nil error means nobody was recognized.
type StudentRecognizer interface {
	Recognize(ctx context.Context, image []byte) (*models.Student, error)
}

// Matcher finds the closest known answer for free text.
type Matcher interface {
	Query(text string) (answer string, score float64, ok bool)
}

type categoryRule struct {
	category     models.Category
	responseType models.ResponseType
	keywords     []string
}

// Checked in order; the first rule with a matching keyword wins.
var categoryRules = []categoryRule{
	{models.CategoryAdmissions, models.ResponseTypeAdmissions,
		[]string{"admission", "admit", "apply", "application", "eligibility", "cet", "comedk"}},
	{models.CategoryFeeStructure, models.ResponseTypeFees,
		[]string{"fee", "fees", "cost", "tuition", "scholarship", "payment"}},
	{models.CategoryPlacements, models.ResponseTypePlacements,
		[]string{"placement", "placements", "company", "companies", "recruiter", "job", "package", "salary"}},
	{models.CategoryCourses, models.ResponseTypeCourses,
		[]string{"course", "courses", "program", "b.e", "m.tech", "mca", "mba", "engineering"}},
	{models.CategoryFacilities, models.ResponseTypeFacilities,
		[]string{"facility", "facilities", "hostel", "library", "lab", "sports", "cafeteria", "medical"}},
	{models.CategoryDepartments, models.ResponseTypeDepartments,
		[]string{"department", "departments", "cse", "computer science", "mechanical", "civil", "electronics", "electrical", "chemical", "biotechnology"}},
}

var (
	photoKeywords    = []string{"student", "photo", "picture", "recognize", "camera", "upload"}
	greetingKeywords = []string{"hi", "hello", "hey", "namaste", "good morning", "good afternoon"}
	thanksKeywords   = []string{"thank", "thanks", "thank you"}
	helpKeywords     = []string{"help", "what can you do", "options"}
	contactKeywords  = []string{"contact", "phone", "email", "address", "where are you", "location"}
)

// IntentRouter decides how a single message is answered. It keeps no state
// between calls apart from the shared random picker.
type IntentRouter struct {
	kb         *models.KnowledgeBase
	matcher    Matcher
	recognizer StudentRecognizer
	formatter  *ResponseFormatter
	picker     Picker
	logger     *zap.Logger
}

func NewIntentRouter(
	kb *models.KnowledgeBase,
	matcher Matcher,
	recognizer StudentRecognizer,
	formatter *ResponseFormatter,
	picker Picker,
	logger *zap.Logger,
) *IntentRouter {
	return &IntentRouter{
		kb:         kb,
		matcher:    matcher,
		recognizer: recognizer,
		formatter:  formatter,
		picker:     picker,
		logger:     logger,
	}
}

// Route answers message. A non-empty image takes precedence over the text.
func (r *IntentRouter) Route(ctx context.Context, message string, image []byte) models.Response {
	if len(image) > 0 {
		return r.recognize(ctx, image)
	}

	lower := strings.ToLower(message)

	if containsAny(lower, photoKeywords...) {
		return models.Response{Text: PhotoPromptMessage, Type: models.ResponseTypePhotoPrompt}
	}

	for _, rule := range categoryRules {
		if containsAny(lower, rule.keywords...) {
			return models.Response{
				Text: r.formatter.CategoryResponse(r.kb, rule.category),
				Type: rule.responseType,
			}
		}
	}

	if answer, score, ok := r.matcher.Query(message); ok && score > MatchThreshold {
		r.logger.Debug("Similarity match", zap.Float64("score", score))
		return models.Response{Text: answer, Type: models.ResponseTypeQA}
	}

	switch {
	case containsAny(lower, greetingKeywords...):
		return models.Response{
			Text: pickString(r.picker, r.kb.Greetings, defaultGreetingMessage),
			Type: models.ResponseTypeGreeting,
		}
	case containsAny(lower, thanksKeywords...):
		return models.Response{Text: ThanksMessage, Type: models.ResponseTypeGeneral}
	case containsAny(lower, helpKeywords...):
		return models.Response{Text: HelpMessage, Type: models.ResponseTypeHelp}
	case containsAny(lower, contactKeywords...):
		return models.Response{Text: ContactMessage, Type: models.ResponseTypeContact}
	}

	return models.Response{
		Text: pickString(r.picker, r.kb.Fallbacks, defaultFallbackMessage),
		Type: models.ResponseTypeGeneral,
	}
}

func (r *IntentRouter) recognize(ctx context.Context, image []byte) models.Response {
	student, err := r.recognizer.Recognize(ctx, image)
	if err != nil {
		r.logger.Warn("Student recognition failed", zap.Error(err))
		return models.Response{Text: NoStudentRecognized, Type: models.ResponseTypeError}
	}
	if student == nil {
		return models.Response{Text: NoStudentRecognized, Type: models.ResponseTypeError}
	}

	card, err := r.formatter.StudentRecord(student)
	if err != nil {
		r.logger.Error("Failed to format student record", zap.Error(err))
		return models.Response{Text: ErrorApologyMessage, Type: models.ResponseTypeError}
	}
	return models.Response{Text: card, Type: models.ResponseTypeStudentRecord}
}
