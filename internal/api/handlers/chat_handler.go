package handlers

import (
	"context"
	"encoding/base64"
	"strings"
	"time"

	"campusbot/internal/dto"
	"campusbot/internal/models"
	"campusbot/internal/service"
	"campusbot/pkg/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ChatService interface {
	Respond(ctx context.Context, message string, image []byte) models.Response
	Stats() service.KnowledgeStats
}

type ChatHandler struct {
	chatService ChatService
	validate    *validator.Validate
	now         func() time.Time
	logger      *zap.Logger
}

func NewChatHandler(chatService ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		validate:    validator.New(),
		now:         time.Now,
		logger:      logger,
	}
}

// Chat godoc
// @Summary Ask the campus assistant
// @Description Answers a free-text question, or returns a student record when a photo is attached
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Message and optional base64 image"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} map[string]string
// @Router /api/chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Message is too long",
		})
	}

	image := decodeImage(req.Image)
	h.logger.Info("Chat message received",
		zap.String("request_id", middleware.RequestID(c)),
		zap.Int("message_length", len(req.Message)),
		zap.Bool("has_image", len(image) > 0),
	)

	resp := h.chatService.Respond(c.UserContext(), req.Message, image)

	return c.JSON(dto.ChatResponse{
		Reply:     resp.Text,
		Type:      string(resp.Type),
		Timestamp: h.now().Format("15:04"),
	})
}

// Suggestions godoc
// @Summary Suggested questions
// @Tags chat
// @Produce json
// @Success 200 {object} dto.SuggestionsResponse
// @Router /api/suggestions [get]
func (h *ChatHandler) Suggestions(c *fiber.Ctx) error {
	return c.JSON(dto.SuggestionsResponse{Suggestions: service.Suggestions})
}

// KnowledgeStats godoc
// @Summary Knowledge base statistics
// @Tags chat
// @Produce json
// @Success 200 {object} dto.KnowledgeStatsResponse
// @Router /api/knowledge [get]
func (h *ChatHandler) KnowledgeStats(c *fiber.Ctx) error {
	stats := h.chatService.Stats()
	return c.JSON(dto.KnowledgeStatsResponse{
		QAPairs:        stats.QAPairs,
		Admissions:     stats.Categories[models.CategoryAdmissions],
		Courses:        stats.Categories[models.CategoryCourses],
		FeeStructure:   stats.Categories[models.CategoryFeeStructure],
		Placements:     stats.Categories[models.CategoryPlacements],
		Facilities:     stats.Categories[models.CategoryFacilities],
		Departments:    stats.Categories[models.CategoryDepartments],
		CorpusSize:     stats.CorpusSize,
		VocabularySize: stats.VocabularySize,
	})
}

// decodeImage accepts raw base64 or a data URL. Payloads that fail to decode
// are passed through unchanged; only presence matters to recognition.
func decodeImage(payload string) []byte {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil
	}

	encoded := payload
	if strings.HasPrefix(encoded, "data:") {
		if idx := strings.Index(encoded, ","); idx >= 0 {
			encoded = encoded[idx+1:]
		}
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || len(data) == 0 {
		return []byte(payload)
	}
	return data
}
