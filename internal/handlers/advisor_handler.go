package handlers

import (
	"log"

	"carbontrack/pkg/advisor"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AdvisorHandler exposes the sustainability chat assistant. The advisor is
// an optional external collaborator; when it is not configured the endpoint
// reports unavailability instead of failing elsewhere.
type AdvisorHandler struct {
	client   *advisor.Client
	validate *validator.Validate
}

// NewAdvisorHandler creates a new AdvisorHandler. client may be nil.
func NewAdvisorHandler(client *advisor.Client) *AdvisorHandler {
	return &AdvisorHandler{
		client:   client,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the advisor routes.
func (h *AdvisorHandler) RegisterRoutes(router fiber.Router) {
	advisorRoutes := router.Group("/advisor")
	advisorRoutes.Post("/chat", h.HandleChat)
}

// ChatRequest represents the request body for an advisor conversation turn.
type ChatRequest struct {
	Message string            `json:"message" validate:"required"`
	History []advisor.Message `json:"history" validate:"dive"`
}

// HandleChat forwards the user's message to the advisory service.
func (h *AdvisorHandler) HandleChat(c *fiber.Ctx) error {
	if h.client == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"message": "Advisor is not configured",
		})
	}

	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing chat request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	reply, err := h.client.Chat(c.Context(), req.Message, req.History)
	if err != nil {
		log.Printf("Advisor request failed: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message": "Advisor is currently unavailable",
		})
	}

	return c.JSON(fiber.Map{
		"reply": reply,
	})
}
