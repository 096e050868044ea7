package handlers

import (
	"errors"
	"log"
	"strconv"

	"carbontrack/internal/models"
	"carbontrack/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// FootprintHandler handles HTTP requests for footprint calculations,
// history, and report data.
type FootprintHandler struct {
	footprintService *services.FootprintService
	reportService    *services.ReportService
}

// NewFootprintHandler creates a new FootprintHandler.
func NewFootprintHandler(footprintService *services.FootprintService, reportService *services.ReportService) *FootprintHandler {
	return &FootprintHandler{
		footprintService: footprintService,
		reportService:    reportService,
	}
}

// RegisterRoutes registers the footprint routes. All of them require an
// authenticated user, so register under a JWT-protected group.
func (h *FootprintHandler) RegisterRoutes(router fiber.Router) {
	footprintRoutes := router.Group("/footprints")
	footprintRoutes.Post("/", h.HandleCalculate)
	footprintRoutes.Get("/", h.HandleHistory)
	footprintRoutes.Get("/latest", h.HandleLatest)
	footprintRoutes.Get("/:id/report", h.HandleReport)
}

// HandleCalculate computes a footprint from the submitted activity data and
// persists the result.
func (h *FootprintHandler) HandleCalculate(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(int64)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Not authenticated",
		})
	}

	var input models.CalculationInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing calculation request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	record, err := h.footprintService.Calculate(userID, input)
	if err != nil {
		log.Printf("Error calculating footprint for user %d: %v", userID, err)
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"errors":  validationMessages(validationErrors),
			})
		}
		if errors.Is(err, models.ErrNonFiniteResult) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Calculation produced a non-finite value",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not save calculation",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(record)
}

// HandleHistory returns all of the user's footprint records.
func (h *FootprintHandler) HandleHistory(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(int64)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Not authenticated",
		})
	}

	records, err := h.footprintService.History(userID)
	if err != nil {
		log.Printf("Error getting history for user %d: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve history",
		})
	}
	return c.JSON(records)
}

// HandleLatest returns the user's most recent footprint record.
func (h *FootprintHandler) HandleLatest(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(int64)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Not authenticated",
		})
	}

	record, err := h.footprintService.Latest(userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "No footprint records yet",
			})
		}
		log.Printf("Error getting latest footprint for user %d: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve latest footprint",
		})
	}
	return c.JSON(record)
}

// HandleReport returns the report data for one of the user's records.
func (h *FootprintHandler) HandleReport(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(int64)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Not authenticated",
		})
	}

	recordID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid record id",
		})
	}

	report, err := h.reportService.Generate(userID, recordID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Footprint record not found",
			})
		}
		log.Printf("Error generating report for record %d: %v", recordID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not generate report",
		})
	}
	return c.JSON(report)
}
