package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclesense/internal/models"
	"github.com/terraincognita07/cyclesense/internal/services"
)

const (
	trendSourcePosted = "posted"
	trendSourceStored = "stored"
)

// thyroidLogView renders the stored date as a plain calendar day.
type thyroidLogView struct {
	models.ThyroidLog
	Date string `json:"date"`
}

func newThyroidLogView(entry models.ThyroidLog, location *time.Location) thyroidLogView {
	return thyroidLogView{
		ThyroidLog: entry,
		Date:       services.DateAtLocation(entry.Date, location).Format(services.DayLayout),
	}
}

func (handler *Handler) AnalyzeThyroidLogs(c *fiber.Ctx) error {
	request := thyroidAnalyzeRequest{}
	if ok, err := handler.parseAndValidate(c, &request); !ok {
		return err
	}

	logs := make([]models.ThyroidLog, 0, len(request.Logs))
	for _, input := range request.Logs {
		entry, err := input.toModel(handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "date must be a YYYY-MM-DD date")
		}
		logs = append(logs, entry)
	}

	analysis := handler.thyroidService.Analyze(logs)
	recordTrendAnalysis(trendSourcePosted, analysis.Status)
	return c.JSON(analysis)
}

func (handler *Handler) UpsertThyroidLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := thyroidLogInput{}
	if ok, err := handler.parseAndValidate(c, &input); !ok {
		return err
	}
	if input.Date == "" {
		return apiError(c, fiber.StatusBadRequest, "date is required")
	}

	entry, err := input.toModel(handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "date must be a YYYY-MM-DD date")
	}

	saved, created, err := handler.thyroidService.UpsertLog(user.ID, entry, handler.location)
	if err != nil {
		return respondEngineError(c, err)
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(newThyroidLogView(saved, handler.location))
}

func (handler *Handler) ListThyroidLogs(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	from, to, ok, err := handler.parseThyroidRange(c)
	if !ok {
		return err
	}

	var fromPtr, toPtr *time.Time
	if !from.IsZero() {
		fromPtr = &from
	}
	if !to.IsZero() {
		toPtr = &to
	}

	logs, err := handler.thyroidService.ListLogs(user.ID, fromPtr, toPtr, handler.location)
	if err != nil {
		return respondEngineError(c, err)
	}

	views := make([]thyroidLogView, 0, len(logs))
	for _, entry := range logs {
		views = append(views, newThyroidLogView(entry, handler.location))
	}
	return c.JSON(fiber.Map{"logs": views})
}

func (handler *Handler) DeleteThyroidLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := services.ParseDay(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "date must be a YYYY-MM-DD date")
	}

	if err := handler.thyroidService.DeleteLog(user.ID, day, handler.location); err != nil {
		return respondEngineError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) AnalyzeStoredThyroidLogs(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	from, to, ok, err := handler.parseThyroidRange(c)
	if !ok {
		return err
	}

	analysis, err := handler.thyroidService.AnalyzeStoredLogs(user.ID, from, to, handler.location)
	if err != nil {
		return respondEngineError(c, err)
	}
	recordTrendAnalysis(trendSourceStored, analysis.Status)
	return c.JSON(analysis)
}

// parseThyroidRange returns zero times for missing bounds.
func (handler *Handler) parseThyroidRange(c *fiber.Ctx) (time.Time, time.Time, bool, error) {
	query := thyroidRangeQuery{}
	if err := c.QueryParser(&query); err != nil {
		return time.Time{}, time.Time{}, false, apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := handler.validate.Struct(query); err != nil {
		return time.Time{}, time.Time{}, false, apiError(c, fiber.StatusBadRequest, validationMessage(err))
	}

	var from, to time.Time
	var err error
	if query.From != "" {
		if from, err = services.ParseDay(query.From, handler.location); err != nil {
			return time.Time{}, time.Time{}, false, apiError(c, fiber.StatusBadRequest, "from must be a YYYY-MM-DD date")
		}
	}
	if query.To != "" {
		if to, err = services.ParseDay(query.To, handler.location); err != nil {
			return time.Time{}, time.Time{}, false, apiError(c, fiber.StatusBadRequest, "to must be a YYYY-MM-DD date")
		}
	}
	return from, to, true, nil
}
