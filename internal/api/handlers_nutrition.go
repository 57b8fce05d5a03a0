package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclesense/internal/services"
)

func (handler *Handler) CalculateNutritionPlan(c *fiber.Ctx) error {
	request := nutritionPlanRequest{}
	if ok, err := handler.parseAndValidate(c, &request); !ok {
		return err
	}

	plan, err := handler.nutritionService.Plan(request.profile())
	if err != nil {
		return respondEngineError(c, err)
	}
	return c.JSON(plan)
}

func (handler *Handler) GetPhaseTip(c *fiber.Ctx) error {
	cycleDay, err := strconv.Atoi(c.Params("cycle_day"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "cycle_day must be a whole number")
	}

	query := phaseTipQuery{}
	if err := c.QueryParser(&query); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := handler.validate.Struct(query); err != nil {
		return apiError(c, fiber.StatusBadRequest, validationMessage(err))
	}
	if query.CycleLength == 0 {
		query.CycleLength = services.DefaultCycleLength
	}

	tip, err := handler.nutritionService.PhaseTip(cycleDay, query.CycleLength)
	if err != nil {
		return respondEngineError(c, err)
	}
	return c.JSON(tip)
}

func (handler *Handler) GetEssentialNutrients(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"nutrients": handler.nutritionService.EssentialNutrients()})
}

func (handler *Handler) GenerateNutritionAlerts(c *fiber.Ctx) error {
	request := nutritionAlertsRequest{}
	if ok, err := handler.parseAndValidate(c, &request); !ok {
		return err
	}

	alerts := handler.nutritionService.Alerts(request.snapshots())
	recordNutritionAlerts(alerts)
	return c.JSON(fiber.Map{"alerts": alerts})
}
