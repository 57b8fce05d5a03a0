package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclesense/internal/services"
)

func (handler *Handler) AssessThyroidRisk(c *fiber.Ctx) error {
	request := services.ThyroidIndicators{}
	if ok, err := handler.parseAndValidate(c, &request); !ok {
		return err
	}

	result := handler.thyroidService.AssessRisk(request)
	recordRiskAssessment("thyroid", result.Level)
	return c.JSON(result)
}

func (handler *Handler) AssessPCOSRisk(c *fiber.Ctx) error {
	request := pcosRiskRequest{}
	if ok, err := handler.parseAndValidate(c, &request); !ok {
		return err
	}

	result := handler.pcosService.AssessRisk(request.indicators())
	recordRiskAssessment("pcos", result.Level)
	return c.JSON(result)
}

func (handler *Handler) PredictCycle(c *fiber.Ctx) error {
	request := cyclePredictionRequest{}
	if ok, err := handler.parseAndValidate(c, &request); !ok {
		return err
	}

	lastPeriod, err := services.ParseDay(request.LastPeriodDate, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "last_period_date must be a YYYY-MM-DD date")
	}

	prediction, err := services.PredictNextCycle(request.PastCycles, lastPeriod)
	if err != nil {
		return respondEngineError(c, err)
	}
	return c.JSON(prediction)
}
