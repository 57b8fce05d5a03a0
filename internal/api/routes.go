package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/metrics", MetricsHandler())
	registerAPIRoutes(app, handler)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	settings := api.Group("/settings", handler.AuthRequired)
	settings.Post("/change-password", handler.ChangePassword)
	settings.Delete("/account", handler.DeleteAccount)

	nutrition := api.Group("/nutrition")
	nutrition.Post("/calculate", handler.CalculateNutritionPlan)
	nutrition.Get("/tips/:cycle_day", handler.GetPhaseTip)
	nutrition.Get("/essentials", handler.GetEssentialNutrients)
	nutrition.Post("/alerts", handler.GenerateNutritionAlerts)

	thyroid := api.Group("/thyroid")
	thyroid.Post("/risk-assessment", handler.AssessThyroidRisk)
	thyroid.Post("/analyze", handler.AnalyzeThyroidLogs)

	thyroidLogs := thyroid.Group("/logs", handler.AuthRequired)
	thyroidLogs.Get("", handler.ListThyroidLogs)
	thyroidLogs.Post("", handler.UpsertThyroidLog)
	thyroidLogs.Get("/analysis", handler.AnalyzeStoredThyroidLogs)
	thyroidLogs.Delete("/:date", handler.DeleteThyroidLog)

	pcos := api.Group("/pcos")
	pcos.Post("/risk-assessment", handler.AssessPCOSRisk)

	cycles := api.Group("/cycles")
	cycles.Post("/predict", handler.PredictCycle)
}
