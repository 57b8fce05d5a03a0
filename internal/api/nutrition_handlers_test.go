package api

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclesense/internal/services"
)

func TestCalculateNutritionPlan(t *testing.T) {
	app, _ := newTestApp(t)

	response := sendJSON(t, app, http.MethodPost, "/api/nutrition/calculate", fiber.Map{
		"weight":         60,
		"height":         165,
		"age":            25,
		"activity_level": "moderate",
	}, "")
	expectStatus(t, response, fiber.StatusOK)

	plan := services.NutritionPlan{}
	decodeJSON(t, response, &plan)
	if plan.Calories != 2085 || plan.ProteinG != 156 || plan.CarbsG != 182 || plan.FatsG != 81 {
		t.Fatalf("unexpected plan macros: %+v", plan)
	}
	if plan.WaterLiters != 2.1 || plan.BMI != 22.0 || plan.BMICategory != services.BMINormal {
		t.Fatalf("unexpected plan body metrics: %+v", plan)
	}
}

func TestCalculateNutritionPlanResponseKeys(t *testing.T) {
	app, _ := newTestApp(t)

	response := sendJSON(t, app, http.MethodPost, "/api/nutrition/calculate", fiber.Map{
		"weight":         60,
		"height":         165,
		"age":            25,
		"activity_level": "moderate",
		"goal":           "maintain",
	}, "")
	expectStatus(t, response, fiber.StatusOK)

	body := map[string]any{}
	decodeJSON(t, response, &body)

	for _, key := range []string{"calories", "protein_g", "carbs_g", "fats_g", "water_liters", "bmi", "bmi_category"} {
		if _, ok := body[key]; !ok {
			t.Fatalf("expected key %q in response, got %v", key, body)
		}
	}
	if body["calories"] != float64(2085) || body["fats_g"] != float64(81) {
		t.Fatalf("unexpected calories/fats_g: %v", body)
	}
	for _, key := range []string{"daily_calories", "fat_g"} {
		if _, ok := body[key]; ok {
			t.Fatalf("unexpected key %q in response", key)
		}
	}
}

func TestCalculateNutritionPlanValidation(t *testing.T) {
	app, _ := newTestApp(t)

	base := func() fiber.Map {
		return fiber.Map{"weight": 60, "height": 165, "age": 25, "activity_level": "moderate", "goal": "maintain"}
	}

	tests := []struct {
		name      string
		mutate    func(fiber.Map)
		wantError string
	}{
		{name: "zero weight", mutate: func(m fiber.Map) { m["weight"] = 0 }, wantError: "weight must be greater than 0"},
		{name: "negative height", mutate: func(m fiber.Map) { m["height"] = -5 }, wantError: "height must be greater than 0"},
		{name: "too young", mutate: func(m fiber.Map) { m["age"] = 9 }, wantError: "age must be at least 10"},
		{name: "too old", mutate: func(m fiber.Map) { m["age"] = 101 }, wantError: "age must be at most 100"},
		{name: "unknown activity", mutate: func(m fiber.Map) { m["activity_level"] = "couch" }, wantError: "activity_level is invalid"},
		{name: "missing activity", mutate: func(m fiber.Map) { delete(m, "activity_level") }, wantError: "activity_level is required"},
		{name: "unknown goal", mutate: func(m fiber.Map) { m["goal"] = "bulk" }, wantError: "goal is invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := base()
			tt.mutate(payload)

			response := sendJSON(t, app, http.MethodPost, "/api/nutrition/calculate", payload, "")
			defer response.Body.Close()
			if response.StatusCode != fiber.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", response.StatusCode)
			}
			if got := readAPIError(t, response.Body); got != tt.wantError {
				t.Fatalf("expected error %q, got %q", tt.wantError, got)
			}
		})
	}
}

func TestGetPhaseTip(t *testing.T) {
	app, _ := newTestApp(t)

	tests := []struct {
		name      string
		path      string
		wantPhase services.CyclePhase
		wantDay   int
	}{
		{name: "menstrual", path: "/api/nutrition/tips/3", wantPhase: services.PhaseMenstrual, wantDay: 3},
		{name: "ovulation on day 14", path: "/api/nutrition/tips/14", wantPhase: services.PhaseOvulation, wantDay: 14},
		{name: "wraps past cycle length", path: "/api/nutrition/tips/30", wantPhase: services.PhaseMenstrual, wantDay: 30},
		{name: "custom cycle length", path: "/api/nutrition/tips/16?cycle_length=32", wantPhase: services.PhaseOvulation, wantDay: 16},
		{name: "negative day wraps", path: "/api/nutrition/tips/-1", wantPhase: services.PhaseLuteal, wantDay: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response := sendJSON(t, app, http.MethodGet, tt.path, nil, "")
			expectStatus(t, response, fiber.StatusOK)

			tip := services.PhaseTip{}
			decodeJSON(t, response, &tip)
			if tip.Phase != tt.wantPhase {
				t.Fatalf("expected phase %q, got %q", tt.wantPhase, tip.Phase)
			}
			if tip.CycleDay != tt.wantDay {
				t.Fatalf("expected cycle day %d echoed, got %d", tt.wantDay, tip.CycleDay)
			}
			if tip.Focus == "" || len(tip.FoodsToEat) == 0 || tip.Tip == "" {
				t.Fatalf("expected populated guidance, got %+v", tip.PhaseGuidance)
			}
		})
	}
}

func TestGetPhaseTipRejectsBadInput(t *testing.T) {
	app, _ := newTestApp(t)

	tests := []struct {
		name string
		path string
	}{
		{name: "non numeric day", path: "/api/nutrition/tips/abc"},
		{name: "cycle length too short", path: "/api/nutrition/tips/3?cycle_length=10"},
		{name: "cycle length too long", path: "/api/nutrition/tips/3?cycle_length=60"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response := sendJSON(t, app, http.MethodGet, tt.path, nil, "")
			response.Body.Close()
			if response.StatusCode != fiber.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", response.StatusCode)
			}
		})
	}
}

func TestGetEssentialNutrients(t *testing.T) {
	app, _ := newTestApp(t)

	response := sendJSON(t, app, http.MethodGet, "/api/nutrition/essentials", nil, "")
	expectStatus(t, response, fiber.StatusOK)

	payload := struct {
		Nutrients []services.NutrientInfo `json:"nutrients"`
	}{}
	decodeJSON(t, response, &payload)
	if len(payload.Nutrients) != 6 {
		t.Fatalf("expected 6 nutrients, got %d", len(payload.Nutrients))
	}
	if payload.Nutrients[0].Name != "Iron" {
		t.Fatalf("expected Iron first, got %q", payload.Nutrients[0].Name)
	}
}

func TestGenerateNutritionAlerts(t *testing.T) {
	app, _ := newTestApp(t)

	response := sendJSON(t, app, http.MethodPost, "/api/nutrition/alerts", fiber.Map{
		"symptoms":  fiber.Map{"energy_level": 1, "bloating": 4, "cramps": 0},
		"lifestyle": fiber.Map{"stress_level": 5},
	}, "")
	expectStatus(t, response, fiber.StatusOK)

	payload := struct {
		Alerts []services.NutritionAlert `json:"alerts"`
	}{}
	decodeJSON(t, response, &payload)

	want := []services.AlertType{services.AlertLowEnergy, services.AlertBloating, services.AlertMoodStress}
	if len(payload.Alerts) != len(want) {
		t.Fatalf("expected %d alerts, got %+v", len(want), payload.Alerts)
	}
	for index, alertType := range want {
		if payload.Alerts[index].Type != alertType {
			t.Fatalf("alert %d: expected %q, got %q", index, alertType, payload.Alerts[index].Type)
		}
	}
}

func TestGenerateNutritionAlertsEmptyBody(t *testing.T) {
	app, _ := newTestApp(t)

	response := sendJSON(t, app, http.MethodPost, "/api/nutrition/alerts", fiber.Map{}, "")
	expectStatus(t, response, fiber.StatusOK)

	payload := struct {
		Alerts []services.NutritionAlert `json:"alerts"`
	}{}
	decodeJSON(t, response, &payload)
	if payload.Alerts == nil || len(payload.Alerts) != 0 {
		t.Fatalf("expected an empty alert list, got %#v", payload.Alerts)
	}
}

func TestGenerateNutritionAlertsRejectsOutOfRangeReadings(t *testing.T) {
	app, _ := newTestApp(t)

	response := sendJSON(t, app, http.MethodPost, "/api/nutrition/alerts", fiber.Map{
		"symptoms": fiber.Map{"cramps": 6},
	}, "")
	defer response.Body.Close()
	if response.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
	if got := readAPIError(t, response.Body); got != "symptoms.cramps must be at most 5" {
		t.Fatalf("unexpected error %q", got)
	}
}
