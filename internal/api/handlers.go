package api

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/terraincognita07/cyclesense/internal/db"
	"github.com/terraincognita07/cyclesense/internal/services"
	"gorm.io/gorm"
)

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

type Handler struct {
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	now          func() time.Time
	validate     *validator.Validate
	loginLimiter *attemptLimiter

	authService      *services.AuthService
	nutritionService *services.NutritionService
	thyroidService   *services.ThyroidService
	pcosService      *services.PCOSService
}

func NewHandler(database *gorm.DB, rulebook *services.RuleBook, secret string, location *time.Location, cookieSecure bool) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if rulebook == nil {
		return nil, errors.New("rule book is required")
	}
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("secret key is required")
	}
	if location == nil {
		location = time.UTC
	}

	repositories := db.NewRepositories(database)
	return &Handler{
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
		now:          time.Now,
		validate:     newRequestValidator(),
		loginLimiter: newAttemptLimiter(loginAttemptLimit, loginAttemptWindow),

		authService:      services.NewAuthService(repositories.Users),
		nutritionService: services.NewNutritionService(rulebook),
		thyroidService:   services.NewThyroidService(rulebook, repositories.ThyroidLogs),
		pcosService:      services.NewPCOSService(rulebook),
	}, nil
}
