package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclesense/internal/models"
	"github.com/terraincognita07/cyclesense/internal/services"
)

type sessionResponse struct {
	Token              string `json:"token"`
	UserID             uint   `json:"user_id"`
	Email              string `json:"email"`
	DisplayName        string `json:"display_name"`
	MustChangePassword bool   `json:"must_change_password"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	request := registerRequest{}
	if ok, err := handler.parseAndValidate(c, &request); !ok {
		return err
	}

	user, err := handler.authService.Register(request.Email, request.Password, request.DisplayName)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAuthCredentialsInvalid):
			return apiError(c, fiber.StatusBadRequest, "invalid input")
		case errors.Is(err, services.ErrWeakPassword):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrAuthEmailTaken):
			return apiError(c, fiber.StatusConflict, "email already exists")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to create account")
		}
	}

	return handler.respondSession(c, fiber.StatusCreated, &user, false)
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	request := loginRequest{}
	if ok, err := handler.parseAndValidate(c, &request); !ok {
		return err
	}

	limiterKey := loginLimiterKey(c, request.Email)
	now := handler.now()
	if handler.loginLimiter.blocked(limiterKey, now) {
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	user, err := handler.authService.Authenticate(request.Email, request.Password)
	if err != nil {
		if errors.Is(err, services.ErrAuthCredentialsInvalid) {
			handler.loginLimiter.addFailure(limiterKey, now)
			return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to sign in")
	}
	handler.loginLimiter.reset(limiterKey)

	return handler.respondSession(c, fiber.StatusOK, &user, request.RememberMe)
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	request := changePasswordRequest{}
	if ok, err := handler.parseAndValidate(c, &request); !ok {
		return err
	}

	err := handler.authService.ChangePassword(user.ID, request.CurrentPassword, request.NewPassword, request.ConfirmPassword)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPasswordChangeInvalid):
			return apiError(c, fiber.StatusBadRequest, "invalid input")
		case errors.Is(err, services.ErrPasswordMismatch):
			return apiError(c, fiber.StatusBadRequest, "password mismatch")
		case errors.Is(err, services.ErrInvalidCurrentPassword):
			return apiError(c, fiber.StatusUnauthorized, "invalid current password")
		case errors.Is(err, services.ErrNewPasswordMustDiffer):
			return apiError(c, fiber.StatusBadRequest, "new password must differ")
		case errors.Is(err, services.ErrWeakPassword):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to update password")
		}
	}

	user.MustChangePassword = false
	// A fresh token keeps the session alive after the password changed.
	return handler.respondSession(c, fiber.StatusOK, user, false)
}

func (handler *Handler) DeleteAccount(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	request := deleteAccountRequest{}
	if ok, err := handler.parseAndValidate(c, &request); !ok {
		return err
	}

	if err := handler.authService.DeleteAccount(user.ID, request.Password); err != nil {
		if errors.Is(err, services.ErrInvalidCurrentPassword) {
			return apiError(c, fiber.StatusUnauthorized, "invalid current password")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete account")
	}

	handler.clearAuthCookie(c)
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) respondSession(c *fiber.Ctx, status int, user *models.User, rememberMe bool) error {
	token, err := handler.setAuthCookie(c, user, rememberMe)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Status(status).JSON(sessionResponse{
		Token:              token,
		UserID:             user.ID,
		Email:              user.Email,
		DisplayName:        user.DisplayName,
		MustChangePassword: user.MustChangePassword,
	})
}

