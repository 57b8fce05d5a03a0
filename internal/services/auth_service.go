package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/terraincognita07/cyclesense/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrAuthEmailTaken         = errors.New("auth email already registered")
	ErrAuthRegisterFailed     = errors.New("auth register failed")
	ErrAuthLookupFailed       = errors.New("auth lookup failed")
	ErrAuthUserNotFound       = errors.New("auth user not found")
	ErrPasswordChangeInvalid  = errors.New("password change invalid input")
	ErrPasswordMismatch       = errors.New("password confirmation mismatch")
	ErrInvalidCurrentPassword = errors.New("invalid current password")
	ErrNewPasswordMustDiffer  = errors.New("new password must differ")
	ErrPasswordUpdateFailed   = errors.New("password update failed")
	ErrAccountDeleteFailed    = errors.New("account delete failed")
)

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
	UpdatePassword(userID uint, passwordHash string, mustChangePassword bool) error
	DeleteAccountAndRelatedData(userID uint) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

func (service *AuthService) Register(emailRaw string, passwordRaw string, displayName string) (models.User, error) {
	email, password, err := NormalizeCredentialsInput(emailRaw, passwordRaw)
	if err != nil {
		return models.User{}, err
	}
	if err := ValidatePasswordStrength(password); err != nil {
		return models.User{}, err
	}

	exists, err := service.users.ExistsByNormalizedEmail(email)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrAuthLookupFailed, err)
	}
	if exists {
		return models.User{}, ErrAuthEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrAuthRegisterFailed, err)
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  NormalizeDisplayName(displayName),
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrAuthRegisterFailed, err)
	}
	return user, nil
}

// Authenticate answers ErrAuthCredentialsInvalid for both an unknown email and
// a wrong password.
func (service *AuthService) Authenticate(emailRaw string, passwordRaw string) (models.User, error) {
	email, password, err := NormalizeCredentialsInput(emailRaw, passwordRaw)
	if err != nil {
		return models.User{}, err
	}

	user, err := service.users.FindByNormalizedEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrAuthCredentialsInvalid
		}
		return models.User{}, fmt.Errorf("%w: %v", ErrAuthLookupFailed, err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrAuthCredentialsInvalid
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrAuthUserNotFound
		}
		return models.User{}, fmt.Errorf("%w: %v", ErrAuthLookupFailed, err)
	}
	return user, nil
}

func (service *AuthService) ChangePassword(userID uint, currentPassword string, newPassword string, confirmPassword string) error {
	user, err := service.FindByID(userID)
	if err != nil {
		return err
	}
	if err := ValidatePasswordChange(user.PasswordHash, currentPassword, newPassword, confirmPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(strings.TrimSpace(newPassword)), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPasswordUpdateFailed, err)
	}
	if err := service.users.UpdatePassword(userID, string(hash), false); err != nil {
		return fmt.Errorf("%w: %v", ErrPasswordUpdateFailed, err)
	}
	return nil
}

// DeleteAccount removes the user and every stored log after re-checking the
// password.
func (service *AuthService) DeleteAccount(userID uint, password string) error {
	user, err := service.FindByID(userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(strings.TrimSpace(password))) != nil {
		return ErrInvalidCurrentPassword
	}
	if err := service.users.DeleteAccountAndRelatedData(userID); err != nil {
		return fmt.Errorf("%w: %v", ErrAccountDeleteFailed, err)
	}
	return nil
}

func ValidatePasswordChange(passwordHash string, currentPassword string, newPassword string, confirmPassword string) error {
	currentPassword = strings.TrimSpace(currentPassword)
	newPassword = strings.TrimSpace(newPassword)
	confirmPassword = strings.TrimSpace(confirmPassword)

	if currentPassword == "" || newPassword == "" || confirmPassword == "" {
		return ErrPasswordChangeInvalid
	}
	if newPassword != confirmPassword {
		return ErrPasswordMismatch
	}
	if bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(currentPassword)) != nil {
		return ErrInvalidCurrentPassword
	}
	if currentPassword == newPassword {
		return ErrNewPasswordMustDiffer
	}
	return ValidatePasswordStrength(newPassword)
}
