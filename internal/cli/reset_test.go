package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/terraincognita07/cyclesense/internal/db"
	"github.com/terraincognita07/cyclesense/internal/security"
	"github.com/terraincognita07/cyclesense/internal/services"
	"gorm.io/gorm"
)

func openCLITestDatabase(t *testing.T) (*gorm.DB, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cyclesense-cli-test.db")
	database, err := db.OpenSQLite(path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		closeDatabase(database)
	})
	return database, path
}

func TestResetPasswordFlagsUserAndAcceptsTemporaryPassword(t *testing.T) {
	database, _ := openCLITestDatabase(t)
	auth := services.NewAuthService(db.NewUserRepository(database))
	if _, err := auth.Register("reset@example.com", "StrongPass1", ""); err != nil {
		t.Fatalf("register user: %v", err)
	}

	temporaryPassword, err := ResetPassword(database, "  RESET@example.com ")
	if err != nil {
		t.Fatalf("ResetPassword returned error: %v", err)
	}
	if len(temporaryPassword) != security.DefaultTemporaryPasswordLength {
		t.Fatalf("expected temporary password of %d chars, got %d", security.DefaultTemporaryPasswordLength, len(temporaryPassword))
	}
	if err := services.ValidatePasswordStrength(temporaryPassword); err != nil {
		t.Fatalf("expected temporary password to satisfy the password policy: %v", err)
	}

	user, err := auth.Authenticate("reset@example.com", temporaryPassword)
	if err != nil {
		t.Fatalf("expected temporary password to authenticate: %v", err)
	}
	if !user.MustChangePassword {
		t.Fatal("expected must_change_password after reset")
	}
	if _, err := auth.Authenticate("reset@example.com", "StrongPass1"); err == nil {
		t.Fatal("expected old password to stop working")
	}
}

func TestResetPasswordErrors(t *testing.T) {
	database, _ := openCLITestDatabase(t)

	tests := []struct {
		name    string
		email   string
		wantErr string
	}{
		{name: "empty email", email: "  ", wantErr: "a valid email is required"},
		{name: "malformed email", email: "not-an-email", wantErr: "a valid email is required"},
		{name: "unknown user", email: "ghost@example.com", wantErr: "user ghost@example.com not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResetPassword(database, tt.email)
			if err == nil || err.Error() != tt.wantErr {
				t.Fatalf("expected error %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestRunResetPasswordCommandPrintsTemporaryPassword(t *testing.T) {
	database, path := openCLITestDatabase(t)
	auth := services.NewAuthService(db.NewUserRepository(database))
	if _, err := auth.Register("print@example.com", "StrongPass1", ""); err != nil {
		t.Fatalf("register user: %v", err)
	}

	var out bytes.Buffer
	if err := RunResetPasswordCommand(path, "print@example.com", &out); err != nil {
		t.Fatalf("RunResetPasswordCommand returned error: %v", err)
	}
	if !strings.Contains(out.String(), "Temporary password: ") {
		t.Fatalf("expected temporary password in output, got %q", out.String())
	}
}
