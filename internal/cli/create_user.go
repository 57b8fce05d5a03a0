package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/terraincognita07/cyclesense/internal/db"
	"github.com/terraincognita07/cyclesense/internal/services"
)

// RunCreateUserCommand bootstraps an account from the terminal, prompting for
// the password twice.
func RunCreateUserCommand(dbPath string, email string, displayName string, stdin *os.File, out io.Writer) error {
	reader := bufio.NewReader(stdin)
	password, err := promptPassword("Password: ", stdin, reader, out)
	if err != nil {
		return err
	}
	confirmation, err := promptPassword("Confirm password: ", stdin, reader, out)
	if err != nil {
		return err
	}
	if password != confirmation {
		return errors.New("passwords do not match")
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	defer closeDatabase(database)

	auth := services.NewAuthService(db.NewUserRepository(database))
	user, err := auth.Register(email, password, displayName)
	if err != nil {
		return describeRegisterError(err)
	}

	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s (id %d)\n", green("Created user"), user.Email, user.ID)
	return nil
}

func describeRegisterError(err error) error {
	switch {
	case errors.Is(err, services.ErrAuthCredentialsInvalid):
		return errors.New("a valid email and password are required")
	case errors.Is(err, services.ErrWeakPassword):
		var policyErr *services.PasswordPolicyError
		if errors.As(err, &policyErr) {
			return fmt.Errorf("password %s", policyErr.Reason)
		}
		return errors.New("password is too weak")
	case errors.Is(err, services.ErrAuthEmailTaken):
		return errors.New("email already registered")
	default:
		return err
	}
}
