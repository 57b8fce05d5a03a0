package cli

import (
	"bufio"
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/terraincognita07/cyclesense/internal/db"
	"github.com/terraincognita07/cyclesense/internal/services"
)

func pipedStdin(t *testing.T, input string) *os.File {
	t.Helper()

	reader, writer, err := os.Pipe()
	if err != nil {
		t.Fatalf("create pipe: %v", err)
	}
	if _, err := writer.WriteString(input); err != nil {
		t.Fatalf("write pipe: %v", err)
	}
	_ = writer.Close()
	t.Cleanup(func() {
		_ = reader.Close()
	})
	return reader
}

func TestRunCreateUserCommandFromPipedInput(t *testing.T) {
	database, path := openCLITestDatabase(t)

	var out bytes.Buffer
	stdin := pipedStdin(t, "StrongPass1\nStrongPass1\n")
	if err := RunCreateUserCommand(path, "New@Example.com", "New User", stdin, &out); err != nil {
		t.Fatalf("RunCreateUserCommand returned error: %v", err)
	}
	if !strings.Contains(out.String(), "new@example.com") {
		t.Fatalf("expected created email in output, got %q", out.String())
	}

	auth := services.NewAuthService(db.NewUserRepository(database))
	user, err := auth.Authenticate("new@example.com", "StrongPass1")
	if err != nil {
		t.Fatalf("expected created user to authenticate: %v", err)
	}
	if user.DisplayName != "New User" {
		t.Fatalf("expected display name to be stored, got %q", user.DisplayName)
	}
}

func TestRunCreateUserCommandErrors(t *testing.T) {
	_, path := openCLITestDatabase(t)

	tests := []struct {
		name    string
		email   string
		input   string
		wantErr string
	}{
		{name: "mismatch", email: "a@example.com", input: "StrongPass1\nStrongPass2\n", wantErr: "passwords do not match"},
		{name: "weak password", email: "b@example.com", input: "weak\nweak\n", wantErr: "password needs at least 8 characters"},
		{name: "missing confirmation", email: "c@example.com", input: "StrongPass1\n", wantErr: "read password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := RunCreateUserCommand(path, tt.email, "", pipedStdin(t, tt.input), &out)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestReadPromptLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "unix newline", input: "secret\n", want: "secret"},
		{name: "windows newline", input: "secret\r\n", want: "secret"},
		{name: "no trailing newline", input: "secret", want: "secret"},
		{name: "empty input", input: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := readPromptLine(bufio.NewReader(strings.NewReader(tt.input)))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Fatalf("readPromptLine = %q, want %q", string(got), tt.want)
			}
		})
	}
}
