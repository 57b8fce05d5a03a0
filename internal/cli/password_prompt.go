package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var errNotTerminal = errors.New("stdin is not a terminal")

// promptPassword reads one line with echo disabled. Piped input falls back to
// a plain line read so scripted account creation keeps working.
func promptPassword(label string, stdin *os.File, reader *bufio.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, label)

	raw, err := readPasswordNoEcho(stdin)
	if errors.Is(err, errNotTerminal) {
		raw, err = readPromptLine(reader)
	} else {
		fmt.Fprintln(out)
	}
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(raw), nil
}

func readPromptLine(reader *bufio.Reader) ([]byte, error) {
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if line == "" && errors.Is(err, io.EOF) {
		return nil, io.ErrUnexpectedEOF
	}
	return []byte(strings.TrimRight(line, "\r\n")), nil
}
