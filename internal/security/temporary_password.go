package security

import (
	"crypto/rand"
	"math/big"
)

const (
	MinTemporaryPasswordLength     = 10
	DefaultTemporaryPasswordLength = 12
)

// Look-alike characters (0/O, 1/l/I) are left out so operators can read the
// password aloud.
const (
	temporaryUpper    = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	temporaryLower    = "abcdefghijkmnopqrstuvwxyz"
	temporaryDigits   = "23456789"
	TemporaryAlphabet = temporaryUpper + temporaryLower + temporaryDigits
)

// TemporaryPassword returns a random password of at least
// MinTemporaryPasswordLength characters from TemporaryAlphabet. It always
// holds an upper-case letter, a lower-case letter and a digit, so it passes
// the account password policy.
func TemporaryPassword(length int) (string, error) {
	if length < MinTemporaryPasswordLength {
		length = MinTemporaryPasswordLength
	}

	password := make([]byte, 0, length)
	for _, class := range []string{temporaryUpper, temporaryLower, temporaryDigits} {
		char, err := randomChar(class)
		if err != nil {
			return "", err
		}
		password = append(password, char)
	}
	for len(password) < length {
		char, err := randomChar(TemporaryAlphabet)
		if err != nil {
			return "", err
		}
		password = append(password, char)
	}

	// Fisher-Yates, so the guaranteed classes do not sit at fixed positions.
	for index := len(password) - 1; index > 0; index-- {
		swap, err := randomIndex(index + 1)
		if err != nil {
			return "", err
		}
		password[index], password[swap] = password[swap], password[index]
	}

	return string(password), nil
}

func randomChar(alphabet string) (byte, error) {
	index, err := randomIndex(len(alphabet))
	if err != nil {
		return 0, err
	}
	return alphabet[index], nil
}

func randomIndex(upper int) (int, error) {
	position, err := rand.Int(rand.Reader, big.NewInt(int64(upper)))
	if err != nil {
		return 0, err
	}
	return int(position.Int64()), nil
}
