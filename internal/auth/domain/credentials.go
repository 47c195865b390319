package domain

import (
	"fmt"
	"unicode"
)

const MaxUsernameLength = 64

// ValidateCredentials rejects usernames that cannot serve as ledger accounts.
func ValidateCredentials(username, password string) error {
	if username == "" || password == "" {
		return &InvalidCredentialsError{Msg: "username and password are required"}
	}

	if len(username) > MaxUsernameLength {
		return &InvalidCredentialsError{Msg: fmt.Sprintf("username is longer than %d bytes", MaxUsernameLength)}
	}

	for _, r := range username {
		if unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return &InvalidCredentialsError{Msg: "username contains whitespace or unprintable characters"}
		}
	}

	return nil
}
