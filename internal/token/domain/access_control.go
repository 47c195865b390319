package domain

import (
	"fmt"

	authdomain "github.com/Lexv0lk/token-store/internal/auth/domain"
)

// MaxAddressLength matches the longest login name, so every account a user can act as is storable.
const MaxAddressLength = authdomain.MaxUsernameLength

// Address identifies an account: a non-empty string of at most MaxAddressLength bytes.
type Address string

// ValidateAddress rejects identities the ledger could not persist. role names the argument in the error.
func ValidateAddress(identity Address, role string) error {
	if identity == "" {
		return &InvalidArgumentsError{Msg: role + " must not be empty"}
	}
	if len(identity) > MaxAddressLength {
		return &InvalidArgumentsError{Msg: fmt.Sprintf("%s is longer than %d bytes", role, MaxAddressLength)}
	}

	return nil
}

type AccessControl struct {
	administrator Address
}

func NewAccessControl(administrator Address) (AccessControl, error) {
	if err := ValidateAddress(administrator, "administrator identity"); err != nil {
		return AccessControl{}, err
	}

	return AccessControl{administrator: administrator}, nil
}

func (ac AccessControl) Administrator() Address {
	return ac.administrator
}

func (ac AccessControl) IsAdministrator(identity Address) bool {
	return identity == ac.administrator
}

func (ac AccessControl) RequireAdministrator(identity Address, operation string) error {
	if !ac.IsAdministrator(identity) {
		return &UnauthorizedError{Msg: fmt.Sprintf("account %q is not allowed to %s", identity, operation)}
	}

	return nil
}
