package domain

import (
	"fmt"

	"github.com/alexedwards/argon2id"
)

// DefaultArgonParams follow the OWASP minimum for argon2id (19 MiB, 2 passes).
var DefaultArgonParams = argon2id.Params{
	Memory:      19 * 1024,
	Iterations:  2,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

type ArgonPasswordHasher struct {
	params argon2id.Params
}

func NewArgonPasswordHasher() *ArgonPasswordHasher {
	return &ArgonPasswordHasher{
		params: DefaultArgonParams,
	}
}

// NewArgonPasswordHasherWithParams is used by tests and low-memory deployments to trade strength for speed.
func NewArgonPasswordHasherWithParams(params argon2id.Params) (*ArgonPasswordHasher, error) {
	if params.Memory == 0 || params.Iterations == 0 || params.Parallelism == 0 {
		return nil, fmt.Errorf("argon2id memory, iterations and parallelism must be positive")
	}
	if params.SaltLength < 8 || params.KeyLength < 16 {
		return nil, fmt.Errorf("argon2id salt must be at least 8 bytes and key at least 16 bytes")
	}

	return &ArgonPasswordHasher{
		params: params,
	}, nil
}

func (ph *ArgonPasswordHasher) HashPassword(password string) (string, error) {
	return argon2id.CreateHash(password, &ph.params)
}

// VerifyPassword reads the parameters from hashedPassword, so hashes made with older parameters keep working.
func (ph *ArgonPasswordHasher) VerifyPassword(password, hashedPassword string) (bool, error) {
	return argon2id.ComparePasswordAndHash(password, hashedPassword)
}
