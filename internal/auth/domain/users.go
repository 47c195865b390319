package domain

import "context"

//go:generate mockgen -destination=../../../gen/mocks/auth/auth.go -package=mocks . UsersRepository,PasswordHasher

// UsersRepository stores logins. CreateUser fails with UsernameTakenError when the name is registered,
// UpsertUser replaces the stored hash instead.
type UsersRepository interface {
	CreateUser(ctx context.Context, username, hashedPassword string) (UserInfo, error)
	UpsertUser(ctx context.Context, username, hashedPassword string) (UserInfo, error)
	TryGetUserInfo(ctx context.Context, username string) (UserInfo, bool, error)
}

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	VerifyPassword(password, hashedPassword string) (bool, error)
}

// UserInfo is a registered login. Username doubles as the ledger account the user acts as.
type UserInfo struct {
	ID           int
	Username     string
	PasswordHash string
}
