package application

import (
	"context"
	"errors"
	"time"

	"github.com/Lexv0lk/token-store/internal/auth/domain"
	"github.com/Lexv0lk/token-store/internal/pkg/jwt"
)

const DefaultTokenTimeLimit = time.Hour

type Authenticator struct {
	usersRepository domain.UsersRepository
	passwordHasher  domain.PasswordHasher
	tokenIssuer     jwt.TokenIssuer
	secretKey       []byte
	tokenTimeLimit  time.Duration
	reserved        map[string]struct{}
}

// NewAuthenticator builds the login flow. reservedUsernames can only log in after ProvisionUser
// has stored their credentials; a first login never registers them.
func NewAuthenticator(
	usersRepository domain.UsersRepository,
	passwordHasher domain.PasswordHasher,
	tokenIssuer jwt.TokenIssuer,
	secretKey string,
	reservedUsernames ...string,
) *Authenticator {
	reserved := make(map[string]struct{}, len(reservedUsernames))
	for _, username := range reservedUsernames {
		reserved[username] = struct{}{}
	}

	return &Authenticator{
		usersRepository: usersRepository,
		passwordHasher:  passwordHasher,
		tokenIssuer:     tokenIssuer,
		secretKey:       []byte(secretKey),
		tokenTimeLimit:  DefaultTokenTimeLimit,
		reserved:        reserved,
	}
}

// ProvisionUser stores username with password, replacing any password it had.
func (a *Authenticator) ProvisionUser(ctx context.Context, username, password string) error {
	if err := domain.ValidateCredentials(username, password); err != nil {
		return err
	}

	hashedPassword, err := a.passwordHasher.HashPassword(password)
	if err != nil {
		return err
	}

	_, err = a.usersRepository.UpsertUser(ctx, username, hashedPassword)
	return err
}

// Authenticate logs an existing user in or registers the username on first use.
// The issued token speaks for the ledger account named by username.
func (a *Authenticator) Authenticate(ctx context.Context, username, password string) (string, error) {
	if err := domain.ValidateCredentials(username, password); err != nil {
		return "", err
	}

	userInfo, found, err := a.usersRepository.TryGetUserInfo(ctx, username)
	if err != nil {
		return "", err
	}

	if !found {
		if _, isReserved := a.reserved[username]; isReserved {
			return "", &domain.CredentialsMismatchError{Msg: "username or password is incorrect"}
		}

		userInfo, err = a.register(ctx, username, password)
		if errors.Is(err, &domain.UsernameTakenError{}) {
			// A concurrent first login won the insert; fall back to verifying against it.
			userInfo, found, err = a.usersRepository.TryGetUserInfo(ctx, username)
			if err == nil && !found {
				err = &domain.CredentialsMismatchError{Msg: "username or password is incorrect"}
			}
			if err == nil {
				err = a.verify(password, userInfo)
			}
		}
	} else {
		err = a.verify(password, userInfo)
	}

	if err != nil {
		return "", err
	}

	return a.tokenIssuer.IssueToken(a.secretKey, userInfo.ID, userInfo.Username, a.tokenTimeLimit)
}

func (a *Authenticator) register(ctx context.Context, username, password string) (domain.UserInfo, error) {
	hashedPassword, err := a.passwordHasher.HashPassword(password)
	if err != nil {
		return domain.UserInfo{}, err
	}

	return a.usersRepository.CreateUser(ctx, username, hashedPassword)
}

func (a *Authenticator) verify(password string, userInfo domain.UserInfo) error {
	valid, err := a.passwordHasher.VerifyPassword(password, userInfo.PasswordHash)
	if err != nil {
		return err
	}

	if !valid {
		return &domain.CredentialsMismatchError{Msg: "username or password is incorrect"}
	}

	return nil
}
