package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/token-store/internal/auth/domain"
	"github.com/Lexv0lk/token-store/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

type UsersRepository struct {
	querier database.Querier
}

func NewUsersRepository(querier database.Querier) *UsersRepository {
	return &UsersRepository{
		querier: querier,
	}
}

func (r *UsersRepository) CreateUser(ctx context.Context, username, hashedPassword string) (domain.UserInfo, error) {
	creationSQL := `INSERT INTO users (username, password_hash) VALUES ($1, $2) RETURNING id, username, password_hash`

	var userInfo domain.UserInfo
	row := r.querier.QueryRow(ctx, creationSQL, username, hashedPassword)
	err := row.Scan(&userInfo.ID, &userInfo.Username, &userInfo.PasswordHash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return domain.UserInfo{}, &domain.UsernameTakenError{Msg: fmt.Sprintf("username %q is already registered", username)}
		}

		return domain.UserInfo{}, err
	}

	return userInfo, nil
}

func (r *UsersRepository) UpsertUser(ctx context.Context, username, hashedPassword string) (domain.UserInfo, error) {
	upsertSQL := `INSERT INTO users (username, password_hash) VALUES ($1, $2)
ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash
RETURNING id, username, password_hash`

	var userInfo domain.UserInfo
	row := r.querier.QueryRow(ctx, upsertSQL, username, hashedPassword)
	err := row.Scan(&userInfo.ID, &userInfo.Username, &userInfo.PasswordHash)
	if err != nil {
		return domain.UserInfo{}, fmt.Errorf("failed to upsert user %q: %w", username, err)
	}

	return userInfo, nil
}

func (r *UsersRepository) TryGetUserInfo(ctx context.Context, username string) (domain.UserInfo, bool, error) {
	var userInfo domain.UserInfo
	querySQL := `SELECT id, username, password_hash FROM users WHERE username = $1`

	row := r.querier.QueryRow(ctx, querySQL, username)
	err := row.Scan(&userInfo.ID, &userInfo.Username, &userInfo.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.UserInfo{}, false, nil
		}

		return domain.UserInfo{}, false, err
	}

	return userInfo, true, nil
}
