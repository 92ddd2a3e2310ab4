package repository

import (
	"context"
	"database/sql"

	"github.com/Badmus2018/gogdripsv1/internal/domain"
	"github.com/Badmus2018/gogdripsv1/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (res domain.User, err error)
	GetUserByExternalID(ctx context.Context, externalID string) (res domain.User, err error)
}

type UserRepositoryImpl struct {
	db *sqlx.DB
}

func CreateNewUserRepository(db *sqlx.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) GetUserByEmail(ctx context.Context, email string) (res domain.User, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT id, name, email, external_id, hashed_password, role, created_at, updated_at, deleted_at FROM users WHERE email = $1 AND deleted_at IS NULL", email)
	err = row.StructScan(&res)
	if err != nil {
		if err == sql.ErrNoRows {
			return res, nil
		}
		log.Error().Err(err).Str("component", "GetUserByEmail").Msg("")
		return res, errs.ErrInternalServer
	}

	return
}

func (r *UserRepositoryImpl) GetUserByExternalID(ctx context.Context, externalID string) (res domain.User, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT id, name, email, external_id, hashed_password, role, created_at, updated_at, deleted_at FROM users WHERE external_id = $1 AND deleted_at IS NULL", externalID)
	err = row.StructScan(&res)
	if err != nil {
		if err == sql.ErrNoRows {
			return res, nil
		}
		log.Error().Err(err).Str("component", "GetUserByExternalID").Msg("")
		return res, errs.ErrInternalServer
	}

	return
}
