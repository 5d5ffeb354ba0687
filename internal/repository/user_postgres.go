package repository

import (
	"context"
	"database/sql"

	"github.com/grazeweb/my-eshop-app/internal/domain"
	"github.com/grazeweb/my-eshop-app/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	pkgdto "github.com/grazeweb/my-eshop-app/pkg/dto"
)

type PostgresUserRepositoryImpl struct {
	db *sqlx.DB
}

func CreateUserRepository(db *sqlx.DB) UserRepository {
	return &PostgresUserRepositoryImpl{db: db}
}

func (r *PostgresUserRepositoryImpl) AddUser(ctx context.Context, data domain.User) (id int64, err error) {
	nstmt, err := r.db.PrepareNamedContext(ctx, "INSERT INTO users(name, email, hashed_password, external_id, is_admin, created_at, updated_at) VALUES (:name, :email, :hashed_password, :external_id, :is_admin, :created_at, :updated_at) RETURNING id")
	if err != nil {
		log.Error().Err(err).Str("component", "AddUser").Msg("")
		return
	}

	err = nstmt.GetContext(ctx, &data.ID, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddUser").Msg("")
		return
	}

	return data.ID, nil
}

func (r *PostgresUserRepositoryImpl) GetUserByEmail(ctx context.Context, email string) (data domain.User, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM users WHERE email = $1 AND deleted_at IS NULL", email)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, nil
		}
		log.Error().Err(err).Str("component", "GetUserByEmail").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *PostgresUserRepositoryImpl) GetUserByID(ctx context.Context, id int64) (data domain.User, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM users WHERE id = $1 AND deleted_at IS NULL", id)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, errs.ErrAccountNotFound
		}
		log.Error().Err(err).Str("component", "GetUserByID").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *PostgresUserRepositoryImpl) GetUserByExternalID(ctx context.Context, externalID string) (data domain.User, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM users WHERE external_id = $1 AND deleted_at IS NULL", externalID)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, errs.ErrAccountNotFound
		}
		log.Error().Err(err).Str("component", "GetUserByExternalID").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *PostgresUserRepositoryImpl) UpdateUserAddress(ctx context.Context, data domain.User) (err error) {
	_, err = r.db.NamedExecContext(ctx, "UPDATE users SET address_line = :address_line, address_city = :address_city, address_zip = :address_zip, updated_at = :updated_at WHERE external_id = :external_id AND deleted_at IS NULL", data)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateUserAddress").Msg("")
		return
	}

	return nil
}

func (r *PostgresUserRepositoryImpl) GetUsers(ctx context.Context, filter pkgdto.Filter) (data []domain.User, err error) {
	query := "SELECT * FROM users WHERE deleted_at IS NULL ORDER BY created_at DESC"

	args := make(map[string]interface{})

	if filter.Limit != 0 && filter.Page != 0 {
		offset := (filter.Page - 1) * filter.Limit
		query += " LIMIT :limit OFFSET :offset"
		args["limit"] = filter.Limit
		args["offset"] = offset
	}

	nstmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		log.Error().Err(err).Str("component", "GetUsers").Msg("")
		return nil, err
	}

	err = nstmt.SelectContext(ctx, &data, args)
	if err != nil {
		log.Error().Err(err).Str("component", "GetUsers").Msg("")
		return nil, err
	}

	return
}

func (r *PostgresUserRepositoryImpl) CountUsers(ctx context.Context) (count int64, err error) {
	err = r.db.GetContext(ctx, &count, "SELECT COUNT(id) FROM users WHERE deleted_at IS NULL")
	if err != nil {
		log.Error().Err(err).Str("component", "CountUsers").Msg("")
		return 0, err
	}

	return
}
