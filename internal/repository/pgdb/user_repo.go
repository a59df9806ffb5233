package pgdb

import (
	"context"
	"errors"

	"github.com/Ranjan7481/Ecommerce/internal/domain"
	"github.com/Ranjan7481/Ecommerce/internal/repository/pgdb/converter"
	"github.com/Ranjan7481/Ecommerce/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// UserRepo реализует репозиторий пользователей поверх PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
	conv converter.UserConverter
}

func NewUserRepo(pool *pgxpool.Pool, conv converter.UserConverter) *UserRepo {
	return &UserRepo{
		pool: pool,
		conv: conv,
	}
}

// Create сохраняет нового пользователя. Дубликат email — ошибка валидации.
func (u *UserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (full_name, email, password_hash, age, phone, address, photo, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, full_name, email, password_hash, age, phone, address, photo, role, created_at, updated_at;
	`

	in := u.conv.ToModel(user)

	var model converter.UserModel
	err := u.pool.QueryRow(ctx, query,
		in.FullName, in.Email, in.PasswordHash, in.Age, in.Phone, in.Address, in.Photo, in.Role,
	).Scan(
		&model.ID, &model.FullName, &model.Email, &model.PasswordHash, &model.Age,
		&model.Phone, &model.Address, &model.Photo, &model.Role, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if postgresDuplicate(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrEmailExists)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return u.conv.ToEntity(&model), nil
}

func (u *UserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `
		SELECT id, full_name, email, password_hash, age, phone, address, photo, role, created_at, updated_at
		FROM users
		WHERE id = $1;
	`

	return u.queryOne(ctx, query, id)
}

func (u *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, full_name, email, password_hash, age, phone, address, photo, role, created_at, updated_at
		FROM users
		WHERE email = $1;
	`

	return u.queryOne(ctx, query, email)
}

// Update перезаписывает изменяемые поля профиля.
func (u *UserRepo) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		UPDATE users
		SET full_name = $2, age = $3, phone = $4, address = $5, photo = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING id, full_name, email, password_hash, age, phone, address, photo, role, created_at, updated_at;
	`

	in := u.conv.ToModel(user)

	var model converter.UserModel
	err := u.pool.QueryRow(ctx, query,
		in.ID, in.FullName, in.Age, in.Phone, in.Address, in.Photo,
	).Scan(
		&model.ID, &model.FullName, &model.Email, &model.PasswordHash, &model.Age,
		&model.Phone, &model.Address, &model.Photo, &model.Role, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrUserNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return u.conv.ToEntity(&model), nil
}

func (u *UserRepo) queryOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var model converter.UserModel
	err := u.pool.QueryRow(ctx, query, arg).Scan(
		&model.ID, &model.FullName, &model.Email, &model.PasswordHash, &model.Age,
		&model.Phone, &model.Address, &model.Photo, &model.Role, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrUserNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return u.conv.ToEntity(&model), nil
}
