package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/marketplace-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) CreateUser(ctx context.Context, u entities.User) (entities.User, error) {
	query, args := r.qb.Insert("users").
		Columns(
			"id", "email", "password_hash", "first_name", "last_name", "phone_number", "user_type",
			"city", "province", "address", "ecocash_number", "national_id", "phone_verified",
			"is_active", "created_at", "updated_at",
		).
		Values(
			u.ID, strings.ToLower(u.Email), u.PasswordHash, u.FirstName, u.LastName, u.PhoneNumber, u.UserType,
			u.Location.City, u.Location.Province, nullString(u.Location.Address), nullString(u.EcocashNumber),
			nullString(u.NationalID), u.PhoneVerified, u.IsActive, u.CreatedAt, u.UpdatedAt,
		).
		Suffix(returning(userColumns)).
		MustSql()

	var user User
	err := r.getContext(ctx, &user, query, args...)
	if isUniqueViolation(err) {
		return entities.User{}, entities.ErrUserExists
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return UserToEntity(user), nil
}

func (r *postgresRepo) GetUserByID(ctx context.Context, id string) (entities.User, error) {
	return r.getUser(ctx, sq.Eq{"id": id})
}

func (r *postgresRepo) GetUserByEmail(ctx context.Context, email string) (entities.User, error) {
	return r.getUser(ctx, sq.Eq{"email": strings.ToLower(email)})
}

func (r *postgresRepo) GetUserByPhone(ctx context.Context, phone string) (entities.User, error) {
	return r.getUser(ctx, sq.Eq{"phone_number": phone})
}

func (r *postgresRepo) getUser(ctx context.Context, where sq.Eq) (entities.User, error) {
	query, args := r.qb.Select(userColumns...).
		From("users").
		Where(where).
		MustSql()

	var user User
	err := r.getContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return UserToEntity(user), nil
}

// UpdateProfile перезаписывает поля, которые пользователь может менять сам.
func (r *postgresRepo) UpdateProfile(ctx context.Context, u entities.User) (entities.User, error) {
	query, args := r.qb.Update("users").
		SetMap(map[string]any{
			"first_name":     u.FirstName,
			"last_name":      u.LastName,
			"phone_number":   u.PhoneNumber,
			"city":           u.Location.City,
			"province":       u.Location.Province,
			"address":        nullString(u.Location.Address),
			"ecocash_number": nullString(u.EcocashNumber),
			"national_id":    nullString(u.NationalID),
			"phone_verified": u.PhoneVerified,
			"updated_at":     u.UpdatedAt,
		}).
		Where(sq.Eq{"id": u.ID}).
		Suffix(returning(userColumns)).
		MustSql()

	return r.returnUser(ctx, query, args...)
}

// SetSuspended блокирует или разблокирует пользователя, причина хранится только у заблокированных.
func (r *postgresRepo) SetSuspended(ctx context.Context, id string, suspended bool, reason string, at time.Time) (entities.User, error) {
	if !suspended {
		reason = ""
	}
	query, args := r.qb.Update("users").
		Set("is_suspended", suspended).
		Set("suspension_reason", nullString(reason)).
		Set("updated_at", at).
		Where(sq.Eq{"id": id}).
		Suffix(returning(userColumns)).
		MustSql()

	return r.returnUser(ctx, query, args...)
}

func (r *postgresRepo) returnUser(ctx context.Context, query string, args ...any) (entities.User, error) {
	var user User
	err := r.getContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserNotFound
	}
	if isUniqueViolation(err) {
		return entities.User{}, entities.ErrUserExists
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to update user: %w", err)
	}
	return UserToEntity(user), nil
}

func userConditions(f entities.UserFilter) sq.And {
	where := sq.And{}
	if f.UserType != "" {
		where = append(where, sq.Eq{"user_type": f.UserType})
	}
	if f.Suspended != nil {
		where = append(where, sq.Eq{"is_suspended": *f.Suspended})
	}
	return where
}

func (r *postgresRepo) ListUsers(ctx context.Context, f entities.UserFilter, page entities.PageRequest) ([]entities.User, error) {
	query, args := r.qb.Select(userColumns...).
		From("users").
		Where(userConditions(f)).
		OrderBy("created_at DESC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset())).
		MustSql()

	var users []User
	if err := r.selectContext(ctx, &users, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}

	result := make([]entities.User, 0, len(users))
	for _, u := range users {
		result = append(result, UserToEntity(u))
	}
	return result, nil
}

func (r *postgresRepo) CountUsers(ctx context.Context, f entities.UserFilter) (int, error) {
	total, err := r.count(ctx, r.qb.Select("COUNT(*)").From("users").Where(userConditions(f)))
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return total, nil
}

func (r *postgresRepo) SetPhoneVerified(ctx context.Context, id string, at time.Time) error {
	return r.updateUser(ctx, id, map[string]any{"phone_verified": true, "updated_at": at})
}

func (r *postgresRepo) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	return r.updateUser(ctx, id, map[string]any{"last_login": at})
}

func (r *postgresRepo) UpdateRating(ctx context.Context, id string, rating entities.Rating) error {
	return r.updateUser(ctx, id, map[string]any{
		"rating_average": rating.Average,
		"rating_count":   rating.Count,
	})
}

func (r *postgresRepo) updateUser(ctx context.Context, id string, fields map[string]any) error {
	query, args := r.qb.Update("users").
		SetMap(fields).
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrUserNotFound
	}
	return nil
}
