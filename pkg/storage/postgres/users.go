package postgres

import (
	"arbeit/pkg/domain"
	"arbeit/pkg/storage"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	usersTable = "users"
)

func (p *PgSQL) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var row PgUser
	if err := row.FromDomain(user); err != nil {
		return nil, err
	}

	var result PgUser
	if _, err := p.Builder.Insert(usersTable).
		Rows(row).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store user into pg: %w", asDuplicate(err))
	}

	return result.ToDomain()
}

func (p *PgSQL) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return p.userWhere(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

func (p *PgSQL) UserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return p.userWhere(ctx, goqu.L("lower(username)").Eq(strings.ToLower(username)))
}

func (p *PgSQL) userWhere(ctx context.Context, where goqu.Expression) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(where).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) UpdatePassword(ctx context.Context, id domain.UserID, passwordHash string) (bool, error) {
	res, err := p.Builder.Update(usersTable).
		Set(goqu.Record{
			"password_hash": passwordHash,
			"updated_at":    goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not update user password in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return affected > 0, nil
}

// UpdateProfile replaces the profile document. Rows whose stored profile is
// already equal are not touched, which lets callers tell "not found" apart
// from "nothing changed".
func (p *PgSQL) UpdateProfile(ctx context.Context,
	id domain.UserID,
	profile domain.Profile) (storage.ProfileUpdate, error) {
	doc, err := json.Marshal(profile)
	if err != nil {
		return storage.ProfileUpdate{}, fmt.Errorf("could not marshal user profile: %w", err)
	}

	res, err := p.Builder.Update(usersTable).
		Set(goqu.Record{
			"profile":    JSONB(doc),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.L("profile IS DISTINCT FROM ?::jsonb", string(doc)),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return storage.ProfileUpdate{}, fmt.Errorf("could not update user profile in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return storage.ProfileUpdate{}, fmt.Errorf("could not read affected rows: %w", err)
	}
	if affected > 0 {
		return storage.ProfileUpdate{Matched: true, Modified: true}, nil
	}

	count, err := p.Builder.From(usersTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		CountContext(ctx)
	if err != nil {
		return storage.ProfileUpdate{}, fmt.Errorf("could not count users: %w", err)
	}

	return storage.ProfileUpdate{Matched: count > 0}, nil
}
