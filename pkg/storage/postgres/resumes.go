package postgres

import (
	"arbeit/pkg/domain"
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	resumesTable = "resumes"
)

// StoreResume uses a prepared statement so the file bytes travel as a bytea
// parameter instead of an interpolated literal.
func (p *PgSQL) StoreResume(ctx context.Context, resume domain.Resume) (*domain.Resume, error) {
	var row PgResume
	row.FromDomain(resume)

	var result PgResume
	if _, err := p.Builder.Insert(resumesTable).
		Prepared(true).
		Rows(row).
		Returning(&PgResume{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store resume into pg: %w", err)
	}

	return result.ToDomain(), nil
}

func (p *PgSQL) ResumeByID(ctx context.Context, id domain.ResumeID) (*domain.Resume, error) {
	var row PgResume
	found, err := p.Builder.From(resumesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch resume by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
