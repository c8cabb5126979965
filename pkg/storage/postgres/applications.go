package postgres

import (
	"arbeit/pkg/domain"
	"arbeit/pkg/storage"
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	applicationsTable = "applications"
)

func (p *PgSQL) CreateApplication(ctx context.Context,
	application domain.Application) (*domain.Application, error) {
	var row PgApplication
	row.FromDomain(application)

	var result PgApplication
	if _, err := p.Builder.Insert(applicationsTable).
		Rows(row).
		Returning(&PgApplication{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store application into pg: %w", asDuplicate(err))
	}

	return result.ToDomain(), nil
}

func (p *PgSQL) ApplicationByID(ctx context.Context, id domain.ApplicationID) (*domain.Application, error) {
	var row PgApplication
	found, err := p.Builder.From(applicationsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch application by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) ApplicationsByUser(ctx context.Context, userID domain.UserID) ([]domain.Application, error) {
	return p.applicationsWhere(ctx, p.Builder.From(applicationsTable).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))))
}

func (p *PgSQL) ApplicationsByJob(ctx context.Context, jobID string) ([]domain.Application, error) {
	return p.applicationsWhere(ctx, p.Builder.From(applicationsTable).
		Where(goqu.I("job_id").Eq(jobID)))
}

func (p *PgSQL) ApplicationsByBID(ctx context.Context, bid string) ([]domain.Application, error) {
	return p.applicationsWhere(ctx, p.applicationsOfBusiness(bid).
		Select(goqu.T(applicationsTable).All()))
}

func (p *PgSQL) applicationsOfBusiness(bid string) *goqu.SelectDataset {
	return p.Builder.From(applicationsTable).
		Join(goqu.T(jobsTable), goqu.On(
			goqu.T(jobsTable).Col("job_id").Eq(goqu.T(applicationsTable).Col("job_id")),
		)).
		Where(goqu.T(jobsTable).Col("bid").Eq(bid))
}

func (p *PgSQL) applicationsWhere(ctx context.Context, ds *goqu.SelectDataset) ([]domain.Application, error) {
	var rows []PgApplication
	if err := ds.
		Order(goqu.T(applicationsTable).Col("applied_date").Desc(), goqu.T(applicationsTable).Col("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch applications from pg: %w", err)
	}

	return pgApplicationsToDomain(rows), nil
}

// UpdateApplicationStatus refreshes updated_date and, when requested, stamps
// reviewed_date unless it is already set.
func (p *PgSQL) UpdateApplicationStatus(ctx context.Context,
	id domain.ApplicationID,
	update storage.ApplicationStatusUpdate) (*domain.Application, error) {
	rec := goqu.Record{
		"status":       string(update.Status),
		"updated_date": goqu.L("CURRENT_TIMESTAMP"),
	}
	if update.MarkReviewed {
		rec["reviewed_date"] = goqu.L("COALESCE(reviewed_date, CURRENT_TIMESTAMP)")
	}

	var row PgApplication
	found, err := p.Builder.Update(applicationsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgApplication{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update application status in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) ApplicationStatusCounts(ctx context.Context,
	bid string) (map[domain.ApplicationStatus]int, error) {
	var rows []struct {
		Status string `db:"status"`
		Count  int    `db:"count"`
	}
	if err := p.applicationsOfBusiness(bid).
		Select(
			goqu.T(applicationsTable).Col("status").As("status"),
			goqu.COUNT("*").As("count"),
		).
		GroupBy(goqu.T(applicationsTable).Col("status")).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not count applications in pg: %w", err)
	}

	counts := make(map[domain.ApplicationStatus]int, len(rows))
	for _, row := range rows {
		counts[domain.ApplicationStatus(row.Status)] = row.Count
	}

	return counts, nil
}
