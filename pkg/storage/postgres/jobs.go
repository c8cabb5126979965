package postgres

import (
	"arbeit/pkg/domain"
	"arbeit/pkg/storage"
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
)

const (
	jobsTable = "jobs"
)

func (p *PgSQL) CreateJob(ctx context.Context, job domain.Job) (*domain.Job, error) {
	var row PgJob
	if err := row.FromDomain(job); err != nil {
		return nil, err
	}

	var result PgJob
	if _, err := p.Builder.Insert(jobsTable).
		Rows(row).
		Returning(&PgJob{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store job into pg: %w", asDuplicate(err))
	}

	return result.ToDomain()
}

func (p *PgSQL) JobByJobID(ctx context.Context, jobID string) (*domain.Job, error) {
	var row PgJob
	found, err := p.Builder.From(jobsTable).
		Where(goqu.I("job_id").Eq(jobID)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch job by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) JobsByStatus(ctx context.Context, status domain.JobStatus) ([]domain.Job, error) {
	return p.jobsWhere(ctx, goqu.I("status").Eq(string(status)))
}

func (p *PgSQL) JobsByBID(ctx context.Context, bid string, status domain.JobStatus) ([]domain.Job, error) {
	w := []goqu.Expression{goqu.I("bid").Eq(bid)}
	if status != "" {
		w = append(w, goqu.I("status").Eq(string(status)))
	}

	return p.jobsWhere(ctx, w...)
}

func (p *PgSQL) jobsWhere(ctx context.Context, where ...goqu.Expression) ([]domain.Job, error) {
	var rows []PgJob
	if err := p.Builder.From(jobsTable).
		Where(where...).
		Order(goqu.I("posted_date").Desc(), goqu.I("job_id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch jobs from pg: %w", err)
	}

	return pgJobsToDomain(rows)
}

// UpdateJob sets only the provided fields and refreshes updated_at.
func (p *PgSQL) UpdateJob(ctx context.Context, bid, jobID string, updates storage.JobUpdates) (*domain.Job, error) {
	rec, err := jobUpdatesRecord(updates)
	if err != nil {
		return nil, err
	}

	var row PgJob
	found, err := p.Builder.Update(jobsTable).
		Set(rec).
		Where(
			goqu.I("job_id").Eq(jobID),
			goqu.I("bid").Eq(bid),
		).
		Returning(&PgJob{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update job in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func jobUpdatesRecord(updates storage.JobUpdates) (goqu.Record, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	setString := func(column string, v *string) {
		if v != nil {
			rec[column] = *v
		}
	}

	setString("title", updates.Title)
	setString("location", updates.Location)
	setString("job_type", updates.JobType)
	setString("department", updates.Department)
	setString("description", updates.Description)
	setString("requirements", updates.Requirements)
	setString("benefits", updates.Benefits)
	setString("qualification", updates.Qualification)
	setString("additional_info", updates.AdditionalInfo)

	if updates.SalaryMin != nil {
		rec["salary_min"] = *updates.SalaryMin
	}
	if updates.SalaryMax != nil {
		rec["salary_max"] = *updates.SalaryMax
	}
	if updates.HideSalary != nil {
		rec["hide_salary"] = *updates.HideSalary
	}
	if updates.Status != nil {
		rec["status"] = string(*updates.Status)
	}
	if updates.HiringProcess != nil {
		b, err := marshalList(updates.HiringProcess)
		if err != nil {
			return nil, fmt.Errorf("could not marshal hiring process: %w", err)
		}

		rec["hiring_process"] = b
	}
	if updates.ScreeningQuestions != nil {
		b, err := marshalList(updates.ScreeningQuestions)
		if err != nil {
			return nil, fmt.Errorf("could not marshal screening questions: %w", err)
		}

		rec["screening_questions"] = b
	}

	return rec, nil
}

func (p *PgSQL) DeleteJob(ctx context.Context, bid, jobID string) (*domain.Job, error) {
	var row PgJob
	found, err := p.Builder.Delete(jobsTable).
		Where(
			goqu.I("job_id").Eq(jobID),
			goqu.I("bid").Eq(bid),
		).
		Returning(&PgJob{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete job in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) IncrementApplicants(ctx context.Context, jobID string) (bool, error) {
	res, err := p.Builder.Update(jobsTable).
		Set(goqu.Record{
			"applicants": goqu.L("applicants + 1"),
		}).
		Where(goqu.I("job_id").Eq(jobID)).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not increment job applicants in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return affected > 0, nil
}
