package postgres

import (
	"arbeit/pkg/domain"
	"context"
	"fmt"
	"strings"

	"github.com/doug-martin/goqu/v9"
)

const (
	businessesTable = "businesses"
)

func (p *PgSQL) CreateBusiness(ctx context.Context, business domain.Business) (*domain.Business, error) {
	var row PgBusiness
	row.FromDomain(business)

	var result PgBusiness
	if _, err := p.Builder.Insert(businessesTable).
		Rows(row).
		Returning(&PgBusiness{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store business into pg: %w", asDuplicate(err))
	}

	return result.ToDomain(), nil
}

func (p *PgSQL) BusinessByBID(ctx context.Context, bid string) (*domain.Business, error) {
	return p.businessWhere(ctx, goqu.I("bid").Eq(bid))
}

func (p *PgSQL) BusinessByCompanyEmail(ctx context.Context, email string) (*domain.Business, error) {
	return p.businessWhere(ctx, goqu.L("lower(company_email)").Eq(strings.ToLower(email)))
}

func (p *PgSQL) businessWhere(ctx context.Context, where goqu.Expression) (*domain.Business, error) {
	var row PgBusiness
	found, err := p.Builder.From(businessesTable).
		Where(where).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch business: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
