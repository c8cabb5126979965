package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
)

// insertClient returns an insert-only River client. A nil db is enough for
// InsertTx since the transaction carries the connection.
func insertClient(db *sql.DB) (*river.Client[*sql.Tx], error) {
	client, err := river.NewClient(riverdatabasesql.New(db), &river.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not create river insert client: %w", err)
	}

	return client, nil
}

// AddTask enqueues args on the current handle. Inside a transaction the task
// becomes visible to workers only once the transaction commits, so e-mails are
// never sent for rolled back writes.
func (p *PgSQL) AddTask(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	var res *rivertype.JobInsertResult

	switch db := p.DB.(type) {
	case *sql.Tx:
		client, err := insertClient(nil)
		if err != nil {
			return false, err
		}
		if res, err = client.InsertTx(ctx, db, args, opts); err != nil {
			return false, fmt.Errorf("could not insert %s task: %w", args.Kind(), err)
		}
	case *sql.DB:
		client, err := insertClient(db)
		if err != nil {
			return false, err
		}
		if res, err = client.Insert(ctx, args, opts); err != nil {
			return false, fmt.Errorf("could not insert %s task: %w", args.Kind(), err)
		}
	default:
		return false, fmt.Errorf("unsupported database handle %T", p.DB)
	}

	return !res.UniqueSkippedAsDuplicate, nil
}
