package scenario

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/breakeven-sim/simulator/internal/breakeven"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	scenariosTable = "scenarios"
	timeLayout     = "2006-01-02T15:04:05.000000000Z07:00"
)

var scenarioColumns = []string{"id", "name", "input_json", "result_json", "created_at"}

// Option customizes a SQLiteRepository.
type Option func(*SQLiteRepository)

// WithClock replaces the time source used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(r *SQLiteRepository) {
		r.now = now
	}
}

// WithIDGenerator replaces the UUID generator.
func WithIDGenerator(newID func() string) Option {
	return func(r *SQLiteRepository) {
		r.newID = newID
	}
}

// SQLiteRepository keeps scenarios in the scenarios table.
type SQLiteRepository struct {
	db    *sql.DB
	limit int
	sq    squirrel.StatementBuilderType
	now   func() time.Time
	newID func() string
}

// NewSQLiteRepository returns a repository capped at limit scenarios. A
// non-positive limit falls back to DefaultLimit.
func NewSQLiteRepository(db *sql.DB, limit int, opts ...Option) *SQLiteRepository {
	if limit < 1 {
		limit = DefaultLimit
	}
	r := &SQLiteRepository{
		db:    db,
		limit: limit,
		sq:    squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Limit reports the configured cap.
func (r *SQLiteRepository) Limit() int {
	return r.limit
}

func (r *SQLiteRepository) Save(ctx context.Context, name string, input breakeven.Input, result breakeven.Result) (Scenario, error) {
	name, err := validate(name, result)
	if err != nil {
		return Scenario{}, err
	}

	inputJSON, err := json.Marshal(input)
	if err != nil {
		return Scenario{}, errors.Wrap(err, "encode scenario input")
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return Scenario{}, errors.Wrap(err, "encode scenario result")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return Scenario{}, errors.Wrap(err, "begin save transaction")
	}
	defer func() { _ = tx.Rollback() }()

	countSQL, countArgs, err := r.sq.Select("COUNT(*)").From(scenariosTable).ToSql()
	if err != nil {
		return Scenario{}, errors.Wrap(err, "build count query")
	}
	var count int
	if err := tx.QueryRowContext(ctx, countSQL, countArgs...).Scan(&count); err != nil {
		return Scenario{}, errors.Wrap(err, "count scenarios")
	}
	if count >= r.limit {
		return Scenario{}, errors.Wrapf(ErrLimitReached, "at most %d scenarios can be saved", r.limit)
	}

	s := Scenario{
		ID:        r.newID(),
		Name:      name,
		Input:     input,
		Result:    result,
		CreatedAt: r.now().UTC(),
	}

	insertSQL, insertArgs, err := r.sq.
		Insert(scenariosTable).
		Columns(scenarioColumns...).
		Values(s.ID, s.Name, string(inputJSON), string(resultJSON), s.CreatedAt.Format(timeLayout)).
		ToSql()
	if err != nil {
		return Scenario{}, errors.Wrap(err, "build insert query")
	}
	if _, err := tx.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
		return Scenario{}, errors.Wrap(err, "insert scenario")
	}

	if err := tx.Commit(); err != nil {
		return Scenario{}, errors.Wrap(err, "commit save transaction")
	}
	return s, nil
}

// List returns the saved scenarios oldest first.
func (r *SQLiteRepository) List(ctx context.Context) ([]Scenario, error) {
	query, args, err := r.sq.
		Select(scenarioColumns...).
		From(scenariosTable).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build list query")
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query scenarios")
	}
	defer rows.Close()

	scenarios := make([]Scenario, 0)
	for rows.Next() {
		s, err := deserializeScenario(rows)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate scenarios")
	}
	return scenarios, nil
}

func (r *SQLiteRepository) Get(ctx context.Context, id string) (Scenario, error) {
	query, args, err := r.sq.
		Select(scenarioColumns...).
		From(scenariosTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return Scenario{}, errors.Wrap(err, "build get query")
	}

	s, err := deserializeScenario(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return Scenario{}, errors.Wrapf(ErrNotFound, "id %s", id)
	}
	if err != nil {
		return Scenario{}, err
	}
	return s, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	query, args, err := r.sq.Delete(scenariosTable).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return errors.Wrap(err, "build delete query")
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "delete scenario")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "read deleted rows")
	}
	if n == 0 {
		return errors.Wrapf(ErrNotFound, "id %s", id)
	}
	return nil
}

// Clear removes every saved scenario.
func (r *SQLiteRepository) Clear(ctx context.Context) error {
	query, args, err := r.sq.Delete(scenariosTable).ToSql()
	if err != nil {
		return errors.Wrap(err, "build clear query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "clear scenarios")
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func deserializeScenario(row rowScanner) (Scenario, error) {
	var (
		s          Scenario
		inputJSON  string
		resultJSON string
		createdAt  string
	)
	if err := row.Scan(&s.ID, &s.Name, &inputJSON, &resultJSON, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Scenario{}, err
		}
		return Scenario{}, errors.Wrap(err, "scan scenario")
	}

	if err := json.Unmarshal([]byte(inputJSON), &s.Input); err != nil {
		return Scenario{}, errors.Wrapf(err, "decode input of scenario %s", s.ID)
	}
	if err := json.Unmarshal([]byte(resultJSON), &s.Result); err != nil {
		return Scenario{}, errors.Wrapf(err, "decode result of scenario %s", s.ID)
	}

	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return Scenario{}, errors.Wrapf(err, "parse created_at of scenario %s", s.ID)
	}
	s.CreatedAt = t
	return s, nil
}
