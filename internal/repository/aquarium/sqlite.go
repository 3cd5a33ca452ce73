package aquarium

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pressly/goose/v3"

	// Pure Go SQLite driver registered as "sqlite".
	_ "modernc.org/sqlite"

	domain "github.com/oshokin/aquarium/internal/domain/aquarium"
	"github.com/oshokin/aquarium/internal/repository/aquarium/migrations"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SQLiteRepository persists aquariums and fish in a SQLite database.
type SQLiteRepository struct {
	// db is the connection pool, nil for transaction-bound copies.
	db *sql.DB
	// q executes statements, either on db or on the current transaction.
	q querier
	// inTx is set on repositories handed to InTx callbacks.
	inTx bool
}

var (
	// errPathRequired is returned when no database path is configured.
	errPathRequired = errors.New("database path is required")
	// errNotConfigured is returned when the repository has no connection.
	errNotConfigured = errors.New("repository is not configured")
)

// NewSQLiteRepository opens the database at path and applies pending migrations.
func NewSQLiteRepository(ctx context.Context, path string) (*SQLiteRepository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errPathRequired
	}

	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	// - busy_timeout sets a lock wait
	// - journal_mode(WAL) enables the write-ahead log
	// - foreign_keys(1) enables ON DELETE CASCADE
	dsn := fmt.Sprintf(
		"file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=foreign_keys(1)",
		path,
	)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	// SQLite allows a single writer; one connection also keeps pragmas consistent.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	if err = migrate(ctx, db); err != nil {
		_ = db.Close()

		return nil, err
	}

	return &SQLiteRepository{
		db: db,
		q:  db,
	}, nil
}

// migrate applies the embedded goose migrations.
func migrate(ctx context.Context, db *sql.DB) error {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("create migration provider: %w", err)
	}

	if _, err = provider.Up(ctx); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

// Close closes the database. Transaction-bound copies do nothing.
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil || r.inTx {
		return nil
	}

	return r.db.Close()
}

// Ping checks that the database is reachable.
func (r *SQLiteRepository) Ping(ctx context.Context) error {
	if r == nil || r.db == nil {
		return errNotConfigured
	}

	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	return nil
}

// InTx runs fn inside a transaction. Nested calls reuse the outer transaction.
func (r *SQLiteRepository) InTx(ctx context.Context, fn func(repo Repository) error) error {
	return r.withTx(ctx, func(tx *SQLiteRepository) error {
		return fn(tx)
	})
}

// withTx runs fn with a transaction-bound copy of the repository.
func (r *SQLiteRepository) withTx(ctx context.Context, fn func(tx *SQLiteRepository) error) error {
	if r == nil || r.q == nil {
		return errNotConfigured
	}

	if r.inTx {
		return fn(r)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	// Rollback after a successful commit returns sql.ErrTxDone and is ignored.
	defer func() {
		_ = tx.Rollback()
	}()

	if err = fn(&SQLiteRepository{q: tx, inTx: true}); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// CreateAquarium inserts the aquarium and sets its ID.
func (r *SQLiteRepository) CreateAquarium(ctx context.Context, a *domain.Aquarium) error {
	result, err := r.q.ExecContext(
		ctx,
		`INSERT INTO aquariums (capacity, clearness, temperature) VALUES (?, ?, ?)`,
		a.Capacity,
		a.Clearness,
		a.Temperature,
	)
	if err != nil {
		return fmt.Errorf("insert aquarium: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get aquarium id: %w", err)
	}

	a.ID = id

	return nil
}

// GetAquarium returns the aquarium with its fish.
func (r *SQLiteRepository) GetAquarium(ctx context.Context, id int64) (*domain.Aquarium, error) {
	a, err := r.GetAquariumWithoutFish(ctx, id)
	if err != nil {
		return nil, err
	}

	if a.Fish, err = r.ListFishByAquarium(ctx, id); err != nil {
		return nil, err
	}

	return a, nil
}

// GetAquariumWithoutFish returns the aquarium row only.
func (r *SQLiteRepository) GetAquariumWithoutFish(ctx context.Context, id int64) (*domain.Aquarium, error) {
	row := r.q.QueryRowContext(
		ctx,
		`SELECT id, capacity, clearness, temperature FROM aquariums WHERE id = ?`,
		id,
	)

	a, err := scanAquarium(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAquariumNotFound
		}

		return nil, fmt.Errorf("get aquarium %d: %w", id, err)
	}

	return a, nil
}

// ListAquariumIDs returns the IDs of every aquarium in ascending order.
func (r *SQLiteRepository) ListAquariumIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT id FROM aquariums ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list aquarium ids: %w", err)
	}

	defer func() {
		_ = rows.Close()
	}()

	ids := make([]int64, 0)

	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan aquarium id: %w", err)
		}

		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate aquarium ids: %w", err)
	}

	return ids, nil
}

// ListAquariums returns every aquarium with its fish, ordered by ID.
func (r *SQLiteRepository) ListAquariums(ctx context.Context) ([]*domain.Aquarium, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT id, capacity, clearness, temperature FROM aquariums ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list aquariums: %w", err)
	}

	defer func() {
		_ = rows.Close()
	}()

	var (
		aquariums = make([]*domain.Aquarium, 0)
		byID      = make(map[int64]*domain.Aquarium)
	)

	for rows.Next() {
		a, err := scanAquarium(rows)
		if err != nil {
			return nil, fmt.Errorf("scan aquarium: %w", err)
		}

		aquariums = append(aquariums, a)
		byID[a.ID] = a
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate aquariums: %w", err)
	}

	// Close before the next query: the pool holds a single connection.
	_ = rows.Close()

	fishes, err := r.ListFish(ctx)
	if err != nil {
		return nil, err
	}

	for _, f := range fishes {
		if a, ok := byID[f.AquariumID]; ok {
			a.Fish = append(a.Fish, f)
		}
	}

	return aquariums, nil
}

// UpdateAquarium stores capacity, clearness and temperature.
func (r *SQLiteRepository) UpdateAquarium(ctx context.Context, a *domain.Aquarium) error {
	result, err := r.q.ExecContext(
		ctx,
		`UPDATE aquariums SET capacity = ?, clearness = ?, temperature = ? WHERE id = ?`,
		a.Capacity,
		a.Clearness,
		a.Temperature,
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("update aquarium %d: %w", a.ID, err)
	}

	return expectAffected(result, domain.ErrAquariumNotFound)
}

// DeleteAquarium removes the aquarium and all its fish.
func (r *SQLiteRepository) DeleteAquarium(ctx context.Context, id int64) error {
	return r.withTx(ctx, func(tx *SQLiteRepository) error {
		if _, err := tx.q.ExecContext(ctx, `DELETE FROM fishes WHERE aquarium_id = ?`, id); err != nil {
			return fmt.Errorf("delete fishes of aquarium %d: %w", id, err)
		}

		result, err := tx.q.ExecContext(ctx, `DELETE FROM aquariums WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("delete aquarium %d: %w", id, err)
		}

		return expectAffected(result, domain.ErrAquariumNotFound)
	})
}

// CreateFish inserts the fish and sets its ID.
func (r *SQLiteRepository) CreateFish(ctx context.Context, f *domain.Fish) error {
	result, err := r.q.ExecContext(
		ctx,
		`INSERT INTO fishes (aquarium_id, name, species, hunger, health, age) VALUES (?, ?, ?, ?, ?, ?)`,
		f.AquariumID,
		f.Name,
		string(f.Species),
		f.Hunger,
		f.Health,
		f.Age,
	)
	if err != nil {
		return fmt.Errorf("insert fish: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get fish id: %w", err)
	}

	f.ID = id

	return nil
}

// GetFish returns a single fish.
func (r *SQLiteRepository) GetFish(ctx context.Context, id int64) (*domain.Fish, error) {
	row := r.q.QueryRowContext(ctx, selectFish+` WHERE id = ?`, id)

	f, err := scanFish(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFishNotFound
		}

		return nil, fmt.Errorf("get fish %d: %w", id, err)
	}

	return f, nil
}

// ListFish returns every fish ordered by ID.
func (r *SQLiteRepository) ListFish(ctx context.Context) ([]*domain.Fish, error) {
	return r.queryFish(ctx, selectFish+` ORDER BY id`)
}

// ListFishByAquarium returns the fish owned by the aquarium ordered by ID.
func (r *SQLiteRepository) ListFishByAquarium(ctx context.Context, aquariumID int64) ([]*domain.Fish, error) {
	return r.queryFish(ctx, selectFish+` WHERE aquarium_id = ? ORDER BY id`, aquariumID)
}

// CountFish returns how many fish the aquarium owns.
func (r *SQLiteRepository) CountFish(ctx context.Context, aquariumID int64) (int, error) {
	var count int

	err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM fishes WHERE aquarium_id = ?`, aquariumID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count fishes of aquarium %d: %w", aquariumID, err)
	}

	return count, nil
}

// UpdateFish stores every mutable field of the fish.
func (r *SQLiteRepository) UpdateFish(ctx context.Context, f *domain.Fish) error {
	result, err := r.q.ExecContext(
		ctx,
		`UPDATE fishes SET aquarium_id = ?, name = ?, species = ?, hunger = ?, health = ?, age = ? WHERE id = ?`,
		f.AquariumID,
		f.Name,
		string(f.Species),
		f.Hunger,
		f.Health,
		f.Age,
		f.ID,
	)
	if err != nil {
		return fmt.Errorf("update fish %d: %w", f.ID, err)
	}

	return expectAffected(result, domain.ErrFishNotFound)
}

// DeleteFish removes a single fish.
func (r *SQLiteRepository) DeleteFish(ctx context.Context, id int64) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM fishes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete fish %d: %w", id, err)
	}

	return expectAffected(result, domain.ErrFishNotFound)
}

const selectFish = `SELECT id, aquarium_id, name, species, hunger, health, age FROM fishes`

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanAquarium reads an aquarium row without its fish.
func scanAquarium(s scanner) (*domain.Aquarium, error) {
	a := &domain.Aquarium{Fish: make([]*domain.Fish, 0)}
	if err := s.Scan(&a.ID, &a.Capacity, &a.Clearness, &a.Temperature); err != nil {
		return nil, err
	}

	return a, nil
}

// scanFish reads a fish row.
func scanFish(s scanner) (*domain.Fish, error) {
	var (
		f       domain.Fish
		species string
	)

	if err := s.Scan(&f.ID, &f.AquariumID, &f.Name, &species, &f.Hunger, &f.Health, &f.Age); err != nil {
		return nil, err
	}

	f.Species = domain.Species(species)

	return &f, nil
}

// queryFish runs a fish SELECT and collects the rows.
func (r *SQLiteRepository) queryFish(ctx context.Context, query string, args ...any) ([]*domain.Fish, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list fishes: %w", err)
	}

	defer func() {
		_ = rows.Close()
	}()

	fishes := make([]*domain.Fish, 0)

	for rows.Next() {
		f, err := scanFish(rows)
		if err != nil {
			return nil, fmt.Errorf("scan fish: %w", err)
		}

		fishes = append(fishes, f)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate fishes: %w", err)
	}

	return fishes, nil
}

// expectAffected maps an UPDATE/DELETE touching no row to notFound.
func expectAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}

	if affected == 0 {
		return notFound
	}

	return nil
}
