package database

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// Supported database/sql driver names.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

type Service struct {
	db         *sql.DB
	m          *sync.Mutex
	driver     string
	table_name string
}

var tableName = "simulations"

const columns = "id, created_at, hand, upcard, seat, trials, seed, force_suit, force_alone, avg_tricks, avg_points, win_rate, maker_rate, alone_rate, duration_ms"

// New opens the store and creates the simulations table if needed.
func New(driver, dsn string) (*Service, error) {
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	sqlStmt := `
	create table if not exists ` + tableName + ` (
		id text not null primary key,
		created_at text,
		hand text,
		upcard text,
		seat integer,
		trials integer,
		seed text,
		force_suit text,
		force_alone text,
		avg_tricks double precision,
		avg_points double precision,
		win_rate double precision,
		maker_rate double precision,
		alone_rate double precision,
		duration_ms bigint
	);
	`
	if _, err = db.Exec(sqlStmt); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	return &Service{
		db:         db,
		m:          &sync.Mutex{},
		driver:     driver,
		table_name: tableName,
	}, nil
}

func (s *Service) Close() error {
	return s.db.Close()
}

func (s *Service) TableName() string {
	return s.table_name
}

// rebind rewrites ? placeholders as $1, $2... for postgres.
func (s *Service) rebind(query string) string {
	if s.driver != DriverPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanResult(row scanner) (SimulationResult, error) {
	var result SimulationResult
	err := row.Scan(
		&result.ID,
		&result.CreatedAt,
		&result.Hand,
		&result.Upcard,
		&result.Seat,
		&result.Trials,
		&result.Seed,
		&result.ForceSuit,
		&result.ForceAlone,
		&result.AvgTricks,
		&result.AvgPoints,
		&result.WinRate,
		&result.MakerRate,
		&result.AloneRate,
		&result.DurationMS)
	return result, err
}

func (s *Service) query(query string, args ...any) ([]SimulationResult, error) {
	rows, err := s.db.Query(s.rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []SimulationResult
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, rows.Err()
}

// GetAll returns every stored study, newest first.
func (s *Service) GetAll() ([]SimulationResult, error) {
	s.m.Lock()
	defer s.m.Unlock()
	return s.query("SELECT " + columns + " FROM " + s.table_name + " ORDER BY created_at DESC, id")
}

func (s *Service) GetByID(id string) (SimulationResult, error) {
	s.m.Lock()
	defer s.m.Unlock()
	row := s.db.QueryRow(s.rebind("SELECT "+columns+" FROM "+s.table_name+" WHERE id = ?"), id)
	result, err := scanResult(row)
	if err != nil {
		return SimulationResult{}, err
	}
	return result, nil
}

func (s *Service) Insert(result SimulationResult) error {
	s.m.Lock()
	defer s.m.Unlock()
	_, err := s.db.Exec(s.rebind("INSERT INTO "+s.table_name+
		" ("+columns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"),
		result.ID,
		result.CreatedAt,
		result.Hand,
		result.Upcard,
		result.Seat,
		result.Trials,
		result.Seed,
		result.ForceSuit,
		result.ForceAlone,
		result.AvgTricks,
		result.AvgPoints,
		result.WinRate,
		result.MakerRate,
		result.AloneRate,
		result.DurationMS)
	return err
}

// GetByHand returns the studies of one pinned hand, as stored in SimulationResult.Hand.
func (s *Service) GetByHand(hand string) ([]SimulationResult, error) {
	s.m.Lock()
	defer s.m.Unlock()
	results, err := s.query("SELECT "+columns+" FROM "+s.table_name+" WHERE hand = ? ORDER BY created_at DESC, id", hand)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, sql.ErrNoRows // No results found
	}
	return results, nil
}
