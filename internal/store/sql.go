package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// SQLStore talks to postgres, mysql or sqlite through database/sql. Row ids
// are generated client-side as UUIDs so the insert path is identical across
// providers.
type SQLStore struct {
	provider string
	url      string
	db       *sql.DB
	builder  sq.StatementBuilderType
	log      zerolog.Logger
}

func NewSQLStore(provider, url string, verbose bool) *SQLStore {
	level := zerolog.Disabled
	if verbose {
		level = zerolog.DebugLevel
	}
	var placeholder sq.PlaceholderFormat = sq.Question
	if provider == "postgresql" || provider == "postgres" {
		placeholder = sq.Dollar
	}
	return &SQLStore{
		provider: provider,
		url:      url,
		builder:  sq.StatementBuilder.PlaceholderFormat(placeholder),
		log: zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).With().Timestamp().Logger(),
	}
}

func (s *SQLStore) driverName() string {
	switch s.provider {
	case "postgresql", "postgres":
		return "pgx"
	case "mysql":
		return "mysql"
	default:
		return "sqlite3"
	}
}

func (s *SQLStore) Connect(ctx context.Context) error {
	db, err := sql.Open(s.driverName(), s.url)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}
	// One connection for the whole run; the pipeline is strictly sequential.
	db.SetMaxOpenConns(1)
	s.db = db
	return nil
}

func (s *SQLStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLStore) Ping(ctx context.Context) error {
	if s.db == nil {
		if err := s.Connect(ctx); err != nil {
			return err
		}
	}
	return s.db.PingContext(ctx)
}

func (s *SQLStore) Create(ctx context.Context, kind EntityKind, attrs map[string]any) (string, error) {
	id := uuid.NewString()

	columns := make([]string, 0, len(attrs)+1)
	for col := range attrs {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	values := make([]any, 0, len(attrs)+1)
	for _, col := range columns {
		v, err := normalizeValue(attrs[col])
		if err != nil {
			return "", fmt.Errorf("encode %s.%s: %w", kind, col, err)
		}
		values = append(values, v)
	}
	columns = append([]string{"id"}, columns...)
	values = append([]any{id}, values...)

	query, args, err := s.builder.Insert(string(kind)).Columns(columns...).Values(values...).ToSql()
	if err != nil {
		return "", fmt.Errorf("build insert for %s: %w", kind, err)
	}
	s.log.Debug().Str("kind", string(kind)).Str("sql", query).Msg("insert")

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return "", classify(fmt.Errorf("insert into %s: %w", kind, err))
	}
	return id, nil
}

func (s *SQLStore) DeleteAll(ctx context.Context, kind EntityKind) (int64, error) {
	query, args, err := s.builder.Delete(string(kind)).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete for %s: %w", kind, err)
	}
	s.log.Debug().Str("kind", string(kind)).Str("sql", query).Msg("delete all")

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, classify(fmt.Errorf("delete from %s: %w", kind, err))
	}
	return res.RowsAffected()
}

// normalizeValue maps factory attribute values onto driver-supported types.
// Structs and string slices (notification bundles, action details, tag sets)
// are stored as JSON text.
func normalizeValue(v any) (any, error) {
	switch val := v.(type) {
	case nil, string, bool, int, int64, float64, time.Time:
		return val, nil
	case *string:
		if val == nil {
			return nil, nil
		}
		return *val, nil
	case *time.Time:
		if val == nil {
			return nil, nil
		}
		return *val, nil
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return nil, err
		}
		return string(b), nil
	}
}

// classify wraps storage errors that indicate a referential-integrity
// failure so the orchestrator can refuse to retry them.
func classify(err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "foreign key") || strings.Contains(msg, "violates") ||
		strings.Contains(msg, "constraint") {
		return fmt.Errorf("%w: %v", ErrConstraint, err)
	}
	return err
}
