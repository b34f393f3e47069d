// Package loader executes a generated fixture file against a live database.
package loader

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/lastings-labs/bankgen/internal/sqlfile"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

type Loader struct {
	provider string
	db       *sql.DB
}

// Open connects to the target database using the provider's driver.
func Open(provider, url string) (*Loader, error) {
	var driverName string
	switch provider {
	case "postgresql", "postgres":
		driverName = "pgx"
	case "mysql":
		driverName = "mysql"
	case "sqlite", "sqlite3":
		driverName = "sqlite3"
	default:
		driverName = "pgx"
	}

	db, err := sql.Open(driverName, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Loader{provider: provider, db: db}, nil
}

func (l *Loader) Close() error {
	return l.db.Close()
}

// Load reads the fixture file and executes its statements in file order.
func (l *Loader) Load(ctx context.Context, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read fixture file: %w", err)
	}

	statements := splitStatements(string(content))
	if len(statements) == 0 {
		return fmt.Errorf("no SQL statements found in %s", path)
	}

	color.Cyan("📄 Loading %s (%d statements)...", path, len(statements))

	for i, statement := range statements {
		if _, err := l.db.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("statement %d failed: %w", i+1, err)
		}
	}

	color.Green("✅ Loaded %d statements", len(statements))
	return nil
}

// Truncate clears the fixture tables in reverse dependency order so child
// rows go before their parents.
func (l *Loader) Truncate(ctx context.Context) error {
	color.Yellow("🗑️  Truncating tables...")

	names := sqlfile.TableNames()
	for i := len(names) - 1; i >= 0; i-- {
		var query string
		switch l.provider {
		case "postgresql", "postgres":
			query = fmt.Sprintf("TRUNCATE TABLE %q RESTART IDENTITY CASCADE", names[i])
		case "mysql":
			query = fmt.Sprintf("TRUNCATE TABLE `%s`", names[i])
		default:
			query = fmt.Sprintf("DELETE FROM %s", names[i])
		}
		if _, err := l.db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to truncate %s: %w", names[i], err)
		}
	}

	color.Green("✅ Tables truncated")
	return nil
}

// splitStatements splits the generated file on statement boundaries. The
// emitter terminates every statement with ";" at end of line, so splitting on
// ";\n" is safe even though quoted values may contain semicolons.
func splitStatements(content string) []string {
	var statements []string
	for _, part := range strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), ";\n") {
		statement := strings.TrimSpace(stripLineComments(part))
		if statement != "" {
			statements = append(statements, statement)
		}
	}
	return statements
}

func stripLineComments(s string) string {
	var kept []string
	for _, line := range strings.Split(s, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
