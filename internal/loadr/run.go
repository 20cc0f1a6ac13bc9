package loadr

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"

	"github.com/vaibhaw-/ClinicR/internal/clinicr/export"
	"github.com/vaibhaw-/ClinicR/internal/clinicr/logger"
)

// maxStatementBytes bounds a single statement line; JSON columns make
// INSERT lines for clinical notes and labs a few kilobytes long.
const maxStatementBytes = 4 << 20

// Run applies the dump named in the YAML config at configPath to the
// configured database and reports the resulting row counts.
func Run(ctx context.Context, configPath string) error {
	log := logger.L()

	var cfg RunConfig
	if err := readYAML(configPath, &cfg); err != nil {
		return err
	}
	driver, err := export.ParseDriver(cfg.Driver)
	if err != nil {
		return err
	}
	cfg.Driver = string(driver)
	cfg, timeout, err := cfg.withDefaults()
	if err != nil {
		return err
	}

	in, err := os.Open(cfg.Input)
	if err != nil {
		return fmt.Errorf("open dump: %w", err)
	}
	defer in.Close()

	log.Infow("Starting run", "driver", cfg.Driver, "db", cfg.Database, "host", cfg.Host, "port", cfg.Port)
	db, err := sql.Open(cfg.Driver, buildDSN(cfg.Driver, cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.Database))
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer db.Close()

	n, err := ApplySQL(ctx, db, in, timeout)
	if err != nil {
		return err
	}
	counts, err := CountRows(ctx, db, driver)
	if err != nil {
		return err
	}
	log.Infow("Run complete", "statements", n, "rows", counts)
	return nil
}

// buildDSN constructs a DSN for postgres/mysql
func buildDSN(driver, user, pass, host string, port int, db string) string {
	if driver == "postgres" {
		return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable", user, pass, host, port, db)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true", user, pass, host, port, db)
}

// SplitStatements reads a dump written by export.WriteSQL. Comment and
// blank lines are skipped; a statement ends at a line ending in ';'.
func SplitStatements(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxStatementBytes)

	var stmts []string
	var cur strings.Builder
	for sc.Scan() {
		line := sc.Text()
		trimmed := strings.TrimSpace(line)
		if cur.Len() == 0 && (trimmed == "" || strings.HasPrefix(trimmed, "--")) {
			continue
		}
		if cur.Len() > 0 {
			cur.WriteByte('\n')
		}
		cur.WriteString(line)
		if strings.HasSuffix(trimmed, ";") {
			stmts = append(stmts, strings.TrimSuffix(strings.TrimSpace(cur.String()), ";"))
			cur.Reset()
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read dump: %w", err)
	}
	if rest := strings.TrimSpace(cur.String()); rest != "" {
		return nil, fmt.Errorf("unterminated statement: %.60q", rest)
	}
	return stmts, nil
}

// ApplySQL executes every statement of the dump in order, each under its
// own timeout, and stops at the first failure.
func ApplySQL(ctx context.Context, db *sql.DB, r io.Reader, timeout time.Duration) (int, error) {
	log := logger.L()
	stmts, err := SplitStatements(r)
	if err != nil {
		return 0, err
	}
	for i, stmt := range stmts {
		sctx, cancel := context.WithTimeout(ctx, timeout)
		_, err := db.ExecContext(sctx, stmt)
		cancel()
		if err != nil {
			return i, fmt.Errorf("statement %d: %w", i+1, err)
		}
		if (i+1)%1000 == 0 {
			log.Debugw("loadr.apply", "applied", i+1, "total", len(stmts))
		}
	}
	log.Debugw("loadr.apply", "applied", len(stmts), "total", len(stmts))
	return len(stmts), nil
}

// CountRows counts the rows of every dump table.
func CountRows(ctx context.Context, db *sql.DB, driver export.Driver) (map[string]int, error) {
	counts := make(map[string]int)
	for _, table := range export.Tables(driver) {
		var n int
		if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
			return nil, fmt.Errorf("count %s: %w", table, err)
		}
		counts[table] = n
	}
	return counts, nil
}
