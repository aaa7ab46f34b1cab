// Package integration runs compiled statements against real PostgreSQL.
package integration

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/zoobzio/dbml"
	"github.com/zoobzio/treeql"
)

// PostgresContainer wraps a testcontainers PostgreSQL instance.
type PostgresContainer struct {
	container *postgres.PostgresContainer
	conn      *pgx.Conn
	connStr   string
}

// Exec executes a SQL statement.
func (pc *PostgresContainer) Exec(ctx context.Context, t *testing.T, sql string, args ...any) {
	t.Helper()
	_, err := pc.conn.Exec(ctx, sql, args...)
	if err != nil {
		t.Fatalf("Failed to execute SQL: %v\nSQL: %s", err, sql)
	}
}

// Query executes a query and returns rows.
func (pc *PostgresContainer) Query(ctx context.Context, t *testing.T, sql string, args ...any) pgx.Rows {
	t.Helper()
	rows, err := pc.conn.Query(ctx, sql, args...)
	if err != nil {
		t.Fatalf("Failed to execute query: %v\nSQL: %s", err, sql)
	}
	return rows
}

// testProject describes the test database schema for validation.
func testProject(t *testing.T) *dbml.Project {
	t.Helper()

	project := dbml.NewProject("test")

	users := dbml.NewTable("users")
	users.AddColumn(dbml.NewColumn("id", "bigint"))
	users.AddColumn(dbml.NewColumn("username", "varchar"))
	users.AddColumn(dbml.NewColumn("role", "varchar"))
	users.AddColumn(dbml.NewColumn("active", "boolean"))
	project.AddTable(users)

	events := dbml.NewTable("events")
	events.AddColumn(dbml.NewColumn("id", "bigint"))
	events.AddColumn(dbml.NewColumn("user_id", "bigint"))
	events.AddColumn(dbml.NewColumn("kind", "varchar"))
	events.AddColumn(dbml.NewColumn("total", "numeric"))
	project.AddTable(events)

	return project
}

// setupSchema creates the test database schema.
func setupSchema(ctx context.Context, t *testing.T, pc *PostgresContainer) {
	t.Helper()

	pc.Exec(ctx, t, `
		CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			username VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL,
			active BOOLEAN DEFAULT true
		)
	`)

	pc.Exec(ctx, t, `
		CREATE TABLE IF NOT EXISTS events (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT REFERENCES users(id) ON DELETE CASCADE,
			kind VARCHAR(50) NOT NULL,
			total NUMERIC(10,2)
		)
	`)
}

// seedData inserts test data.
func seedData(ctx context.Context, t *testing.T, pc *PostgresContainer) {
	t.Helper()

	pc.Exec(ctx, t, `
		INSERT INTO users (id, username, role, active) VALUES
		(1, 'alice', 'admin', true),
		(2, 'bob', 'mod', true),
		(3, 'charlie', 'viewer', true),
		(4, 'diana', 'admin', false)
	`)

	pc.Exec(ctx, t, `
		INSERT INTO events (id, user_id, kind, total) VALUES
		(1, 1, 'click', 1.00),
		(2, 1, 'purchase', 99.99),
		(3, 2, 'click', 1.00)
	`)
}

// cleanupData removes all test data to ensure test isolation.
func cleanupData(ctx context.Context, t *testing.T, pc *PostgresContainer) {
	t.Helper()
	pc.Exec(ctx, t, `TRUNCATE TABLE events, users RESTART IDENTITY CASCADE`)
}

// TestIntegration_PostgresSelect runs a compiled grouped predicate with
// $n markers against real PostgreSQL.
func TestIntegration_PostgresSelect(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	pc := getPostgresContainer(t)
	setupSchema(ctx, t, pc)
	seedData(ctx, t, pc)
	t.Cleanup(func() { cleanupData(ctx, t, pc) })

	c := treeql.New(treeql.WithDialect(treeql.Postgres))

	res, err := c.Format(&treeql.Statement{
		Select: []string{"username"},
		From:   []string{"users"},
		Where: treeql.And(
			treeql.Eq("active", treeql.Arg()),
			treeql.Or(
				treeql.Eq("role", treeql.Arg()),
				treeql.Eq("role", treeql.Arg()),
			),
		),
		OrderBy: []treeql.OrderBy{{Column: "id", Direction: treeql.ASC}},
	}, treeql.Args(true, "admin", "mod"))
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	rows := pc.Query(ctx, t, res.SQL, res.Args...)
	defer rows.Close()

	var usernames []string
	for rows.Next() {
		var username string
		if err := rows.Scan(&username); err != nil {
			t.Fatalf("Scan failed: %v", err)
		}
		usernames = append(usernames, username)
	}
	if len(usernames) != 2 || usernames[0] != "alice" || usernames[1] != "bob" {
		t.Errorf("usernames = %v, want [alice bob]", usernames)
	}
}

// TestIntegration_PostgresInsert compiles an insert mixing direct and
// named placeholders and reads the row back.
func TestIntegration_PostgresInsert(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	pc := getPostgresContainer(t)
	setupSchema(ctx, t, pc)
	seedData(ctx, t, pc)
	t.Cleanup(func() { cleanupData(ctx, t, pc) })

	c := treeql.New(treeql.WithDialect(treeql.Postgres))

	ins, err := c.Format(&treeql.Statement{
		Insert: &treeql.InsertClause{
			Table:   "events",
			Columns: []string{"id", "user_id", "kind", "total"},
			Values: []treeql.Expr{
				treeql.Bind(100),
				treeql.Named("user"),
				treeql.Bind("signup"),
				treeql.Add(treeql.Num(1.5), treeql.Num(0.5)),
			},
		},
	}, treeql.NamedArgs(map[string]any{"user": 3}))
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	pc.Exec(ctx, t, ins.SQL, ins.Args...)

	sel, err := c.Format(&treeql.Statement{
		Select: []string{"kind", "total"},
		From:   []string{"events"},
		Where:  treeql.Eq("id", treeql.Arg()),
	}, treeql.Args(100))
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	var kind string
	var total float64
	if err := pc.conn.QueryRow(ctx, sel.SQL, sel.Args...).Scan(&kind, &total); err != nil {
		t.Fatalf("QueryRow failed: %v", err)
	}
	if kind != "signup" || total != 2 {
		t.Errorf("row = (%q, %v), want (signup, 2)", kind, total)
	}
}

// TestIntegration_PostgresSchemaValidation compiles through a DBML
// schema and executes the validated statement.
func TestIntegration_PostgresSchemaValidation(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	pc := getPostgresContainer(t)
	setupSchema(ctx, t, pc)
	seedData(ctx, t, pc)
	t.Cleanup(func() { cleanupData(ctx, t, pc) })

	c := treeql.New(
		treeql.WithDialect(treeql.Postgres),
		treeql.WithSchema(treeql.NewDBMLSchema(testProject(t))),
		treeql.WithLiteralWrapping(),
	)

	res, err := c.Format(&treeql.Statement{
		Select: []string{"kind"},
		From:   []string{"events"},
		Where:  treeql.Eq("kind", treeql.Str("purchase")),
	}, treeql.Binds{})
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if len(res.Args) != 1 {
		t.Fatalf("literal wrapping produced %d args, want 1", len(res.Args))
	}

	rows := pc.Query(ctx, t, res.SQL, res.Args...)
	defer rows.Close()

	count := 0
	for rows.Next() {
		count++
	}
	if count != 1 {
		t.Errorf("Expected 1 purchase event, got %d", count)
	}
}

// TestIntegration_PostgresDefinitions executes compiled DDL end to end.
func TestIntegration_PostgresDefinitions(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	pc := getPostgresContainer(t)

	c := treeql.New(treeql.WithDialect(treeql.Postgres))

	create, err := c.Format(&treeql.Statement{
		CreateTable: &treeql.CreateTable{
			Name:        "audit_log",
			IfNotExists: true,
			Columns: []treeql.ColumnDef{
				{Name: "id", Type: "BIGSERIAL", PrimaryKey: true},
				{Name: "action", Type: "VARCHAR(50)", NotNull: true},
			},
		},
	}, treeql.Binds{})
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	pc.Exec(ctx, t, create.SQL)

	index, err := c.Format(&treeql.Statement{
		CreateIndex: &treeql.CreateIndex{
			Name:        "idx_audit_log_action",
			Table:       "audit_log",
			Columns:     []string{"action"},
			IfNotExists: true,
		},
	}, treeql.Binds{})
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	pc.Exec(ctx, t, index.SQL)

	dropIdx, err := c.Format(&treeql.Statement{
		DropIndex: &treeql.DropIndex{Name: "idx_audit_log_action", IfExists: true},
	}, treeql.Binds{})
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	pc.Exec(ctx, t, dropIdx.SQL)

	drop, err := c.Format(&treeql.Statement{
		DropTable: &treeql.DropTable{Name: "audit_log", IfExists: true},
	}, treeql.Binds{})
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	pc.Exec(ctx, t, drop.SQL)
}
