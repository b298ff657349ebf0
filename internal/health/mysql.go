// Package health probes a site's services from the host side. Currently
// only the database check exists: it dials the site's published MySQL
// port and pings it.
package health

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
)

// pingTimeout bounds the whole open+ping cycle.
const pingTimeout = 3 * time.Second

// CheckDB reports whether the MySQL server published on the given host
// port is accepting connections with the site's credentials.
func CheckDB(port int, user, password, dbName string) error {
	cfg := mysql.NewConfig()
	cfg.User = user
	cfg.Passwd = password
	cfg.Net = "tcp"
	cfg.Addr = fmt.Sprintf("127.0.0.1:%d", port)
	cfg.DBName = dbName
	cfg.Timeout = pingTimeout

	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return fmt.Errorf("failed to open database handle: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("database not reachable on port %d: %w", port, err)
	}
	return nil
}
