package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sander/entries/pkg/ntime"
	"github.com/sirupsen/logrus"
)

type Storage struct {
	Connection *sql.DB
}

// New opens the database at the given path and unconditionally rebuilds the
// blog_entry table; whatever the file held before is discarded and the two
// fixture posts are inserted anew.
func New(logger *logrus.Logger, path string) (*Storage, error) {
	logger.Println("initialising SQLite DB")

	connection, err := sql.Open("sqlite3", getConnectionString(path))
	if err != nil {
		logger.WithError(err).Error("error while opening database")
		return nil, err
	}

	// opening the DB will fail silently when the package is compiled without CGO_ENABLED
	if err = connection.Ping(); err != nil {
		return nil, err
	}

	if err = Reset(connection); err != nil {
		logger.WithError(err).Error("error while rebuilding database contents")
		return nil, err
	}

	return &Storage{connection}, nil
}

// Reset drops and recreates blog_entry, then seeds the fixture posts, both
// stamped with the same execution time. Statements run in declaration order:
// drop, create, insert, insert. Errors abort the sequence and propagate to
// the caller unhandled.
func Reset(connection *sql.DB) error {
	if _, err := connection.Exec(schema); err != nil {
		return fmt.Errorf("rebuilding blog_entry: %w", err)
	}

	var created = ntime.Now()
	for _, row := range seedRows {
		if _, err := connection.Exec(seedEntry, created, row.Title, row.Author, row.Text); err != nil {
			return fmt.Errorf("seeding entry %q: %w", row.Title, err)
		}
	}

	return nil
}

// getConnectionString provides a configuration string that enables foreign keys constraints
func getConnectionString(path string) string {
	return path + "?_fk=on"
}

func (s *Storage) Close() error {
	return s.Connection.Close()
}
