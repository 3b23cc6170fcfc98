package entries

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
	"github.com/sander/entries/pkg/ntime"
)

type EntryRepository interface {
	GetAll() ([]BlogEntry, error)
	Add(data AddEntryData) (*BlogEntry, error)
}

type entryRepository struct {
	Connection *sql.DB
}

// ErrEntryTooLong flags writes that exceed a column's declared length bound.
var ErrEntryTooLong = errors.New("entry exceeds a column length bound")

func NewRepository(connection *sql.DB) EntryRepository {
	return &entryRepository{connection}
}

// GetAll returns every stored post, seeded ones included, in insertion order.
func (er *entryRepository) GetAll() ([]BlogEntry, error) {

	// initialise empty slice to avoid null serialisation
	var posts = make([]BlogEntry, 0)

	rows, err := er.Connection.Query("SELECT created, title, author, text FROM blog_entry")
	if err != nil {
		return nil, err
	}

	for rows.Next() {
		var entry BlogEntry
		// return partial results in case of errors
		if err = rows.Scan(&entry.Created, &entry.Title, &entry.Author, &entry.Text); err != nil {
			return posts, err
		}
		posts = append(posts, entry)
	}

	if err = rows.Err(); err != nil {
		return posts, err
	}

	if err = rows.Close(); err != nil {
		return posts, err
	}

	return posts, nil
}

// Add stores a new post stamped with the current time and returns it.
func (er *entryRepository) Add(data AddEntryData) (*BlogEntry, error) {

	var created = ntime.Now()

	result, err := er.Connection.Exec(
		"INSERT INTO blog_entry (created, title, author, text) VALUES (?, ?, ?, ?)",
		created, data.Title, data.Author, data.Text)

	// over-long titles and authors trip the length checks on the table
	if sqliteErr, ok := err.(sqlite3.Error); ok {
		if sqliteErr.ExtendedCode == sqlite3.ErrConstraintCheck {
			return nil, ErrEntryTooLong
		}
	}

	// unspecified error occurred, should be handled as 50x
	if err != nil {
		return nil, fmt.Errorf("couldn't add entry %q: %w", data.Title, err)
	}

	rows, err := result.RowsAffected()
	if rows < 1 || err != nil {
		return nil, err
	}

	return &BlogEntry{
		Created: created,
		Title:   data.Title,
		Author:  data.Author,
		Text:    data.Text,
	}, nil
}
