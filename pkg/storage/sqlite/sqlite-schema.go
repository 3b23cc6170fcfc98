package sqlite

// blog_entry is rebuilt from scratch on every run: the drop discards any
// previous contents, so repeated executions never accumulate rows.
// SQLite ignores VARCHAR widths, hence the explicit length checks on the
// bounded columns. No primary key, uniqueness or not-null constraints apply.
const schema = `
BEGIN TRANSACTION;

DROP TABLE IF EXISTS blog_entry;

CREATE TABLE
	blog_entry (
		created TIMESTAMP WITH TIME ZONE,
		title VARCHAR(100) CHECK (length ("title") <= 100),
		author VARCHAR(40) CHECK (length ("author") <= 40),
		text TEXT
	);

COMMIT;
`

const seedEntry = `INSERT INTO blog_entry (created, title, author, text) VALUES (?, ?, ?, ?)`

// seedRows lists the two fixture posts, in insertion order.
var seedRows = []struct {
	Title  string
	Author string
	Text   string
}{
	{"Get enterprisey with Rust", "Sander", "Lorem Ipsum"},
	{"Get whimsical with data", "Sander", "Lorem Ipsum"},
}
