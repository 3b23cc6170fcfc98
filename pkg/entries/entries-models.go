package entries

import (
	"github.com/go-ozzo/ozzo-validation"

	"github.com/sander/entries/pkg/ntime"
)

// the bounds mirror the VARCHAR widths declared on the blog_entry columns
var titleRules = []validation.Rule{validation.Required, validation.Length(1, 100)}
var authorRules = []validation.Rule{validation.Required, validation.Length(1, 40)}

// BlogEntry mirrors a blog_entry row. Storage declares every column as
// nullable, but seeded and API-created rows always carry all four values.
type BlogEntry struct {
	Created ntime.NTime `json:"created"`
	Title   string      `json:"title"`
	Author  string      `json:"author"`
	Text    string      `json:"text"`
}

type AddEntryData struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Text   string `json:"text"`
}

func (data *AddEntryData) Validate() error {
	return validation.ValidateStruct(data,
		validation.Field(&data.Title, titleRules...),
		validation.Field(&data.Author, authorRules...),
	)
}
