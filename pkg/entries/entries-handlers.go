package entries

import (
	"errors"
	"net/http"

	JSON "github.com/sander/entries/pkg/json-utilities"
	"github.com/sander/entries/pkg/rest"
)

func RegisterHandlers(engine rest.Engine, er EntryRepository) {
	engine.Get("/entries", getEntries(er))
	engine.Post("/entries", addEntry(er))
}

func getEntries(er EntryRepository) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {

		posts, err := er.GetAll()
		if err != nil {
			JSON.InternalServerError(writer, err)
			return
		}

		JSON.Ok(writer, posts)
	}
}

func addEntry(er EntryRepository) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {

		// parse and validate the new post's data
		var data AddEntryData
		if err := JSON.DecodeValidate(request, &data); err != nil {
			JSON.ValidationError(writer, err)
			return
		}

		entry, err := er.Add(data)
		switch {
		case errors.Is(err, ErrEntryTooLong):
			JSON.BadRequestWithMessage(writer, err.Error())
		case err != nil:
			JSON.InternalServerError(writer, err)
		default:
			JSON.Created(writer, entry)
		}
	}
}
