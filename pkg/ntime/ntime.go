package ntime

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// NTime represents a nullable time.Time.
// It can be used as a scan destination and can be marshalled to JSON.
type NTime struct {
	time    time.Time
	isValid bool // false when Time is null, possibly redundant
}

// UnmarshalJSON parses a quoted RFC3339 time string, or null, into an NTime.
func (nt *NTime) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*nt = NTime{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	parsedTime, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return err
	}
	*nt = NTime{parsedTime, true}
	return nil
}

// MarshalJSON implements the Marshaller interface and operates on values rather than pointers, given NTime's heft.
func (nt NTime) MarshalJSON() ([]byte, error) {
	// for some obscure reason the quotes are necessary
	if nt.isValid {
		return []byte(fmt.Sprintf("\"%s\"", nt.time.UTC().Format(time.RFC3339))), nil
	}
	return []byte("null"), nil
}

// Scan implements the Scanner interface. The driver hands back plain text
// for columns declared as TIMESTAMP WITH TIME ZONE, so RFC3339 strings are
// parsed alongside native times and nulls.
func (nt *NTime) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*nt = NTime{}
		return nil
	case time.Time:
		*nt = NTime{v, true}
		return nil
	case string:
		return nt.parse(v)
	case []byte:
		return nt.parse(string(v))
	}
	return fmt.Errorf("can't scan %T into NTime", value)
}

func (nt *NTime) parse(raw string) error {
	parsedTime, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return err
	}
	*nt = NTime{parsedTime, true}
	return nil
}

// Value implements the driver Valuer interface.
func (nt NTime) Value() (driver.Value, error) {
	// arguable choice, would yield poor results with full-fledged DBs tk
	if nt.isValid {
		return driver.Value(nt.time.UTC().Format(time.RFC3339)), nil
	}
	return nil, nil
}

func Now() NTime {
	return NTime{time: time.Now().UTC(), isValid: true}
}

func (nt *NTime) Before(compared NTime) bool {
	return nt.time.Before(compared.time)
}

func (nt *NTime) IsValid() bool {
	return nt.isValid
}
