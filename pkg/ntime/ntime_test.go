package ntime

import (
	"testing"
	"time"
)

func TestScan(t *testing.T) {
	reference := time.Date(2022, 11, 8, 21, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		value     interface{}
		wantValid bool
		wantError bool
	}{
		{
			name:      "RFC3339 string",
			value:     "2022-11-08T21:30:00Z",
			wantValid: true,
		},
		{
			name:      "RFC3339 bytes",
			value:     []byte("2022-11-08T21:30:00Z"),
			wantValid: true,
		},
		{
			name:      "native time",
			value:     reference,
			wantValid: true,
		},
		{
			name:  "null",
			value: nil,
		},
		{
			name:      "malformed string",
			value:     "yesterday, around noon",
			wantError: true,
		},
		{
			name:      "unsupported type",
			value:     42,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var nt NTime
			err := nt.Scan(tt.value)

			if tt.wantError {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if nt.isValid != tt.wantValid {
				t.Errorf("got isValid=%v, want %v", nt.isValid, tt.wantValid)
			}
			if tt.wantValid && !nt.time.Equal(reference) {
				t.Errorf("got time %v, want %v", nt.time, reference)
			}
		})
	}
}

func TestValueScanRoundTrip(t *testing.T) {
	original := NTime{time: time.Date(2022, 11, 8, 21, 30, 0, 0, time.UTC), isValid: true}

	value, err := original.Value()
	if err != nil {
		t.Fatalf("unexpected error from Value: %v", err)
	}

	var scanned NTime
	if err = scanned.Scan(value); err != nil {
		t.Fatalf("unexpected error from Scan: %v", err)
	}
	if !scanned.time.Equal(original.time) || !scanned.isValid {
		t.Errorf("round trip yielded %v, want %v", scanned, original)
	}
}

func TestNullValue(t *testing.T) {
	var nt NTime
	value, err := nt.Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != nil {
		t.Errorf("got %v, want nil", value)
	}
}

func TestMarshalJSON(t *testing.T) {
	valid := NTime{time: time.Date(2022, 11, 8, 21, 30, 0, 0, time.UTC), isValid: true}
	marshalled, err := valid.MarshalJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(marshalled) != `"2022-11-08T21:30:00Z"` {
		t.Errorf("got %s, want %q", marshalled, "2022-11-08T21:30:00Z")
	}

	var null NTime
	marshalled, err = null.MarshalJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(marshalled) != "null" {
		t.Errorf("got %s, want null", marshalled)
	}
}

func TestUnmarshalJSON(t *testing.T) {
	var nt NTime
	if err := nt.UnmarshalJSON([]byte(`"2022-11-08T21:30:00Z"`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !nt.isValid || !nt.time.Equal(time.Date(2022, 11, 8, 21, 30, 0, 0, time.UTC)) {
		t.Errorf("got %v, want the parsed reference time", nt)
	}

	if err := nt.UnmarshalJSON([]byte("null")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nt.isValid {
		t.Error("null should yield an invalid NTime")
	}
}
