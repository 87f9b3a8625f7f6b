package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-01")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if got := d.String(); got != "2024-01-01" {
		t.Errorf("String() = %q, want %q", got, "2024-01-01")
	}

	if _, err := ParseDate("01/02/2024"); err == nil {
		t.Error("expected error for non ISO date")
	}
	if _, err := ParseDate("not-a-date"); err == nil {
		t.Error("expected error for garbage input")
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	var payload struct {
		Initial Date  `json:"initial_date"`
		Final   *Date `json:"final_date"`
	}

	raw := `{"initial_date":"2024-01-01","final_date":null}`
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if payload.Initial.String() != "2024-01-01" {
		t.Errorf("initial_date = %q, want 2024-01-01", payload.Initial.String())
	}
	if payload.Final != nil {
		t.Errorf("final_date = %v, want nil", payload.Final)
	}

	out, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `{"initial_date":"2024-01-01","final_date":null}`
	if string(out) != want {
		t.Errorf("Marshal = %s, want %s", out, want)
	}
}

func TestDateUnmarshalRejectsBadFormat(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2024-13-99"`), &d); err == nil {
		t.Error("expected error for impossible date")
	}
}

func TestDateScan(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{"string", "2024-02-01", "2024-02-01"},
		{"bytes", []byte("2024-02-01"), "2024-02-01"},
		{"time", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), "2024-02-01"},
		{"timestamp string", "2024-02-01T00:00:00Z", "2024-02-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			if err := d.Scan(tt.value); err != nil {
				t.Fatalf("Scan(%v) failed: %v", tt.value, err)
			}
			if d.String() != tt.want {
				t.Errorf("Scan(%v) = %q, want %q", tt.value, d.String(), tt.want)
			}
		})
	}

	var d Date
	if err := d.Scan(42); err == nil {
		t.Error("expected error scanning an int")
	}
}

func TestValidStatus(t *testing.T) {
	for _, status := range []string{StatusInProgress, StatusDone, StatusPending} {
		if !ValidStatus(status) {
			t.Errorf("ValidStatus(%q) = false, want true", status)
		}
	}
	if ValidStatus("Cancelado") {
		t.Error("ValidStatus accepted an unknown status")
	}
}
