package store

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/avolette/jobtrack/internal/models"
	"github.com/avolette/jobtrack/internal/shared"
)

func sampleRows() []models.Application {
	return []models.Application{
		{
			ID:             "1",
			Company:        "Acme",
			Position:       "Engineer",
			Location:       "Berlin",
			SubmissionDate: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
			Notes:          "referral",
			Rejected:       false,
		},
		{
			ID:             "2",
			Company:        "Globex",
			Position:       "Analyst",
			SubmissionDate: time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC),
			Rejected:       true,
		},
	}
}

func TestCodec(t *testing.T) {
	t.Run("EncodeCSV", func(t *testing.T) {
		data, err := EncodeCSV(sampleRows())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
		if len(lines) != 3 {
			t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
		}
		if lines[0] != "id,company,position,location,submission_date,notes,rejected" {
			t.Errorf("unexpected header: %s", lines[0])
		}
		if lines[1] != "1,Acme,Engineer,Berlin,2025-01-02,referral,False" {
			t.Errorf("unexpected first row: %s", lines[1])
		}
		if lines[2] != "2,Globex,Analyst,,2025-02-03,,True" {
			t.Errorf("unexpected second row: %s", lines[2])
		}
	})

	t.Run("DecodeCSV", func(t *testing.T) {
		t.Run("valid content", func(t *testing.T) {
			data := "id,company,position,location,submission_date,notes,rejected\n" +
				"1,Acme,Engineer,Berlin,2025-01-02,referral,False\n" +
				"2,Globex,Analyst,,2025-02-03,,True\n"

			rows, err := DecodeCSV([]byte(data))
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(rows) != 2 {
				t.Fatalf("expected 2 rows, got %d", len(rows))
			}
			if rows[0].Company != "Acme" || rows[0].Rejected {
				t.Errorf("unexpected first row: %+v", rows[0])
			}
			if rows[1].Company != "Globex" || !rows[1].Rejected {
				t.Errorf("unexpected second row: %+v", rows[1])
			}
			if rows[0].SubmittedOn() != "2025-01-02" {
				t.Errorf("unexpected date: %s", rows[0].SubmittedOn())
			}
		})

		t.Run("empty content", func(t *testing.T) {
			rows, err := DecodeCSV([]byte("  \n"))
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(rows) != 0 {
				t.Errorf("expected empty dataset, got %d rows", len(rows))
			}
		})

		t.Run("header only", func(t *testing.T) {
			rows, err := DecodeCSV([]byte("id,company,position,location,submission_date,notes,rejected\n"))
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(rows) != 0 {
				t.Errorf("expected empty dataset, got %d rows", len(rows))
			}
		})

		t.Run("wrong header", func(t *testing.T) {
			_, err := DecodeCSV([]byte("id,name,position,location,submission_date,notes,rejected\n"))
			if err == nil {
				t.Error("expected error for wrong header")
			}
		})

		t.Run("invalid date", func(t *testing.T) {
			data := "id,company,position,location,submission_date,notes,rejected\n" +
				"1,Acme,Engineer,,02/01/2025,,False\n"
			_, err := DecodeCSV([]byte(data))
			if !errors.Is(err, shared.ErrValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
		})

		t.Run("invalid rejected token", func(t *testing.T) {
			data := "id,company,position,location,submission_date,notes,rejected\n" +
				"1,Acme,Engineer,,2025-01-02,,maybe\n"
			if _, err := DecodeCSV([]byte(data)); err == nil {
				t.Error("expected error for invalid rejected token")
			}
		})
	})

	t.Run("Round Trip", func(t *testing.T) {
		t.Run("rows survive encode/decode", func(t *testing.T) {
			data, err := EncodeCSV(sampleRows())
			if err != nil {
				t.Fatalf("encode failed: %v", err)
			}
			rows, err := DecodeCSV(data)
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if len(rows) != 2 {
				t.Fatalf("expected 2 rows, got %d", len(rows))
			}
			for i, want := range sampleRows() {
				got := rows[i]
				if got.ID != want.ID || got.Company != want.Company || got.Position != want.Position ||
					got.Location != want.Location || got.Notes != want.Notes || got.Rejected != want.Rejected {
					t.Errorf("row %d mismatch: got %+v, want %+v", i, got, want)
				}
				if !got.SubmissionDate.Equal(want.SubmissionDate) {
					t.Errorf("row %d date mismatch: got %v, want %v", i, got.SubmissionDate, want.SubmissionDate)
				}
			}
		})

		t.Run("bytes are stable across decode/encode", func(t *testing.T) {
			original, err := EncodeCSV(sampleRows())
			if err != nil {
				t.Fatalf("encode failed: %v", err)
			}
			rows, err := DecodeCSV(original)
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			again, err := EncodeCSV(rows)
			if err != nil {
				t.Fatalf("re-encode failed: %v", err)
			}
			if !bytes.Equal(original, again) {
				t.Errorf("expected byte-stable round trip:\n%s\nvs\n%s", original, again)
			}
		})
	})
}
