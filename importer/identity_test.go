package importer

import "testing"

func TestForwardFillIdentities_CarriesBlockDownward(t *testing.T) {
	t.Parallel()

	grid := Grid{
		{"10001", "สมชาย ใจดี", "26/11/2568"},
		{"", "", "27/11/2568"},
		{"", "", "28/11/2568"},
		{"10002", "สมหญิง สายงาน", "26/11/2568"},
		{"", "", "27/11/2568"},
	}

	identities := forwardFillIdentities(grid, 1, 2)

	if identities[2].id != "10001" || identities[2].name != "สมชาย ใจดี" {
		t.Fatalf("expected block fill on row 3, got %+v", identities[2])
	}
	if identities[4].id != "10002" {
		t.Fatalf("expected second block on row 5, got %+v", identities[4])
	}
}

func TestForwardFillIdentities_MatchesRowByRowScan(t *testing.T) {
	t.Parallel()

	grid := Grid{
		{"10001", "A"},
		{"", ""},
		{"10002", ""},
		{"", "B"},
	}

	eager := forwardFillIdentities(grid, 1, 2)

	// A lazy consumer carrying last-seen state must see the same values.
	var lastID, lastName string
	for i, row := range grid {
		if id := cellValue(row, 1); id != "" {
			lastID = id
		}
		if name := cellValue(row, 2); name != "" {
			lastName = name
		}
		if eager[i].id != lastID || eager[i].name != lastName {
			t.Fatalf("row %d: eager %+v, lazy {%s %s}", i, eager[i], lastID, lastName)
		}
	}
}

func TestFlatIdentities_FiltersNonIDRows(t *testing.T) {
	t.Parallel()

	grid := Grid{
		{"รายงานการตอกบัตร", ""},
		{"รหัส", "ชื่อ"},
		{"10001", "สมชาย ใจดี"},
		{"1234", "too short"},
		{"10002-A", "suffix kept by leading digits"},
		{"รวม", ""},
	}

	identities := flatIdentities(grid, 1, 2)

	if identities[0].valid() || identities[1].valid() {
		t.Fatalf("expected header rows to be filtered")
	}
	if !identities[2].valid() || identities[2].id != "10001" {
		t.Fatalf("expected data row to pass, got %+v", identities[2])
	}
	if identities[3].valid() {
		t.Fatalf("expected four-digit row to be filtered")
	}
	if !identities[4].valid() {
		t.Fatalf("expected five leading digits to pass, got %+v", identities[4])
	}
	if identities[5].valid() {
		t.Fatalf("expected footer row to be filtered")
	}
}
