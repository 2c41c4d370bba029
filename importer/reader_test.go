package importer

import "testing"

func TestGridCellAndWidth(t *testing.T) {
	t.Parallel()

	grid := Grid{
		{"10001", " สมชาย ใจดี "},
		{"", "", "26/11/2568"},
	}

	if got := grid.Cell(0, 2); got != "สมชาย ใจดี" {
		t.Fatalf("unexpected cell value: %q", got)
	}
	if got := grid.Cell(0, 3); got != "" {
		t.Fatalf("expected out-of-row column to be empty, got %q", got)
	}
	if got := grid.Cell(5, 1); got != "" {
		t.Fatalf("expected out-of-grid row to be empty, got %q", got)
	}
	if got := grid.Width(); got != 3 {
		t.Fatalf("unexpected width: %d", got)
	}
}

func TestReaderForFormat(t *testing.T) {
	t.Parallel()

	if _, err := ReaderForFormat("excel"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ReaderForFormat("CSV"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ReaderForFormat("pdf"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}

func TestInferFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{name: "xlsx", path: "26.11-25.12.2568.xlsx", want: "excel"},
		{name: "xls", path: "old-export.XLS", want: "excel"},
		{name: "csv", path: "day.csv", want: "csv"},
		{name: "unsupported", path: "day.txt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := inferFormat(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("unexpected format: %s", got)
			}
		})
	}
}
