package parser

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/rs/zerolog"

	"github.com/imishinist/logstat/internal/models"
)

func collect(t *testing.T, input string) ([]models.Record, []*LineError) {
	t.Helper()

	var records []models.Record
	var lineErrs []*LineError
	for record, err := range Records(strings.NewReader(input)) {
		if err != nil {
			var lineErr *LineError
			if !errors.As(err, &lineErr) {
				t.Fatalf("error is %T, want *LineError", err)
			}
			lineErrs = append(lineErrs, lineErr)
			continue
		}
		records = append(records, record)
	}
	return records, lineErrs
}

func TestRecords(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantRecords  int
		wantErrLines []int
	}{
		{
			name: "valid lines",
			input: `{"url": "/api/users", "response_time": 100}
{"url": "/api/products", "response_time": 200}
`,
			wantRecords: 2,
		},
		{
			name:        "empty input",
			input:       "",
			wantRecords: 0,
		},
		{
			name: "blank and whitespace lines are skipped",
			input: `
   {"url": "/a", "response_time": 1}


{"url": "/b", "response_time": 2}`,
			wantRecords: 2,
		},
		{
			name: "invalid line in the middle",
			input: `{"url": "/api/users", "response_time": 100}
invalid json here
{"url": "/api/products", "response_time": 200}
`,
			wantRecords:  2,
			wantErrLines: []int{2},
		},
		{
			name:         "line numbers count blank lines",
			input:        "\n\n{\"url\":\"/a\"\n{\"url\":\"/a\",\"response_time\":1}\n",
			wantRecords:  1,
			wantErrLines: []int{3},
		},
		{
			name:         "non-object values",
			input:        "[1, 2]\n42\nnull\n\"text\"\n",
			wantRecords:  0,
			wantErrLines: []int{1, 2, 3, 4},
		},
		{
			name:         "trailing data after object",
			input:        `{"url": "/a"} extra` + "\n",
			wantRecords:  0,
			wantErrLines: []int{1},
		},
		{
			name:        "crlf line endings",
			input:       "{\"url\":\"/a\",\"response_time\":1}\r\n{\"url\":\"/b\",\"response_time\":2}\r\n",
			wantRecords: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, lineErrs := collect(t, tt.input)

			if len(records) != tt.wantRecords {
				t.Errorf("records = %d, want %d", len(records), tt.wantRecords)
			}
			if len(lineErrs) != len(tt.wantErrLines) {
				t.Fatalf("errors = %d, want %d", len(lineErrs), len(tt.wantErrLines))
			}
			for i, lineErr := range lineErrs {
				if lineErr.Line != tt.wantErrLines[i] {
					t.Errorf("error %d line = %d, want %d", i, lineErr.Line, tt.wantErrLines[i])
				}
				if lineErr.Terminal {
					t.Errorf("error %d unexpectedly terminal", i)
				}
			}
		})
	}
}

func TestRecordsFieldValues(t *testing.T) {
	records, _ := collect(t, `{"url": "/api/users", "response_time": 100.5, "status": 200}`)
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}

	endpoint, ok := records[0].Endpoint()
	if !ok || endpoint != "/api/users" {
		t.Errorf("Endpoint() = %q, %v, want %q, true", endpoint, ok, "/api/users")
	}
	rt, ok := records[0].ResponseTime()
	if !ok || rt != 100.5 {
		t.Errorf("ResponseTime() = %v, %v, want 100.5, true", rt, ok)
	}
	if records[0]["status"] != float64(200) {
		t.Errorf("status = %v, want 200", records[0]["status"])
	}
}

func TestRecordsStopsWhenConsumerBreaks(t *testing.T) {
	input := "{\"n\":1}\n{\"n\":2}\n{\"n\":3}\n"

	seen := 0
	for range Records(strings.NewReader(input)) {
		seen++
		if seen == 2 {
			break
		}
	}
	if seen != 2 {
		t.Errorf("seen = %d, want 2", seen)
	}
}

func TestRecordsReadError(t *testing.T) {
	errBoom := errors.New("boom")
	reader := io.MultiReader(
		strings.NewReader("{\"url\":\"/a\",\"response_time\":1}\n"),
		iotest.ErrReader(errBoom),
	)

	var records int
	var errs []error
	for _, err := range Records(reader) {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		records++
	}

	if records != 1 {
		t.Errorf("records = %d, want 1", records)
	}
	if len(errs) != 1 {
		t.Fatalf("errors = %d, want 1", len(errs))
	}
	if !errors.Is(errs[0], errBoom) {
		t.Errorf("error = %v, want wrapping %v", errs[0], errBoom)
	}
	var lineErr *LineError
	if !errors.As(errs[0], &lineErr) || !lineErr.Terminal || lineErr.Line != 2 {
		t.Errorf("error = %#v, want terminal LineError on line 2", errs[0])
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestReadLogFile(t *testing.T) {
	path := writeFile(t, "invalid.log", `{"url": "/api/users", "response_time": 100}
invalid json here
{"url": "/api/products", "response_time": 200}
`)

	var buf bytes.Buffer
	records := ReadLogFile(path, zerolog.New(&buf))

	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}

	out := buf.String()
	if n := strings.Count(out, "skipping malformed line"); n != 1 {
		t.Errorf("diagnostics = %d, want 1\n%s", n, out)
	}
	for _, want := range []string{path, `"line":2`, "invalid character"} {
		if !strings.Contains(out, want) {
			t.Errorf("diagnostic missing %q\n%s", want, out)
		}
	}
}

func TestReadLogFileEmpty(t *testing.T) {
	path := writeFile(t, "empty.log", "")

	var buf bytes.Buffer
	records := ReadLogFile(path, zerolog.New(&buf))

	if len(records) != 0 {
		t.Errorf("records = %d, want 0", len(records))
	}
	if strings.Contains(buf.String(), `"level":"warn"`) {
		t.Errorf("unexpected diagnostics: %s", buf.String())
	}
}

func TestReadLogFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "non_existent_file.log")

	var buf bytes.Buffer
	records := ReadLogFile(path, zerolog.New(&buf))

	if len(records) != 0 {
		t.Errorf("records = %d, want 0", len(records))
	}
	out := buf.String()
	if !strings.Contains(out, "log file not found") || !strings.Contains(out, path) {
		t.Errorf("missing file diagnostic not emitted: %s", out)
	}
}
