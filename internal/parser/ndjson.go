package parser

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/imishinist/logstat/internal/models"
)

var errNotObject = errors.New("expected a JSON object")

// LineError describes a line of a log stream that did not produce a record.
// Line is 1-based. Terminal is set when the underlying reader failed and no
// further lines will be produced.
type LineError struct {
	Line     int
	Err      error
	Terminal bool
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Records lazily decodes newline-delimited JSON from reader. Each non-blank
// line yields either a record or a *LineError; a malformed line does not stop
// the iteration.
func Records(reader io.Reader) iter.Seq2[models.Record, error] {
	return func(yield func(models.Record, error) bool) {
		br := bufio.NewReader(reader)
		lineNum := 0

		for {
			line, err := br.ReadString('\n')
			if err != nil && err != io.EOF {
				yield(nil, &LineError{Line: lineNum + 1, Err: err, Terminal: true})
				return
			}

			if line != "" {
				lineNum++
				if trimmed := strings.TrimSpace(line); trimmed != "" {
					record, perr := parseRecord(trimmed)
					if perr != nil {
						if !yield(nil, &LineError{Line: lineNum, Err: perr}) {
							return
						}
					} else if !yield(record, nil) {
						return
					}
				}
			}

			if err == io.EOF {
				return
			}
		}
	}
}

func parseRecord(line string) (models.Record, error) {
	if line[0] != '{' {
		// garbage gets the decoder's syntax error, other values a type error
		if !json.Valid([]byte(line)) {
			var v any
			return nil, json.Unmarshal([]byte(line), &v)
		}
		return nil, errNotObject
	}

	var record models.Record
	if err := json.Unmarshal([]byte(line), &record); err != nil {
		return nil, err
	}
	return record, nil
}

// ReadLogFile reads every record from the file at path. A missing or
// unreadable file and malformed lines are reported to logger and skipped.
func ReadLogFile(path string, logger zerolog.Logger) []models.Record {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn().Str("file", path).Msg("log file not found")
		} else {
			logger.Warn().Str("file", path).Err(err).Msg("failed to open log file")
		}
		return nil
	}
	defer file.Close()

	var records []models.Record
	for record, err := range Records(file) {
		if err != nil {
			logLineError(logger, path, err)
			continue
		}
		records = append(records, record)
	}

	logger.Debug().Str("file", path).Int("records", len(records)).Msg("log file read")
	return records
}

func logLineError(logger zerolog.Logger, path string, err error) {
	var lineErr *LineError
	if !errors.As(err, &lineErr) {
		logger.Warn().Str("file", path).Err(err).Msg("failed to read log file")
		return
	}

	msg := "skipping malformed line"
	if lineErr.Terminal {
		msg = "failed to read log file"
	}
	logger.Warn().Str("file", path).Int("line", lineErr.Line).Err(lineErr.Err).Msg(msg)
}
