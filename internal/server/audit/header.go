package audit

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/runaudit/internal/common"
)

// MissingHeaderDetail is reported for empty files and blank header lines.
const MissingHeaderDetail = "CSV file is empty or missing headers"

// IsCSVName reports whether a file name carries the .csv extension.
func IsCSVName(name string) bool {
	return strings.HasSuffix(name, ".csv")
}

// ReadHeader returns the first record of a CSV document. Content that is not
// UTF-8, cannot be parsed or has no header line fails with
// common.ErrMalformedInput. The remainder of the document is not read.
func ReadHeader(content []byte) ([]string, error) {
	if !utf8.Valid(content) {
		return nil, common.WithDetail(common.ErrMalformedInput,
			"Failed to parse CSV: content is not valid UTF-8")
	}

	// encoding/csv skips blank lines; a blank first line means no header.
	firstLine, _, _ := bytes.Cut(content, []byte("\n"))
	if len(bytes.TrimRight(firstLine, "\r")) == 0 {
		return nil, common.WithDetail(common.ErrMalformedInput, MissingHeaderDetail)
	}

	r := csv.NewReader(bytes.NewReader(content))
	r.FieldsPerRecord = -1
	// Stray quotes stay part of the field and an unterminated quoted field
	// runs to the end of input.
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, common.WithDetail(common.ErrMalformedInput, MissingHeaderDetail)
		}
		return nil, common.WithDetail(common.ErrMalformedInput, "Failed to parse CSV: "+err.Error())
	}
	if len(header) == 0 {
		return nil, common.WithDetail(common.ErrMalformedInput, MissingHeaderDetail)
	}

	return header, nil
}
