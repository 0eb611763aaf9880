// Package ingest parses uploaded contact lists into domain records.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/medahead/conftarget/internal/domain/model"
)

// ErrMalformedCSV covers unreadable or structurally broken input.
var ErrMalformedCSV = errors.New("malformed csv")

// Recognized header columns; anything else is ignored.
const (
	colName       = "name"
	colEmail      = "email"
	colCompany    = "company"
	colTitle      = "title"
	colIndustry   = "industry"
	colConference = "conference"
)

// ParseContacts reads header-keyed CSV rows and builds one Contact per
// row. Missing industry and conference columns fall back to the model
// defaults; every row receives a fresh identifier.
func ParseContacts(r io.Reader) ([]model.Contact, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %v", ErrMalformedCSV, err)
	}
	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.ToLower(strings.TrimSpace(col))] = i
	}

	var contacts []model.Contact
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: read row: %v", ErrMalformedCSV, err)
		}
		field := func(col string) string {
			i, ok := index[col]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}
		contacts = append(contacts, model.NewContact(
			field(colName),
			field(colEmail),
			field(colCompany),
			field(colTitle),
			field(colIndustry),
			field(colConference),
		))
	}
	return contacts, nil
}
