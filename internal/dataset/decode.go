package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"tainan-restaurant/internal/model"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decodeRecords parses a UTF-8 JSON array of objects, with or without a
// leading byte-order mark, and keeps only the restaurant fields.
func decodeRecords(r io.Reader) ([]model.Restaurant, error) {
	decoder := json.NewDecoder(transform.NewReader(r, unicode.UTF8BOM.NewDecoder()))

	var raw []map[string]json.RawMessage
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid dataset JSON: %w", err)
	}

	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid dataset JSON: unexpected data after top-level array")
	}

	records := make([]model.Restaurant, 0, len(raw))
	for i, fields := range raw {
		record, err := projectRecord(fields)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, record)
	}

	return records, nil
}

// projectRecord copies the kept fields out of a decoded object.
func projectRecord(fields map[string]json.RawMessage) (model.Restaurant, error) {
	values := make([]string, len(model.RestaurantFields))
	for i, name := range model.RestaurantFields {
		raw, ok := fields[name]
		if !ok {
			return model.Restaurant{}, fmt.Errorf("%w %q", ErrMissingField, name)
		}

		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			continue
		}

		if err := json.Unmarshal(raw, &values[i]); err != nil {
			return model.Restaurant{}, fmt.Errorf("%q: %w", name, ErrInvalidField)
		}
	}

	return model.Restaurant{
		Name:         values[0],
		District:     values[1],
		Summary:      values[2],
		Introduction: values[3],
		OpenTime:     values[4],
		Address:      values[5],
	}, nil
}
