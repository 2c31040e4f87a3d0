// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-press-sync/models"
)

// dateTimeLayout is the storage format of every date column of the source.
const dateTimeLayout = "2006-01-02 15:04:05"

// scanFields reads every remaining row of rows into column-keyed maps.
func scanFields(rows *sql.Rows) ([]models.Fields, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	result := make([]models.Fields, 0, models.PageSize)
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		row := make(models.Fields, len(columns))
		for i, column := range columns {
			row[column] = normalizeValue(values[i])
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

// normalizeValue converts driver values to the types used by models.Fields.
func normalizeValue(v any) any {
	switch value := v.(type) {
	case []byte:
		return string(value)
	case time.Time:
		return value.Format(dateTimeLayout)
	default:
		return value
	}
}

// scanMeta reads (key, value) rows into a multi-valued map, preserving the
// storage order of values that share a key.
func scanMeta(rows *sql.Rows) (map[string][]string, error) {
	meta := make(map[string][]string)
	for rows.Next() {
		var key, value sql.NullString
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		meta[key.String] = append(meta[key.String], value.String)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return meta, nil
}

// scanStrings reads a single string column.
func scanStrings(rows *sql.Rows) ([]string, error) {
	var out []string
	for rows.Next() {
		var value sql.NullString
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		out = append(out, value.String)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return out, nil
}
