package model

import (
	"database/sql/driver"
	"fmt"

	"github.com/luminalib/luminalib/internal/pkg/jsonutil"
)

// Vector is an embedding vector stored as a JSON column.
type Vector []float64

// Value implements driver.Valuer.
func (v Vector) Value() (driver.Value, error) {
	if v == nil {
		return nil, nil
	}
	data, err := jsonutil.Marshal([]float64(v))
	if err != nil {
		return nil, fmt.Errorf("model: encode vector: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner.
func (v *Vector) Scan(src interface{}) error {
	if src == nil {
		*v = nil
		return nil
	}

	var data []byte
	switch s := src.(type) {
	case []byte:
		data = s
	case string:
		data = []byte(s)
	default:
		return fmt.Errorf("model: cannot scan %T into Vector", src)
	}

	var out []float64
	if err := jsonutil.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("model: decode vector: %w", err)
	}
	*v = out
	return nil
}
