package bitmatrix

import (
	"errors"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	// Version 2 symbols are 25x25 modules.
	Version = 2
	Size    = 25

	// DefaultData is encoded when the generator gets no input.
	DefaultData = "https://example.com"
)

var ErrEmptyData = errors.New("bitmatrix: data cannot be empty")

// DimensionError reports a generated matrix that is not Size x Size.
type DimensionError struct {
	Rows, Cols int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("bitmatrix: expected %dx%d matrix, got %dx%d", Size, Size, e.Rows, e.Cols)
}

// Generate encodes data as a version 2 QR code with low error correction and
// no quiet zone. It fails for empty data, for data that does not fit version
// 2, and for any result that is not Size x Size.
func Generate(data string) (Matrix, error) {
	if data == "" {
		return nil, ErrEmptyData
	}

	q, err := qrcode.NewWithForcedVersion(data, Version, qrcode.Low)
	if err != nil {
		return nil, fmt.Errorf("bitmatrix: %w", err)
	}
	q.DisableBorder = true

	m := FromBitmap(q.Bitmap())
	if err := checkDimensions(m); err != nil {
		return nil, err
	}
	return m, nil
}

func checkDimensions(m Matrix) error {
	if m.Rows() != Size {
		return &DimensionError{Rows: m.Rows(), Cols: m.Cols()}
	}
	for _, row := range m {
		if len(row) != Size {
			return &DimensionError{Rows: m.Rows(), Cols: len(row)}
		}
	}
	return nil
}
