package decimal

import (
	"database/sql/driver"
)

// Value implements driver.Valuer. NaN is stored as NULL.
func (d Decimal[S]) Value() (driver.Value, error) {
	if d.raw == nan {
		return nil, nil
	}

	return d.String(), nil
}

// Scan implements sql.Scanner. NULL scans as NaN. Floating point columns
// are rounded HalfEven. d is left unchanged when value is rejected.
func (d *Decimal[S]) Scan(value any) (err error) {
	defer Error.WrapP(&err)

	var scanned Decimal[S]

	switch v := value.(type) {
	case nil:
		scanned.SetNaN()
	case string:
		scanned, err = Parse[S](v)
	case []byte:
		scanned, err = Parse[S](string(v))
	case int64:
		scanned.SetInt64(v)
		if scanned.IsNaN() {
			return Error.New("scan %d: overflow", v)
		}
	case float64:
		scanned.SetFloat64(v, HalfEven)
		if scanned.IsNaN() {
			return Error.New("scan %g: out of range", v)
		}
	default:
		return Error.New("cannot scan %T", value)
	}
	if err != nil {
		return err
	}

	*d = scanned

	return nil
}
