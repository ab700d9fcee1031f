package fx

import (
	"database/sql/driver"
	"fmt"
)

// Scan implements the [sql.Scanner] interface.
// See also method [Parse].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (d *Fx) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*d, err = Parse(value)
	case []byte:
		*d, err = Parse(string(value))
	case int64:
		*d, err = New(value, 0)
	case float64:
		*d, err = NewFromFloat64(value)
	default:
		err = fmt.Errorf("converting from %T to %T: %w", value, Fx{}, ErrInvalidFormat)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// See also method [Fx.String].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (d Fx) Value() (driver.Value, error) {
	return d.String(), nil
}

// NullFx represents a decimal that can be null.
// Its zero value is null.
// NullFx is not a part of the numeric contract of the package,
// it exists only for database interoperability.
type NullFx struct {
	Fx    Fx
	Valid bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Fx.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullFx) Scan(value any) error {
	if value == nil {
		n.Fx = Fx{}
		n.Valid = false
		return nil
	}
	err := n.Fx.Scan(value)
	if err != nil {
		n.Valid = false
		return err
	}
	n.Valid = true
	return nil
}

// Value implements the [driver.Valuer] interface.
// See also method [Fx.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullFx) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Fx.Value()
}
