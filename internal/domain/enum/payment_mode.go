package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PaymentMode represents how a purchase was paid for
type PaymentMode int

const (
	PaymentModeCash       PaymentMode = 0
	PaymentModeElectronic PaymentMode = 1
)

func (m PaymentMode) String() string {
	switch m {
	case PaymentModeCash:
		return "Cash"
	case PaymentModeElectronic:
		return "Electronic"
	default:
		return fmt.Sprintf("PaymentMode(%d)", int(m))
	}
}

// Valid reports whether m is one of the defined modes.
func (m PaymentMode) Valid() bool {
	return m == PaymentModeCash || m == PaymentModeElectronic
}

// ParsePaymentMode converts a mode name into a PaymentMode.
// Unknown names are rejected, never coerced to a default.
func ParsePaymentMode(s string) (PaymentMode, error) {
	switch s {
	case "Cash":
		return PaymentModeCash, nil
	case "Electronic":
		return PaymentModeElectronic, nil
	default:
		return 0, fmt.Errorf("unknown payment mode %q", s)
	}
}

func (m PaymentMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMode) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		mode := PaymentMode(i)
		if !mode.Valid() {
			return fmt.Errorf("unknown payment mode %d", i)
		}
		*m = mode
		return nil
	}
	mode, err := ParsePaymentMode(str)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

func (m PaymentMode) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *PaymentMode) Scan(value interface{}) error {
	if value == nil {
		*m = PaymentModeCash
		return nil
	}
	var mode PaymentMode
	switch v := value.(type) {
	case int64:
		mode = PaymentMode(v)
	case int:
		mode = PaymentMode(v)
	default:
		return fmt.Errorf("cannot scan %T into PaymentMode", value)
	}
	if !mode.Valid() {
		return fmt.Errorf("unknown payment mode %d", int(mode))
	}
	*m = mode
	return nil
}
