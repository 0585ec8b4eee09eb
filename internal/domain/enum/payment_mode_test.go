package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentModeString(t *testing.T) {
	assert.Equal(t, "Cash", PaymentModeCash.String())
	assert.Equal(t, "Electronic", PaymentModeElectronic.String())

	// a corrupted value must render, not panic
	assert.Equal(t, "PaymentMode(7)", PaymentMode(7).String())
}

func TestParsePaymentMode(t *testing.T) {
	mode, err := ParsePaymentMode("Cash")
	require.NoError(t, err)
	assert.Equal(t, PaymentModeCash, mode)

	mode, err = ParsePaymentMode("Electronic")
	require.NoError(t, err)
	assert.Equal(t, PaymentModeElectronic, mode)

	_, err = ParsePaymentMode("Cheque")
	assert.Error(t, err)
}

func TestPaymentModeScan(t *testing.T) {
	var mode PaymentMode
	require.NoError(t, mode.Scan(int64(1)))
	assert.Equal(t, PaymentModeElectronic, mode)

	require.NoError(t, mode.Scan(nil))
	assert.Equal(t, PaymentModeCash, mode)

	assert.Error(t, mode.Scan(int64(42)), "out-of-range values are rejected")
	assert.Error(t, mode.Scan("Cash"), "unexpected driver types are rejected")
}

func TestPaymentModeUnmarshalJSON(t *testing.T) {
	var mode PaymentMode
	require.NoError(t, mode.UnmarshalJSON([]byte(`"Electronic"`)))
	assert.Equal(t, PaymentModeElectronic, mode)

	require.NoError(t, mode.UnmarshalJSON([]byte(`0`)))
	assert.Equal(t, PaymentModeCash, mode)

	assert.Error(t, mode.UnmarshalJSON([]byte(`"Cheque"`)))
	assert.Error(t, mode.UnmarshalJSON([]byte(`9`)))
}
