package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func devices(names ...string) []Device {
	out := make([]Device, 0, len(names))
	for _, n := range names {
		out = append(out, Device{Name: n, Printer: NewNullPrinter()})
	}
	return out
}

func TestSelectorKeywordPriority(t *testing.T) {
	sel := NewSelector()

	t.Run("Thermal outranks later keywords", func(t *testing.T) {
		d, ok := sel.Select(devices("Front Desk POS", "Kitchen Thermal"))
		assert.True(t, ok)
		assert.Equal(t, "Kitchen Thermal", d.Name)
	})

	t.Run("Case insensitive", func(t *testing.T) {
		d, ok := sel.Select(devices("Office LaserJet", "EPSON RECEIPT STATION"))
		assert.True(t, ok)
		assert.Equal(t, "EPSON RECEIPT STATION", d.Name)
	})
}

func TestSelectorModelToken(t *testing.T) {
	sel := NewSelector("tm-t82")

	d, ok := sel.Select(devices("Office LaserJet", "EPSON TM-T82X"))
	assert.True(t, ok)
	assert.Equal(t, "EPSON TM-T82X", d.Name)
}

func TestSelectorFallbackToFirst(t *testing.T) {
	sel := NewSelector()

	d, ok := sel.Select(devices("Office LaserJet", "Hallway MFP"))
	assert.True(t, ok)
	assert.Equal(t, "Office LaserJet", d.Name)
}

func TestSelectorNoDevices(t *testing.T) {
	sel := NewSelector("tm-t82")

	_, ok := sel.Select(nil)
	assert.False(t, ok)
}
