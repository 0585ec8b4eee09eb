package service

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakshmiplex/canteen-api/pkg/printer"
)

func TestDeliverWritesArtifactAndPrints(t *testing.T) {
	dev := &fakePrinter{}
	svc := newTestPrinterService(t, []printer.Device{{Name: "EPSON TM-T82", Printer: dev}})

	result, err := svc.Deliver("bill_Snacks", "hello\nworld\n", receiptGeometry)

	require.NoError(t, err)
	assert.True(t, result.Printed)
	assert.Equal(t, "EPSON TM-T82", result.Device)
	assert.Empty(t, result.PrintError)

	content, err := os.ReadFile(result.ArtifactPath)
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld\n", string(content))

	require.Len(t, dev.printed, 1)
	assert.Contains(t, string(dev.printed[0]), "hello")
}

func TestDeliverSurvivesPrintFailure(t *testing.T) {
	dev := &fakePrinter{fail: true}
	svc := newTestPrinterService(t, []printer.Device{{Name: "EPSON TM-T82", Printer: dev}})

	result, err := svc.Deliver("bill_Snacks", "content\n", receiptGeometry)

	require.NoError(t, err, "a dead printer must not fail the delivery")
	assert.False(t, result.Printed)
	assert.Equal(t, "device offline", result.PrintError)
	assert.FileExists(t, result.ArtifactPath)
}

func TestDeliverWithoutDevices(t *testing.T) {
	svc := newTestPrinterService(t, nil)

	result, err := svc.Deliver("report", "content\n", reportGeometry)

	require.NoError(t, err)
	assert.False(t, result.Printed)
	assert.Empty(t, result.Device)
	assert.FileExists(t, result.ArtifactPath)
}

func TestDeliverPrefersReceiptPrinter(t *testing.T) {
	generic := &fakePrinter{}
	thermal := &fakePrinter{}
	svc := newTestPrinterService(t, []printer.Device{
		{Name: "Office LaserJet", Printer: generic},
		{Name: "Thermal Receipt", Printer: thermal},
	})

	result, err := svc.Deliver("bill_Snacks", "content\n", receiptGeometry)

	require.NoError(t, err)
	assert.Equal(t, "Thermal Receipt", result.Device)
	assert.Len(t, thermal.printed, 1)
	assert.Empty(t, generic.printed)
}

func TestPrinterStatus(t *testing.T) {
	svc := newTestPrinterService(t, []printer.Device{
		{Name: "EPSON TM-T82", Printer: &fakePrinter{}},
	})

	status := svc.Status()
	assert.True(t, status.Configured)
	assert.Equal(t, []string{"EPSON TM-T82"}, status.Devices)
	assert.Equal(t, "EPSON TM-T82", status.Selected)
	assert.True(t, status.Connected)

	empty := newTestPrinterService(t, nil).Status()
	assert.False(t, empty.Configured)
	assert.Empty(t, empty.Selected)
}

func TestTestPrint(t *testing.T) {
	dev := &fakePrinter{}
	svc := newTestPrinterService(t, []printer.Device{{Name: "Receipt Printer", Printer: dev}})

	result, err := svc.TestPrint()

	require.NoError(t, err)
	assert.True(t, result.Printed)
	assert.FileExists(t, result.ArtifactPath)
	assert.Contains(t, string(dev.printed[0]), "PRINTER TEST")
}
