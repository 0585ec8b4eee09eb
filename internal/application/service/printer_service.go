package service

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/lakshmiplex/canteen-api/pkg/document"
	"github.com/lakshmiplex/canteen-api/pkg/printer"
)

// DeliveryResult reports what happened to one rendered document. The
// artifact path is always set on success because the file write happens
// before any printing is attempted. A missing or failing printer never
// fails the delivery; it is recorded here instead.
type DeliveryResult struct {
	ArtifactPath string `json:"artifact_path"`
	Device       string `json:"device,omitempty"`
	Printed      bool   `json:"printed"`
	PrintError   string `json:"print_error,omitempty"`
}

// PrinterStatus describes the configured devices and which one the
// selector would pick for the next print.
type PrinterStatus struct {
	Configured bool     `json:"configured"`
	Devices    []string `json:"devices"`
	Selected   string   `json:"selected,omitempty"`
	Connected  bool     `json:"connected"`
}

var (
	receiptGeometry = printer.Geometry{WidthChars: 32, FeedLines: 3}
	reportGeometry  = printer.Geometry{WidthChars: 32, FeedLines: 6}
	summaryGeometry = printer.Geometry{WidthChars: 32, FeedLines: 3}
)

// PrinterService delivers rendered documents: it writes the durable file
// first and then prints a best-effort copy on the selected device.
type PrinterService struct {
	devices  []printer.Device
	selector *printer.Selector
	docs     *document.Store
	logger   *zap.Logger
}

func NewPrinterService(devices []printer.Device, selector *printer.Selector, docs *document.Store, logger *zap.Logger) *PrinterService {
	return &PrinterService{
		devices:  devices,
		selector: selector,
		docs:     docs,
		logger:   logger,
	}
}

// Deliver writes content under the given artifact prefix and then tries
// to print it. Only the file write can fail the call.
func (s *PrinterService) Deliver(prefix, content string, geo printer.Geometry) (DeliveryResult, error) {
	path, err := s.docs.Write(prefix, content)
	if err != nil {
		s.logger.Error("failed to write document artifact",
			zap.String("prefix", prefix),
			zap.Error(err))
		return DeliveryResult{}, err
	}

	result := DeliveryResult{ArtifactPath: path}

	dev, ok := s.selector.Select(s.devices)
	if !ok {
		s.logger.Info("no printer device available, artifact saved only",
			zap.String("artifact", path))
		return result, nil
	}
	result.Device = dev.Name

	if err := dev.Printer.Print(renderESCPOS(content, geo)); err != nil {
		result.PrintError = err.Error()
		s.logger.Warn("print failed, artifact saved",
			zap.String("device", dev.Name),
			zap.String("artifact", path),
			zap.Error(err))
		return result, nil
	}

	result.Printed = true
	s.logger.Info("document printed",
		zap.String("device", dev.Name),
		zap.String("artifact", path))
	return result, nil
}

// Status reports printer configuration without sending any data.
func (s *PrinterService) Status() PrinterStatus {
	status := PrinterStatus{Configured: len(s.devices) > 0}
	for _, d := range s.devices {
		status.Devices = append(status.Devices, d.Name)
	}
	if dev, ok := s.selector.Select(s.devices); ok {
		status.Selected = dev.Name
		status.Connected = dev.Printer.IsConnected()
	}
	return status
}

// TestPrint pushes a short slip through the full delivery path so an
// operator can verify the device end to end.
func (s *PrinterService) TestPrint() (DeliveryResult, error) {
	content := strings.Join([]string{
		"PRINTER TEST",
		strings.Repeat("-", 32),
		"Date: " + time.Now().Format(timestampLayout),
		"Printer is working.",
		"",
	}, "\n")
	return s.Deliver("printer_test", content, summaryGeometry)
}

// renderESCPOS wraps the plain text in printer control bytes. The first
// line is the venue header, printed centered and bold.
func renderESCPOS(content string, geo printer.Geometry) []byte {
	doc := printer.NewDocument(geo.WidthChars).Init()
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	if len(lines) > 0 {
		doc.SetAlign(printer.AlignCenter).SetBold(true)
		doc.Text(lines[0])
		doc.SetBold(false).SetAlign(printer.AlignLeft)
		lines = lines[1:]
	}
	for _, line := range lines {
		doc.Text(line)
	}
	doc.FeedLines(geo.FeedLines)
	doc.PartialCut()
	return doc.Bytes()
}
