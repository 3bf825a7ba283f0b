package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Akshat190/qr-main/internal/entity"
)

const reportSheet = "Monthly Orders"

var reportHeader = []interface{}{"Order ID", "Date", "Time", "Table Number", "Total Amount", "Items", "Status"}

// ReportStore is the slice of the order repository the aggregator needs.
type ReportStore interface {
	ListOrdersBetween(ctx context.Context, restaurantID string, from, to time.Time) ([]entity.Order, error)
}

type ReportService struct {
	reportStore ReportStore
}

// NewReportService creates a new instance of ReportService.
func NewReportService(reportStore ReportStore) *ReportService {
	return &ReportService{reportStore: reportStore}
}

// MonthWindow is the calendar month containing ref, as a half-open interval.
// The explicit upper bound keeps an export stable once the month is over.
func MonthWindow(ref time.Time) (from, to time.Time) {
	ref = ref.UTC()
	from = time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	to = from.AddDate(0, 1, 0)
	return from, to
}

// ExportMonth aggregates the month's orders into a single-sheet XLSX
// workbook and returns it as a download-ready byte buffer with its filename.
// A store failure aborts the export; no partial file is produced.
func (s *ReportService) ExportMonth(ctx context.Context, restaurantID string, ref time.Time) ([]byte, string, error) {
	from, to := MonthWindow(ref)

	orders, err := s.reportStore.ListOrdersBetween(ctx, restaurantID, from, to)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing orders for monthly report")
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(reportSheet); err != nil {
		return nil, "", err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, "", err
	}

	if err := f.SetSheetRow(reportSheet, "A1", &reportHeader); err != nil {
		return nil, "", err
	}

	for i, order := range orders {
		row := []interface{}{
			order.ID,
			order.Timestamp.Format("2006-01-02"),
			order.Timestamp.Format("15:04:05"),
			order.TableNumber,
			fmt.Sprintf("%.2f", order.TotalPrice),
			joinItems(order.Items),
			string(order.Status),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(reportSheet, cell, &row); err != nil {
			return nil, "", err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("monthly-orders-%s.xlsx", from.Format("2006-01"))
	return buf.Bytes(), filename, nil
}

func joinItems(items []entity.OrderItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%s (x%d)", item.Name, item.Quantity))
	}
	return strings.Join(parts, ", ")
}
