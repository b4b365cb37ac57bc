package sales

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"satistakip-backend/internal/report"
	"satistakip-backend/internal/state"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

var exportHeaders = []string{"Exec ID", "Exec Name", "Bill No", "Date", "Item", "SKU", "Quantity", "Unit Price", "Amount", "Branch"}

// exportRow: tek satışın export satırı. Temsilci/şube adı bulunamazsa id
// olduğu gibi yazılır.
func exportRow(st *state.AppState, s state.Sale) []string {
	execName := s.ExecID
	if e := st.FindExecutive(s.ExecID); e != nil {
		execName = e.Name
	}
	branchName := s.BranchID
	if b := st.FindBranch(s.BranchID); b != nil {
		branchName = b.Name
	}

	return []string{
		s.ExecID,
		execName,
		s.BillNo,
		s.Date,
		s.Item,
		s.SKU,
		strconv.Itoa(s.Qty),
		strconv.FormatFloat(s.UnitPrice, 'f', -1, 64),
		strconv.FormatFloat(report.SaleAmount(s), 'f', -1, 64),
		branchName,
	}
}

func buildCSV(st *state.AppState, rows []state.Sale) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeaders); err != nil {
		return nil, fmt.Errorf("CSV başlığı yazılamadı: %w", err)
	}
	for _, s := range rows {
		if err := w.Write(exportRow(st, s)); err != nil {
			return nil, fmt.Errorf("CSV satırı yazılamadı: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("CSV oluşturulamadı: %w", err)
	}
	return buf.Bytes(), nil
}

func buildXLSX(st *state.AppState, rows []state.Sale) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	for col, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("başlık hücresi yazılamadı: %w", err)
		}
	}

	for i, s := range rows {
		row := exportRow(st, s)
		// Sayısal kolonlar Excel'de sayı olarak kalsın
		values := []interface{}{
			row[0], row[1], row[2], row[3], row[4], row[5],
			s.Qty, s.UnitPrice, report.SaleAmount(s), row[9],
		}

		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("hücre yazılamadı: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("Excel dosyası oluşturulamadı: %w", err)
	}
	return buf.Bytes(), nil
}

func exportFilename(from, to, ext string) string {
	if from == "" {
		from = "all"
	}
	if to == "" {
		to = "all"
	}
	return fmt.Sprintf("sales_export_%s_to_%s.%s", from, to, ext)
}

// GET /api/sales/export/csv
// Liste ile aynı filtreleri alır, sonucu CSV dosyası olarak indirir.
func ExportCSVHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st := store.Read()
		from, to := c.Query("from"), c.Query("to")

		rows := filterSales(&st, c.Query("branch_id"), c.Query("exec_id"), c.Query("category"), from, to, c.Query("q"))

		data, err := buildCSV(&st, rows)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "CSV oluşturulamadı")
		}

		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+exportFilename(from, to, "csv")+`"`)
		return c.Send(data)
	}
}

// GET /api/sales/export/xlsx
func ExportXLSXHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st := store.Read()
		from, to := c.Query("from"), c.Query("to")

		rows := filterSales(&st, c.Query("branch_id"), c.Query("exec_id"), c.Query("category"), from, to, c.Query("q"))

		data, err := buildXLSX(&st, rows)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Excel dosyası oluşturulamadı")
		}

		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+exportFilename(from, to, "xlsx")+`"`)
		return c.Send(data)
	}
}
