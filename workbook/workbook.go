// Package workbook exports an inventory snapshot as an Excel workbook.
package workbook

import (
	"fmt"
	"io"
	"time"

	"github.com/etnz/stock"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the exported workbook.
const (
	ProductsSheet     = "Products"
	TransactionsSheet = "Transactions"
)

var (
	productsHeader     = []any{"ID", "Company", "Category", "Name", "Specs", "Price", "Stock", "Value", "Description", "Last Updated"}
	transactionsHeader = []any{"ID", "Date", "Type", "Item ID", "Item", "Quantity", "Unit Price", "Total", "Party", "Note"}
)

// New builds a workbook with one sheet for the catalog, in catalog order, and
// one for the ledger, most recent first.
func New(items []stock.StockItem, entries []stock.LedgerEntry) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", ProductsSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(TransactionsSheet); err != nil {
		return nil, err
	}

	rows := make([][]any, 0, len(items)+1)
	rows = append(rows, productsHeader)
	for _, it := range items {
		rows = append(rows, []any{
			it.ID, string(it.Company), string(it.Category), it.Name, it.Specs.String(),
			it.Price.InexactFloat64(), it.Stock, it.Value().InexactFloat64(),
			it.Description, it.LastUpdated.Format(time.DateTime),
		})
	}
	if err := writeRows(f, ProductsSheet, rows); err != nil {
		return nil, err
	}

	rows = make([][]any, 0, len(entries)+1)
	rows = append(rows, transactionsHeader)
	for _, e := range entries {
		rows = append(rows, []any{
			e.ID, e.Timestamp.Format(time.DateTime), string(e.Direction), e.ItemID, e.ItemName,
			e.Quantity, e.UnitPrice.InexactFloat64(), e.Total().InexactFloat64(),
			e.Counterparty, e.Note,
		})
	}
	if err := writeRows(f, TransactionsSheet, rows); err != nil {
		return nil, err
	}
	return f, nil
}

// Write exports the snapshot to w in xlsx format.
func Write(w io.Writer, items []stock.StockItem, entries []stock.LedgerEntry) error {
	f, err := New(items, entries)
	if err != nil {
		return fmt.Errorf("could not build workbook: %w", err)
	}
	defer f.Close()
	if err := f.Write(w); err != nil {
		return fmt.Errorf("could not write workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("sheet %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
