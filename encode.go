package stock

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// MarshalJSON implements the json.Marshaler interface with a canonical field
// order.
func (it StockItem) MarshalJSON() ([]byte, error) {
	var w orderedObject
	w.Field("id", it.ID)
	w.Field("company", it.Company)
	w.Field("category", it.Category)
	w.Field("name", it.Name)
	w.OmitEmpty("specs", it.Specs)
	w.Field("price", it.Price)
	w.Field("stock", it.Stock)
	w.OmitEmpty("description", it.Description)
	w.Field("lastUpdated", it.LastUpdated.Format(time.RFC3339Nano))
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (it *StockItem) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID          string          `json:"id"`
		Company     Company         `json:"company"`
		Category    Category        `json:"category"`
		Name        string          `json:"name"`
		Specs       Specs           `json:"specs"`
		Price       decimal.Decimal `json:"price"`
		Stock       int             `json:"stock"`
		Description string          `json:"description"`
		LastUpdated time.Time       `json:"lastUpdated"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*it = StockItem{
		ID:          temp.ID,
		Company:     temp.Company,
		Category:    temp.Category,
		Name:        temp.Name,
		Specs:       temp.Specs.Clone(),
		Price:       temp.Price,
		Stock:       temp.Stock,
		Description: temp.Description,
		LastUpdated: temp.LastUpdated,
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface with a canonical field
// order.
func (e LedgerEntry) MarshalJSON() ([]byte, error) {
	var w orderedObject
	w.Field("id", e.ID)
	w.Field("timestamp", e.Timestamp.Format(time.RFC3339Nano))
	w.Field("direction", e.Direction)
	w.Field("itemId", e.ItemID)
	w.Field("itemName", e.ItemName)
	w.Field("quantity", e.Quantity)
	w.Field("unitPrice", e.UnitPrice)
	w.Field("totalAmount", e.total)
	w.OmitEmpty("counterparty", e.Counterparty)
	w.OmitEmpty("note", e.Note)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface. The total is
// decoded as is, the ledger checks it when loading.
func (e *LedgerEntry) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID           string          `json:"id"`
		Timestamp    time.Time       `json:"timestamp"`
		Direction    Direction       `json:"direction"`
		ItemID       string          `json:"itemId"`
		ItemName     string          `json:"itemName"`
		Quantity     int             `json:"quantity"`
		UnitPrice    decimal.Decimal `json:"unitPrice"`
		TotalAmount  decimal.Decimal `json:"totalAmount"`
		Counterparty string          `json:"counterparty"`
		Note         string          `json:"note"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*e = LedgerEntry{
		ID:           temp.ID,
		ItemID:       temp.ItemID,
		ItemName:     temp.ItemName,
		Direction:    temp.Direction,
		Quantity:     temp.Quantity,
		UnitPrice:    temp.UnitPrice,
		Counterparty: temp.Counterparty,
		Note:         temp.Note,
		Timestamp:    temp.Timestamp,
		total:        temp.TotalAmount,
	}
	return nil
}

// EncodeCatalog writes items to w in JSONL format, one item per line, in
// catalog order.
func EncodeCatalog(w io.Writer, items []StockItem) error {
	return encodeLines(w, items)
}

// DecodeCatalog reads items from a stream of JSONL data.
func DecodeCatalog(r io.Reader) ([]StockItem, error) {
	return decodeLines[StockItem](r)
}

// EncodeLedger writes entries to w in JSONL format, one entry per line. The
// caller passes them in chronological order.
func EncodeLedger(w io.Writer, entries []LedgerEntry) error {
	return encodeLines(w, entries)
}

// DecodeLedger reads entries from a stream of JSONL data.
func DecodeLedger(r io.Reader) ([]LedgerEntry, error) {
	return decodeLines[LedgerEntry](r)
}

func encodeLines[T any](w io.Writer, records []T) error {
	for _, rec := range records {
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	return nil
}

func decodeLines[T any](r io.Reader) ([]T, error) {
	records := make([]T, 0)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue // Skip empty lines
		}
		var rec T
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return records, nil
}
