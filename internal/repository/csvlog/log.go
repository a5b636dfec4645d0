package csvlog

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/onlinebazaar/cart/internal/repository"
)

// timestampLayout is the fixed format of the first column.
const timestampLayout = "2006-01-02 15:04:05"

var header = []string{"timestamp", "action", "product_id", "product_name", "quantity", "details"}

// TransactionLog implements repository.TransactionLog as an append-only CSV
// file. The header row is written once when the file is newly created or
// found empty.
type TransactionLog struct {
	path string
}

// NewTransactionLog creates a new CSV-file-backed transaction log.
func NewTransactionLog(path string) *TransactionLog {
	return &TransactionLog{path: path}
}

// Append writes one record to the end of the log.
func (l *TransactionLog) Append(ctx context.Context, entry repository.TransactionEntry) error {
	needHeader, err := l.needsHeader()
	if err != nil {
		return err
	}

	if dir := filepath.Dir(l.path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open transaction log: %w", err)
	}

	w := csv.NewWriter(f)
	if needHeader {
		if err := w.Write(header); err != nil {
			f.Close()
			return fmt.Errorf("write transaction log header: %w", err)
		}
	}

	row := []string{
		entry.Timestamp.Format(timestampLayout),
		entry.Action,
		entry.ProductID,
		entry.ProductName,
		strconv.Itoa(entry.Quantity),
		entry.Details,
	}
	if err := w.Write(row); err != nil {
		f.Close()
		return fmt.Errorf("write transaction log record: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush transaction log: %w", err)
	}
	return f.Close()
}

// needsHeader reports whether the log file is missing or empty.
func (l *TransactionLog) needsHeader() (bool, error) {
	info, err := os.Stat(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, fmt.Errorf("stat transaction log: %w", err)
	}
	return info.Size() == 0, nil
}
