package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"pricegen/pricing"
)

// IssueFormat selects the encoding of the issue-list artifact.
type IssueFormat string

const (
	IssueCSV  IssueFormat = "csv"
	IssueXLSX IssueFormat = "xlsx"
	IssueJSON IssueFormat = "json"
)

// ParseIssueFormat validates an operator-supplied format; empty selects CSV.
func ParseIssueFormat(s string) (IssueFormat, error) {
	switch IssueFormat(s) {
	case "":
		return IssueCSV, nil
	case IssueCSV, IssueXLSX, IssueJSON:
		return IssueFormat(s), nil
	}
	return "", fmt.Errorf("unknown issue format %q", s)
}

var issueHeaders = []string{"Row", "Product_id", "SKU_id", "SKU Penjual", "Harga Lama", "Kategori", "Alasan"}

type issueRecord struct {
	Row       int    `json:"row"`
	ProductID string `json:"product_id"`
	SkuID     string `json:"sku_id"`
	SellerSku string `json:"sku_penjual"`
	OldPrice  int64  `json:"harga_lama"`
	Category  string `json:"kategori"`
	Reason    string `json:"alasan"`
}

func issueRecords(issues []pricing.Issue) []issueRecord {
	records := make([]issueRecord, 0, len(issues))
	for _, issue := range issues {
		records = append(records, issueRecord{
			Row:       issue.Row,
			ProductID: issue.ProductID,
			SkuID:     issue.SkuID,
			SellerSku: issue.SellerSku,
			OldPrice:  issue.OldPrice,
			Category:  string(issue.Reason.Kind),
			Reason:    issue.Reason.Message(),
		})
	}
	return records
}

// RenderIssues encodes the issue list in the requested format.
func RenderIssues(issues []pricing.Issue, format IssueFormat) (*Artifact, error) {
	switch format {
	case IssueCSV:
		return renderIssuesCSV(issues)
	case IssueXLSX:
		return renderIssuesExcel(issues)
	case IssueJSON:
		return renderIssuesJSON(issues)
	}
	return nil, fmt.Errorf("unknown issue format %q", format)
}

func renderIssuesJSON(issues []pricing.Issue) (*Artifact, error) {
	payload := map[string]interface{}{
		"exported_at": time.Now().Format(time.RFC3339),
		"total":       len(issues),
		"issues":      issueRecords(issues),
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(payload); err != nil {
		return nil, fmt.Errorf("failed to encode issues: %w", err)
	}

	return &Artifact{
		Name:        "product_discount_issues.json",
		ContentType: jsonContentType,
		Data:        buf.Bytes(),
	}, nil
}

func renderIssuesCSV(issues []pricing.Issue) (*Artifact, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(issueHeaders); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}
	for _, record := range issueRecords(issues) {
		row := []string{
			fmt.Sprintf("%d", record.Row),
			record.ProductID,
			record.SkuID,
			record.SellerSku,
			fmt.Sprintf("%d", record.OldPrice),
			record.Category,
			record.Reason,
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	return &Artifact{
		Name:        "product_discount_issues.csv",
		ContentType: csvContentType,
		Data:        buf.Bytes(),
	}, nil
}

func renderIssuesExcel(issues []pricing.Issue) (*Artifact, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, header := range issueHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to get cell name: %w", err)
		}
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for i, record := range issueRecords(issues) {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), record.Row)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), record.ProductID)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), record.SkuID)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), record.SellerSku)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), record.OldPrice)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), record.Category)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), record.Reason)
	}

	for i := range issueHeaders {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err == nil {
			f.SetColWidth(sheet, col, col, 18)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}

	return &Artifact{
		Name:        "product_discount_issues.xlsx",
		ContentType: xlsxContentType,
		Data:        buf.Bytes(),
	}, nil
}
