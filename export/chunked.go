package export

import (
	"archive/zip"
	"bytes"
	"fmt"

	"pricegen/pricing"
)

// DefaultChunkSize is the row cap per workbook part. Marketplace bulk
// uploads reject files above a few hundred promo rows.
const DefaultChunkSize = 500

// ChunkedWorkbooks splits the output across row-capped workbook parts and
// bundles them into one zip download.
type ChunkedWorkbooks struct {
	Tier      pricing.Tier
	ChunkSize int
}

func (b *ChunkedWorkbooks) Build(rows []pricing.OutputRow) (*Artifact, error) {
	size := b.ChunkSize
	if size <= 0 {
		size = DefaultChunkSize
	}

	chunks := chunkRows(rows, size)
	if len(chunks) == 0 {
		// an empty run still yields one headers-only part
		chunks = [][]pricing.OutputRow{nil}
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for i, chunk := range chunks {
		data, err := renderPromoWorkbook(chunk)
		if err != nil {
			return nil, err
		}

		name := fmt.Sprintf("product_discount_output_%s_part%02d.xlsx", b.Tier, i+1)
		entry, err := zw.Create(name)
		if err != nil {
			return nil, fmt.Errorf("failed to add zip entry %s: %w", name, err)
		}
		if _, err := entry.Write(data); err != nil {
			return nil, fmt.Errorf("failed to write zip entry %s: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize zip archive: %w", err)
	}

	return &Artifact{
		Name:        fmt.Sprintf("product_discount_output_%s_parts.zip", b.Tier),
		ContentType: zipContentType,
		Data:        buf.Bytes(),
	}, nil
}

func chunkRows(rows []pricing.OutputRow, size int) [][]pricing.OutputRow {
	var chunks [][]pricing.OutputRow
	for start := 0; start < len(rows); start += size {
		end := start + size
		if end > len(rows) {
			end = len(rows)
		}
		chunks = append(chunks, rows[start:end])
	}
	return chunks
}
