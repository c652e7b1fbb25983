package handlers

import (
	"fmt"
	"io"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "pricegen/server/errors"
)

// formWorkbook reads one uploaded workbook part into memory, enforcing the
// extension and the size cap before any parsing happens.
func formWorkbook(c *gin.Context, field string, maxBytes int64) ([]byte, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("File '%s' wajib diunggah", field), err)
	}

	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".xlsx") {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("File '%s' harus berformat .xlsx, diterima: %s", field, fileHeader.Filename), nil)
	}

	if fileHeader.Size > maxBytes {
		return nil, apperrors.NewRequestTooLargeError(
			fmt.Sprintf("File '%s' melebihi batas %d MB", field, maxBytes>>20), nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to open uploaded file", err)
	}
	defer file.Close()

	// the size header is client-supplied, cap the actual read too
	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return nil, apperrors.NewInternalError("failed to read uploaded file", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, apperrors.NewRequestTooLargeError(
			fmt.Sprintf("File '%s' melebihi batas %d MB", field, maxBytes>>20), nil)
	}

	return data, nil
}

// optionalFormWorkbook reads an upload that may be absent. Missing parts
// return nil bytes without an error.
func optionalFormWorkbook(c *gin.Context, field string, maxBytes int64) ([]byte, error) {
	if _, err := c.FormFile(field); err != nil {
		return nil, nil
	}
	return formWorkbook(c, field, maxBytes)
}
