package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano

// EncodeToken creates a base64 cursor from a transaction date and entry ID.
// Statement pages are ordered by (transaction_date DESC, entry_id DESC), so
// the pair uniquely positions the last row of a page.
func EncodeToken(transactionDate time.Time, entryID string) string {
	tokenStr := fmt.Sprintf("%s|%s", transactionDate.Format(timeFormat), entryID)
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses a cursor back into its transaction date and entry ID.
func DecodeToken(token string) (time.Time, string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (split)")
	}

	transactionDate, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}

	return transactionDate, parts[1], nil
}

// TotalPages computes the page count for offset pagination.
func TotalPages(totalRecords int64, perPage int) int {
	if perPage <= 0 || totalRecords <= 0 {
		return 0
	}
	pages := totalRecords / int64(perPage)
	if totalRecords%int64(perPage) != 0 {
		pages++
	}
	return int(pages)
}
