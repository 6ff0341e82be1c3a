package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOnlyUnmarshal(t *testing.T) {
	var d DateOnly

	// The request contract is a plain calendar date.
	require.NoError(t, json.Unmarshal([]byte(`"2026-08-29"`), &d))
	assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), d.Time)

	// Full RFC3339 instants are accepted as well.
	require.NoError(t, json.Unmarshal([]byte(`"2026-08-29T15:04:05Z"`), &d))
	assert.Equal(t, time.Date(2026, 8, 29, 15, 4, 5, 0, time.UTC), d.Time)

	assert.Error(t, json.Unmarshal([]byte(`"29/08/2026"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`"not a date"`), &d))
}

func TestDateOnlyMarshal(t *testing.T) {
	d := DateOnly{Time: time.Date(2026, 8, 29, 15, 4, 5, 0, time.UTC)}
	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-08-29"`, string(out))
}

func TestCreateEntryRequestAcceptsPlainDate(t *testing.T) {
	body := []byte(`{
		"party_id": "party-1",
		"type": "INVOICE",
		"amount": "120.50",
		"date": "2026-08-01",
		"reference": {"kind": "sales_invoices", "id": 42}
	}`)

	var req CreateEntryRequest
	require.NoError(t, json.Unmarshal(body, &req))
	assert.Equal(t, "party-1", req.PartyID)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), req.TransactionDate.Time)
	require.NotNil(t, req.Reference)
	assert.Equal(t, int64(42), req.Reference.ID)
}
