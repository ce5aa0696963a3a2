package pagination_test

import (
	"testing"
	"time"

	"github.com/finbooks/finbooks_app/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	entityDate := time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 7, 15, 9, 30, 12, 345678000, time.UTC)

	token := pagination.EncodeToken(entityDate, createdAt)
	gotDate, gotCreated, err := pagination.DecodeToken(token)

	require.NoError(t, err)
	assert.True(t, gotDate.Equal(entityDate))
	assert.True(t, gotCreated.Equal(createdAt))
}

func TestDecodeToken_InvalidBase64(t *testing.T) {
	_, _, err := pagination.DecodeToken("not-base64!!!")
	assert.Error(t, err)
}

func TestDecodeToken_MissingSeparator(t *testing.T) {
	// Valid base64 but no separator inside.
	_, _, err := pagination.DecodeToken("aGVsbG8=")
	assert.Error(t, err)
}

func TestDecodeToken_BadTimestamp(t *testing.T) {
	_, _, err := pagination.DecodeToken(pagination.EncodeToken(time.Now(), time.Now())[:8])
	assert.Error(t, err)
}
