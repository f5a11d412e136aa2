package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeCursorToken(t *testing.T) {
	// Test case 1: Standard date/time values
	createdAt := time.Date(2024, 1, 15, 14, 30, 45, 123456789, time.UTC)
	collectionID := "7f9c3a10-10a1-4c3e-9d3e-2a0c8a11b001"

	token := EncodeCursorToken(createdAt, collectionID)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedCreatedAt, decodedID, err := DecodeCursorToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, createdAt, decodedCreatedAt, "Created at time should match after decode")
	assert.Equal(t, collectionID, decodedID, "Collection ID should match after decode")

	// Test case 2: Current time values
	now := time.Now().UTC()
	nowToken := EncodeCursorToken(now, collectionID)
	decodedNow, _, err := DecodeCursorToken(nowToken)
	assert.NoError(t, err, "Decoding current time should not return an error")
	assert.True(t, now.Equal(decodedNow), "Current time should match after decode")
}

func TestDecodeCursorTokenError(t *testing.T) {
	// Test invalid base64
	_, _, err := DecodeCursorToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode", "Error should mention base64 decoding")

	// Test invalid format (missing separator)
	invalidToken := "MjAyNC0wMS0xNVQwMDowMDowMFo=" // Base64 encoded date without separator
	_, _, err = DecodeCursorToken(invalidToken)
	assert.Error(t, err, "Should return an error for invalid token format")
	assert.Contains(t, err.Error(), "split", "Error should mention splitting issue")

	// Test invalid date component
	badDate := EncodeMultiFieldToken("notadate", "some-id")
	_, _, err = DecodeCursorToken(badDate)
	assert.Error(t, err, "Should return an error for invalid date format")
	assert.Contains(t, err.Error(), "created_at parse", "Error should mention date parsing issue")

	// Test empty ID component
	emptyID := EncodeMultiFieldToken(time.Now().UTC().Format(time.RFC3339Nano), "")
	_, _, err = DecodeCursorToken(emptyID)
	assert.Error(t, err, "Should return an error for an empty id field")
}

func TestEncodeDecodeMultiFieldToken(t *testing.T) {
	fields := []string{"a", "b", "c"}
	token := EncodeMultiFieldToken(fields...)

	decoded, err := DecodeMultiFieldToken(token)
	assert.NoError(t, err)
	assert.Equal(t, fields, decoded)
}
