package util_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	util "github.com/saulo-duarte/chat-educacional/internal/utils"
)

func TestTimestampMarshal(t *testing.T) {
	ts := util.NewTimestamp(time.Date(2025, 3, 10, 15, 4, 5, 0, time.UTC))

	raw, err := json.Marshal(ts)
	require.NoError(t, err)

	var s string
	require.NoError(t, json.Unmarshal(raw, &s))

	parsed, err := time.Parse(time.RFC3339Nano, s)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(ts.Time))

	_, offset := parsed.Zone()
	assert.Equal(t, -3*60*60, offset)
}

func TestTimestampZeroIsNull(t *testing.T) {
	raw, err := json.Marshal(util.Timestamp{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(raw))
}
