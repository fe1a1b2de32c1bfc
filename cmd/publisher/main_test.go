package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomListing(t *testing.T) {
	for i := 0; i < 20; i++ {
		l := randomListing()

		assert.NotEmpty(t, l.ID)
		assert.True(t, strings.HasSuffix(l.URL, l.ID+".html"), l.URL)
		assert.GreaterOrEqual(t, l.Latitude, 37.70)
		assert.LessOrEqual(t, l.Latitude, 37.89)
		assert.GreaterOrEqual(t, l.Longitude, -122.51)
		assert.LessOrEqual(t, l.Longitude, -122.24)
	}
}

func TestRandomListing_WireShape(t *testing.T) {
	payload, err := json.Marshal(randomListing())
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(payload, &got))
	for _, key := range []string{"id", "name", "url", "price", "where", "latitude", "longitude", "timestamp"} {
		assert.Contains(t, got, key)
	}
}
