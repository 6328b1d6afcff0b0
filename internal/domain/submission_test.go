package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelliceng/BMC-Dining-App/internal/domain"
)

func TestMediaTypeValid(t *testing.T) {
	assert.True(t, domain.MediaTypeImage.Valid())
	assert.True(t, domain.MediaTypeVideo.Valid())

	for _, invalid := range []string{"audio", "", "IMAGE", "gif"} {
		assert.False(t, domain.MediaType(invalid).Valid(), invalid)
	}
}

func TestSubmissionJSONFieldNames(t *testing.T) {
	sub := domain.Submission{
		ID:        "abc123",
		Name:      "Alex",
		Email:     "a@x.edu",
		MediaURL:  "https://media.test/image/Alex_1",
		MediaType: domain.MediaTypeImage,
		Caption:   "Lunch",
		DateAdded: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	raw, err := json.Marshal(sub)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	for _, key := range []string{"id", "name", "email", "mediaUrl", "mediaType", "caption", "dateAdded"} {
		assert.Contains(t, fields, key)
	}
}
