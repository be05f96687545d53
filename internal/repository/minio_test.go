package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPublicURL(t *testing.T) {
	i := &ImageStorage{
		BucketName: "images",
		publicBase: "http://localhost:9000/images",
	}

	require.Equal(t, "http://localhost:9000/images/uploads/1-a.png", i.PublicURL("uploads/1-a.png"))
}

func TestObjectNameFromURL(t *testing.T) {
	i := &ImageStorage{
		BucketName: "images",
		publicBase: "http://localhost:9000/images",
	}

	tests := []struct {
		name       string
		url        string
		expected   string
		expectFail bool
	}{
		{
			name:     "round trip",
			url:      i.PublicURL("uploads/1-a.png"),
			expected: "uploads/1-a.png",
		},
		{
			name:       "foreign url",
			url:        "http://elsewhere:9000/other/uploads/1-a.png",
			expectFail: true,
		},
		{
			name:       "bare base",
			url:        "http://localhost:9000/images/",
			expectFail: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			objectName, err := i.ObjectNameFromURL(tt.url)
			if tt.expectFail {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, objectName)
		})
	}
}
