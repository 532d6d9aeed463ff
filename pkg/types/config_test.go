// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name         string
		in           BatchConfig
		want         BatchConfig
		wantWarnings []string
	}{
		{
			name: "zero value falls back to all defaults",
			in:   BatchConfig{},
			want: BatchConfig{
				ImagesPerPage: 1,
				Margin:        0,
				LabelPrefix:   "Question",
				Output:        "combined_output.pdf",
			},
			wantWarnings: []string{"invalid images_per_page 0"},
		},
		{
			name: "valid config passes through unchanged",
			in: BatchConfig{
				Directory:     "scans",
				ImagesPerPage: 3,
				Margin:        12,
				LabelImages:   true,
				LabelPrefix:   "Figure",
				Output:        "album.pdf",
			},
			want: BatchConfig{
				Directory:     "scans",
				ImagesPerPage: 3,
				Margin:        12,
				LabelImages:   true,
				LabelPrefix:   "Figure",
				Output:        "album.pdf",
			},
		},
		{
			name: "negative margin replaced with warning",
			in:   BatchConfig{ImagesPerPage: 2, Margin: -5},
			want: BatchConfig{
				ImagesPerPage: 2,
				Margin:        0,
				LabelPrefix:   "Question",
				Output:        "combined_output.pdf",
			},
			wantWarnings: []string{"invalid margin -5"},
		},
		{
			name: "negative images_per_page replaced with warning",
			in:   BatchConfig{ImagesPerPage: -1, Margin: 4},
			want: BatchConfig{
				ImagesPerPage: 1,
				Margin:        4,
				LabelPrefix:   "Question",
				Output:        "combined_output.pdf",
			},
			wantWarnings: []string{"invalid images_per_page -1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			got := tt.in.Normalize(&buf)
			assert.Equal(t, tt.want, got)
			if len(tt.wantWarnings) == 0 {
				assert.Empty(t, buf.String())
				return
			}
			for _, warn := range tt.wantWarnings {
				assert.Contains(t, buf.String(), warn)
			}
		})
	}
}

func TestNormalizeDoesNotMutateReceiver(t *testing.T) {
	in := BatchConfig{ImagesPerPage: -2}
	var buf bytes.Buffer
	out := in.Normalize(&buf)
	require.Equal(t, 1, out.ImagesPerPage)
	assert.Equal(t, -2, in.ImagesPerPage, "Normalize must operate on a copy")
}
