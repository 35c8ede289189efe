package pkg_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/photo-import/pkg"
)

func TestParseKeywords(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, pkg.ParseKeywords("a,b,c"))
	assert.Equal(t, []string{"a", " b", "c "}, pkg.ParseKeywords("a, b,c "), "no trimming")
	assert.Equal(t, []string{""}, pkg.ParseKeywords(""), "explicit empty yields one empty keyword")
}

func TestMetadataRequest_Tags(t *testing.T) {
	tests := []struct {
		name string
		req  pkg.MetadataRequest
		want map[string]string
	}{
		{
			name: "empty request",
			req:  pkg.MetadataRequest{},
			want: map[string]string{},
		},
		{
			name: "keywords joined",
			req:  pkg.MetadataRequest{Keywords: []string{"a", "b", "c"}},
			want: map[string]string{pkg.TagKeywords: "a,b,c"},
		},
		{
			name: "explicit empty keyword",
			req:  pkg.MetadataRequest{Keywords: []string{""}},
			want: map[string]string{pkg.TagKeywords: ""},
		},
		{
			name: "all fields",
			req: pkg.MetadataRequest{
				Keywords:    []string{"holiday"},
				Credit:      "Jane Doe",
				Description: "Sunset",
				Copyright:   "(c) Jane Doe",
				Location:    "Brighton",
			},
			want: map[string]string{
				pkg.TagKeywords:    "holiday",
				pkg.TagCredit:      "Jane Doe",
				pkg.TagDescription: "Sunset",
				pkg.TagCopyright:   "(c) Jane Doe",
				pkg.TagLocation:    "Brighton",
			},
		},
		{
			name: "unset fields are left out",
			req:  pkg.MetadataRequest{Credit: "Jane Doe"},
			want: map[string]string{pkg.TagCredit: "Jane Doe"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.Tags())
			assert.Equal(t, len(tt.want) == 0, tt.req.IsEmpty())
		})
	}
}

func TestMergeMetadata(t *testing.T) {
	t.Run("writes requested tags", func(t *testing.T) {
		w := newFakeWriter()
		req := pkg.MetadataRequest{Keywords: []string{"a", "b"}, Location: "Oslo"}
		require.NoError(t, pkg.MergeMetadata(w, "/out/a.jpg", req))
		assert.Equal(t, map[string]string{pkg.TagKeywords: "a,b", pkg.TagLocation: "Oslo"}, w.writes["/out/a.jpg"])
	})

	t.Run("empty request is a no-op", func(t *testing.T) {
		w := newFakeWriter()
		require.NoError(t, pkg.MergeMetadata(w, "/out/a.jpg", pkg.MetadataRequest{}))
		assert.Empty(t, w.writes)
		require.NoError(t, pkg.MergeMetadata(nil, "/out/a.jpg", pkg.MetadataRequest{}))
	})

	t.Run("writer failure", func(t *testing.T) {
		w := &fakeWriter{err: errors.New("malformed file")}
		err := pkg.MergeMetadata(w, "/out/a.jpg", pkg.MetadataRequest{Credit: "x"})
		assert.True(t, errors.Is(err, pkg.ErrMetadataWrite))
		assert.Contains(t, err.Error(), "malformed file")
	})

	t.Run("no writer", func(t *testing.T) {
		err := pkg.MergeMetadata(nil, "/out/a.jpg", pkg.MetadataRequest{Credit: "x"})
		assert.True(t, errors.Is(err, pkg.ErrMetadataWrite))
	})
}
