package meta

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

type document struct {
	Level    string   `yaml:"level"`
	Headers  []string `yaml:"headers"`
	MaxBatch int      `yaml:"maxBatch"`
}

func TestService_Load(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	URL := "mem://localhost/uuid4/meta/config.yaml"
	content := "level: ${env.UUID4_META_LEVEL:-info}\nheaders: [X-Request-ID]\nmaxBatch: 10\n"
	require.NoError(t, fs.Upload(ctx, URL, file.DefaultFileOsMode, strings.NewReader(content)))

	srv := New(fs)
	var doc document
	require.NoError(t, srv.Load(ctx, URL, &doc))
	assert.Equal(t, document{Level: "info", Headers: []string{"X-Request-ID"}, MaxBatch: 10}, doc)

	t.Setenv("UUID4_META_LEVEL", "debug")
	require.NoError(t, srv.Load(ctx, URL, &doc))
	assert.Equal(t, "debug", doc.Level)
}

func TestService_LoadErrors(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	srv := New(nil)

	var doc document
	err := srv.Load(ctx, "mem://localhost/uuid4/meta/missing.yaml", &doc)
	assert.ErrorContains(t, err, "failed to download")

	URL := "mem://localhost/uuid4/meta/broken.yaml"
	require.NoError(t, fs.Upload(ctx, URL, file.DefaultFileOsMode, strings.NewReader("maxBatch: [1, 2")))
	err = New(fs).Load(ctx, URL, &doc)
	assert.ErrorContains(t, err, "failed to decode")
}
