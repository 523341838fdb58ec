package meta

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"gopkg.in/yaml.v3"
)

// Service loads YAML documents from any afs-supported location.
type Service struct {
	fs      afs.Service
	options []storage.Option
	lookup  func(string) (string, bool)
}

// Load downloads URL, expands environment references and decodes the YAML
// document into dest.
func (s *Service) Load(ctx context.Context, URL string, dest interface{}) error {
	data, err := s.fs.DownloadWithURL(ctx, URL, s.options...)
	if err != nil {
		return fmt.Errorf("failed to download %s: %w", URL, err)
	}
	return s.Decode(URL, data, dest)
}

// Decode expands environment references in data and decodes it into dest.
func (s *Service) Decode(URL string, data []byte, dest interface{}) error {
	expanded := expandEnv(string(data), s.lookup)
	if err := yaml.Unmarshal([]byte(expanded), dest); err != nil {
		return fmt.Errorf("failed to decode %s: %w", URL, err)
	}
	return nil
}

// New creates a Service; options are passed to every download (for example an
// *embed.FS for embed:// URLs).
func New(fs afs.Service, options ...storage.Option) *Service {
	if fs == nil {
		fs = afs.New()
	}
	return &Service{fs: fs, options: options, lookup: osLookup}
}
