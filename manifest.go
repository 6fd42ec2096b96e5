package iochunks

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/ryanuber/go-glob"
	"gopkg.in/yaml.v3"
)

// Region is a named byte range of a file.
type Region struct {
	Name        string
	Start       int64
	Size        int64
	Compression Compression
}

// Open creates a Chunk over the region of host.
func (r Region) Open(host Host) (*Chunk, error) {
	c, err := NewAt(host, r.Start, r.Size)
	if err != nil {
		return nil, errors.Wrapf(err, "region %s", r.Name)
	}
	return c, nil
}

// End is the offset right after the region's last byte.
func (r Region) End() int64 {
	return r.Start + r.Size
}

// Manifest is a list of regions, usually loaded from YAML:
//
//	regions:
//	  - name: header
//	    start: 0
//	    size: 512
//	  - name: payload
//	    start: 512
//	    size: 4096
//	    compression: zstd
type Manifest struct {
	Regions []Region
}

type manifestFile struct {
	Regions []struct {
		Name        string `yaml:"name"`
		Start       int64  `yaml:"start"`
		Size        int64  `yaml:"size"`
		Compression string `yaml:"compression"`
	} `yaml:"regions"`
}

// ParseManifest reads a YAML manifest from r and validates it.
func ParseManifest(r io.Reader) (*Manifest, error) {
	buffer, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var f manifestFile
	err = yaml.Unmarshal(buffer, &f)
	if err != nil {
		return nil, errors.Wrap(err, "parsing manifest")
	}
	m := &Manifest{Regions: make([]Region, 0, len(f.Regions))}
	for i, raw := range f.Regions {
		comp, err := ParseCompression(raw.Compression)
		if err != nil {
			return nil, errors.Wrapf(err, "region %d", i)
		}
		m.Regions = append(m.Regions, Region{
			Name:        raw.Name,
			Start:       raw.Start,
			Size:        raw.Size,
			Compression: comp,
		})
	}
	return m, m.Validate()
}

// LoadManifest reads the manifest at path.
func LoadManifest(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := ParseManifest(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return m, nil
}

// Validate checks that every region has a unique name that's safe to use as
// a file name, and a non-negative start and size.
func (m *Manifest) Validate() error {
	names := make(map[string]struct{}, len(m.Regions))
	for i, r := range m.Regions {
		if r.Name == "" {
			return errors.Wrapf(ErrValue, "region %d has no name", i)
		}
		if r.Name == "." || r.Name == ".." || strings.ContainsAny(r.Name, `/\`) || filepath.IsAbs(r.Name) {
			return errors.Wrapf(ErrValue, "region name %q is not a valid file name", r.Name)
		}
		if _, ok := names[r.Name]; ok {
			return errors.Wrapf(ErrValue, "duplicate region %q", r.Name)
		}
		names[r.Name] = struct{}{}
		if r.Start < 0 {
			return errors.Wrapf(ErrValue, "region %s: negative start %d", r.Name, r.Start)
		}
		if r.Size < 0 {
			return errors.Wrapf(ErrValue, "region %s: negative size %d", r.Name, r.Size)
		}
		if r.Compression.String() == "unknown" {
			return errors.Wrapf(ErrValue, "region %s: unknown compression", r.Name)
		}
	}
	return nil
}

// Filter returns the regions whose name matches the glob pattern. Only * is
// special in the pattern. An empty pattern matches everything.
func (m *Manifest) Filter(pattern string) []Region {
	if pattern == "" {
		return m.Regions
	}
	out := make([]Region, 0)
	for _, r := range m.Regions {
		if glob.Glob(pattern, r.Name) {
			out = append(out, r)
		}
	}
	return out
}
