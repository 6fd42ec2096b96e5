package iochunks

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Extract writes each region of the file at path into folder, naming the
// files after the regions. Regions are extracted in parallel, each by a
// worker with its own handle on the file, since chunks sharing a host can't be
// read concurrently.
func Extract(path string, regions []Region, folder string, op *ExtractionOptions) error {
	if op == nil {
		op = DefaultOptions()
	}
	if op.Perm == 0 || op.FolderPerm == 0 {
		def := DefaultOptions()
		o := *op
		if o.Perm == 0 {
			o.Perm = def.Perm
		}
		if o.FolderPerm == 0 {
			o.FolderPerm = def.FolderPerm
		}
		op = &o
	}
	if err := (&Manifest{Regions: regions}).Validate(); err != nil {
		return err
	}
	err := os.MkdirAll(folder, op.FolderPerm)
	if err != nil {
		return err
	}
	var g errgroup.Group
	g.SetLimit(max(op.Routines, 1))
	for _, r := range regions {
		r := r
		g.Go(func() error {
			err := extractRegion(path, r, folder, op)
			if err != nil && op.Verbose {
				op.log().WithFields(logrus.Fields{
					"region": r.Name,
					"file":   path,
				}).WithError(err).Error("Error while extracting region")
			}
			return err
		})
	}
	return g.Wait()
}

func extractRegion(path string, r Region, folder string, op *ExtractionOptions) error {
	host, err := OpenFile(path)
	if err != nil {
		return err
	}
	defer host.Close()
	c, err := r.Open(host)
	if err != nil {
		return err
	}
	return c.With(func(c *Chunk) error {
		var src io.Reader = c
		if op.Decompress && r.Compression != NoCompression {
			rdr, err := NewDecompressedReader(c, r.Compression)
			if err != nil {
				return errors.Wrapf(err, "region %s", r.Name)
			}
			defer rdr.Close()
			src = rdr
		}
		dest := filepath.Join(folder, r.Name)
		fil, err := os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, op.Perm)
		if err != nil {
			return err
		}
		n, err := io.Copy(fil, src)
		if err != nil {
			fil.Close()
			return errors.Wrapf(err, "copying region %s to %s", r.Name, dest)
		}
		if op.Verbose {
			op.log().WithFields(logrus.Fields{
				"region":      r.Name,
				"start":       r.Start,
				"size":        r.Size,
				"compression": r.Compression.String(),
				"written":     n,
			}).Info("Extracted region")
		}
		return fil.Close()
	})
}
