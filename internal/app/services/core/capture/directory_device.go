package capture

import (
	"context"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"wellness-wizard/internal/pkg/exceptions"
)

// DirectoryDevice serves the image files of a directory as frames, in name
// order, wrapping around after the last one.
type DirectoryDevice struct {
	Dir string
}

func NewDirectoryDevice(dir string) *DirectoryDevice {
	return &DirectoryDevice{Dir: dir}
}

func isImageFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png":
		return true
	}
	return false
}

func (d *DirectoryDevice) Open(ctx context.Context, constraints Constraints) (Stream, error) {
	info, err := os.Stat(d.Dir)
	if err != nil {
		return nil, exceptions.ErrDeviceUnavailable(err)
	}
	if !info.IsDir() {
		return nil, exceptions.ErrDeviceUnavailable(errNotADirectory)
	}

	entries, err := os.ReadDir(d.Dir)
	if err != nil {
		return nil, exceptions.ErrDeviceUnavailable(err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && isImageFile(entry.Name()) {
			files = append(files, filepath.Join(d.Dir, entry.Name()))
		}
	}
	if len(files) == 0 {
		return nil, exceptions.ErrDeviceUnavailable(errNoFrames)
	}
	sort.Strings(files)

	return &directoryStream{files: files, maxPixels: constraints.withDefaults().MaxPixels}, nil
}

type directoryStream struct {
	mu        sync.Mutex
	files     []string
	next      int
	maxPixels int
	closed    bool
}

func (s *directoryStream) Frame(ctx context.Context) (image.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, errStreamClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := s.files[s.next%len(s.files)]
	s.next++

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return decodeBounded(raw, s.maxPixels)
}

func (s *directoryStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
