package kv

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
)

// FileStore keeps each key in its own file under dir. Writes go through a
// temporary file and a rename so a failed write never truncates the
// previous value.
type FileStore struct {
	dir      string
	compress bool
	encoder  *zstd.Encoder
	decoder  *zstd.Decoder
}

// NewFileStore creates the directory if needed. With compress set, values
// are stored zstd-compressed in "<key>.json.zst".
func NewFileStore(dir string, compress bool) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	fs := &FileStore{dir: dir, compress: compress}
	if !compress {
		return fs, nil
	}

	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
	if err != nil {
		encoder.Close()
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	fs.encoder = encoder
	fs.decoder = decoder
	return fs, nil
}

// Path returns the file that holds key.
func (f *FileStore) Path(key string) string {
	name := key + ".json"
	if f.compress {
		name += ".zst"
	}
	return filepath.Join(f.dir, name)
}

func (f *FileStore) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(f.Path(key))
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	if f.compress {
		data, err = f.decoder.DecodeAll(data, nil)
		if err != nil {
			return "", false, fmt.Errorf("decompressing %s: %w", key, err)
		}
	}
	return string(data), true, nil
}

func (f *FileStore) Set(key, value string) error {
	data := []byte(value)
	if f.compress {
		data = f.encoder.EncodeAll(data, make([]byte, 0, len(data)/2))
	}

	target := f.Path(key)
	tmpFile := target + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}
	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}
	if err := file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, target)
}

func (f *FileStore) Close() error {
	if f.encoder != nil {
		f.encoder.Close()
	}
	if f.decoder != nil {
		f.decoder.Close()
	}
	return nil
}
