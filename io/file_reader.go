package io

import (
	"errors"
	"os"
)

// FileReader is a thin read-only wrapper the coldump CLI uses to load
// a column buffer off disk. Trimmed from the teacher's FileReader,
// which also supported writing and zero-filling for a block-store
// writer — out of scope here, since the decode path only ever reads
// (spec.md §1).
type FileReader struct {
	path   string
	file   *os.File
	opened bool
}

func NewFileReader(path string) *FileReader {
	return &FileReader{path: path}
}

func (f *FileReader) Open() (topErr error) {
	f.file, topErr = os.OpenFile(f.path, os.O_RDONLY, 0644)
	if topErr == nil {
		f.opened = true
	}
	return topErr
}

func (f *FileReader) Close() error {
	if f.opened == false {
		return nil
	}

	return f.file.Close()
}

func (f *FileReader) ReadAt(out []byte, off, length int) (err error) {
	if f.opened == false {
		err = errors.New("file not opened")
		return err
	}

	var readBytes int
	readBytes, err = f.file.ReadAt(out, int64(off))

	if readBytes != length {
		err = errors.New("read bytes mismatch")
		return err
	}

	return nil
}

// ReadAll reads the entire file into memory, the shape
// dispatch.NewIterator and dispatch.Describe expect a column buffer
// in.
func (f *FileReader) ReadAll() ([]byte, error) {
	if f.opened == false {
		return nil, errors.New("file not opened")
	}

	info, err := f.file.Stat()
	if err != nil {
		return nil, err
	}

	buf := make([]byte, info.Size())
	if err := f.ReadAt(buf, 0, len(buf)); err != nil {
		return nil, err
	}
	return buf, nil
}
