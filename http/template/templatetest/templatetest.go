// Package templatetest provides an in-memory fs.FS for rendering templates in unit tests
// without a testdata/ directory.
package templatetest

import (
	"bytes"
	"io/fs"
	"os"
	"path"
	"time"

	"github.com/xy-planning-network/connect/http/template"
)

// NewParser constructs a template.Parser over the mocked files.
func NewParser(files ...*MockFile) template.Parser {
	return template.NewParser(template.WithFS(NewMockFS(files...)))
}

// MockFS is a flat, in-memory fs.FS keyed by file name.
type MockFS map[string]*MockFile

// NewMockFS constructs a MockFS holding files.
func NewMockFS(files ...*MockFile) MockFS {
	mfs := make(MockFS, len(files))
	for _, f := range files {
		mfs[f.name] = f
	}
	return mfs
}

// Glob matches pattern against the base name of every file, ignoring directories.
func (mfs MockFS) Glob(pattern string) ([]string, error) {
	_, pattern = path.Split(pattern)
	var matches []string
	for name := range mfs {
		ok, err := path.Match(pattern, path.Base(name))
		if err != nil {
			return nil, err
		}
		if ok {
			matches = append(matches, name)
		}
	}
	return matches, nil
}

// Open returns a fresh reader over the named file's contents.
func (mfs MockFS) Open(name string) (fs.File, error) {
	f, ok := mfs[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: os.ErrNotExist}
	}
	return &openFile{MockFile: f, r: bytes.NewReader(f.data)}, nil
}

// MockFile is an in-memory file implementing fs.FileInfo.
type MockFile struct {
	data []byte
	name string
}

// NewMockFile constructs a *MockFile.
func NewMockFile(name string, data []byte) *MockFile {
	return &MockFile{data: data, name: name}
}

func (m *MockFile) IsDir() bool        { return false }
func (m *MockFile) Mode() fs.FileMode  { return 0o444 }
func (m *MockFile) ModTime() time.Time { return time.Time{} }
func (m *MockFile) Name() string       { return path.Base(m.name) }
func (m *MockFile) Size() int64        { return int64(len(m.data)) }
func (m *MockFile) Sys() any           { return nil }

type openFile struct {
	*MockFile
	r *bytes.Reader
}

func (o *openFile) Close() error               { return nil }
func (o *openFile) Read(p []byte) (int, error) { return o.r.Read(p) }
func (o *openFile) Stat() (fs.FileInfo, error) { return o.MockFile, nil }
