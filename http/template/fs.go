package template

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sync"
)

//go:embed tmpl/*
var pkgFS embed.FS

// layeredFS opens a name from the first layer holding it.
// Which layer served a name is remembered, so later opens skip the search.
type layeredFS struct {
	layers []fs.FS

	mu    sync.RWMutex
	found map[string]int
}

func newLayeredFS(layers ...fs.FS) *layeredFS {
	return &layeredFS{layers: layers, found: make(map[string]int)}
}

func (l *layeredFS) Open(name string) (fs.File, error) {
	l.mu.RLock()
	i, ok := l.found[name]
	l.mu.RUnlock()
	if ok {
		return l.layers[i].Open(name)
	}

	for i, layer := range l.layers {
		f, err := layer.Open(name)
		if err == nil {
			l.mu.Lock()
			l.found[name] = i
			l.mu.Unlock()
			return f, nil
		}

		if !errors.Is(err, fs.ErrNotExist) && !errors.Is(err, fs.ErrInvalid) {
			return nil, fmt.Errorf("unable to open template %s: %w", name, err)
		}
	}

	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}
