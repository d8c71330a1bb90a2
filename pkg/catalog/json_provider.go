package catalog

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"sync"
)

// JSONProvider loads the catalog from a JSON file of rows exported from the
// stock spreadsheet. The file is read once and cached; Reload forces a
// re-read after the export is refreshed.
type JSONProvider struct {
	path string

	mu     sync.RWMutex
	loaded bool
	rows   []Row
	err    error
}

func NewJSONProvider(path string) *JSONProvider {
	return &JSONProvider{path: path}
}

func (p *JSONProvider) GetCatalog(ctx context.Context) ([]Row, error) {
	p.mu.RLock()
	if p.loaded {
		defer p.mu.RUnlock()
		return p.rows, p.err
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.loaded {
		p.rows, p.err = p.read()
		p.loaded = true
	}
	return p.rows, p.err
}

// Reload drops the cached rows so the next GetCatalog re-reads the file.
func (p *JSONProvider) Reload() {
	p.mu.Lock()
	p.loaded = false
	p.rows, p.err = nil, nil
	p.mu.Unlock()
}

func (p *JSONProvider) read() ([]Row, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, err
	}
	var raw []Row
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	// Rows with a blank name or code are export noise, drop them.
	rows := make([]Row, 0, len(raw))
	for _, r := range raw {
		r.ProductName = strings.TrimSpace(r.ProductName)
		r.StockCode = strings.TrimSpace(r.StockCode)
		if r.ProductName == "" || r.StockCode == "" {
			continue
		}
		rows = append(rows, r)
	}
	return rows, nil
}
