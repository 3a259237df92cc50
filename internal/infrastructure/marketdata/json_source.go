package marketdata

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"career-guide/internal/domain/catalog"
)

// JSONSource reads market data from a file, creating it with the built-in
// defaults on first run. Learning resources always come from the defaults.
type JSONSource struct {
	path   string
	logger *log.Logger
}

func NewJSONSource(path string, logger *log.Logger) *JSONSource {
	if logger == nil {
		logger = log.Default()
	}
	return &JSONSource{path: path, logger: logger}
}

func (s *JSONSource) Name() string { return "json" }

func (s *JSONSource) Load(_ context.Context) (catalog.Catalog, error) {
	md, err := s.readOrInit()
	if err != nil {
		return catalog.Catalog{}, err
	}
	return catalog.Catalog{Market: md, Resources: catalog.DefaultResources()}, nil
}

func (s *JSONSource) readOrInit() (catalog.MarketData, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		md := catalog.DefaultMarketData()
		if err := WriteJSON(s.path, md); err != nil {
			return catalog.MarketData{}, err
		}
		s.logger.Printf("market data status=created path=%s", s.path)
		return md, nil
	}
	if err != nil {
		return catalog.MarketData{}, fmt.Errorf("read market data %s: %w", s.path, err)
	}

	var md catalog.MarketData
	if err := json.Unmarshal(b, &md); err != nil {
		return catalog.MarketData{}, fmt.Errorf("decode market data %s: %w", s.path, err)
	}
	if err := md.Validate(); err != nil {
		return catalog.MarketData{}, fmt.Errorf("%s: %w", s.path, err)
	}
	s.logger.Printf("market data status=loaded path=%s skills=%d careers=%d", s.path, len(md.RequiredSkills), len(md.CareerPaths))
	return md, nil
}

// WriteJSON stores market data with two-space indentation.
func WriteJSON(path string, md catalog.MarketData) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(md); err != nil {
		return fmt.Errorf("encode market data: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create market data dir: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write market data %s: %w", path, err)
	}
	return nil
}
