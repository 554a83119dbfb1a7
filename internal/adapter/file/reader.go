package file

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/couchcryptid/livable-cities/internal/domain"
	"gopkg.in/yaml.v3"
)

// Reader loads a city dataset from a JSON or YAML file.
// It implements pipeline.Extractor.
type Reader struct {
	path   string
	logger *slog.Logger
}

// NewReader creates a Reader for the dataset at path. The decoder is chosen by
// file extension: .yaml and .yml are YAML, everything else is JSON.
func NewReader(path string, logger *slog.Logger) *Reader {
	return &Reader{path: path, logger: logger}
}

// Extract reads and validates every record in the dataset.
func (r *Reader) Extract(_ context.Context) ([]domain.City, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	raws, err := Decode(data, filepath.Ext(r.path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.path, err)
	}

	cities, err := domain.CitiesFromRaw(raws)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.path, err)
	}

	r.logger.Debug("dataset loaded", "path", r.path, "records", len(cities))
	return cities, nil
}

// Decode parses a dataset document. ext selects the format and may be empty.
// Unknown fields and anything after the first document are rejected.
func Decode(data []byte, ext string) ([]domain.RawCity, error) {
	var raws []domain.RawCity
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&raws); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, nil
			}
			return nil, fmt.Errorf("%w: decode yaml: %w", domain.ErrInvalidInput, err)
		}
		var extra yaml.Node
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: decode yaml: trailing data after dataset", domain.ErrInvalidInput)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&raws); err != nil {
			return nil, fmt.Errorf("%w: decode json: %w", domain.ErrInvalidInput, err)
		}
		var extra json.RawMessage
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: decode json: trailing data after dataset", domain.ErrInvalidInput)
		}
	}
	return raws, nil
}
