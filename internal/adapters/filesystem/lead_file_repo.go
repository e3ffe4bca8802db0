// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/leadfunnel/internal/ports/secondary"
)

// LeadFileRepository implements secondary.LeadRepository as one JSON document
// per app id under baseDir.
type LeadFileRepository struct {
	baseDir string
}

var _ secondary.LeadRepository = (*LeadFileRepository)(nil)

// NewLeadFileRepository creates a new file-backed lead repository.
func NewLeadFileRepository(baseDir string) *LeadFileRepository {
	return &LeadFileRepository{baseDir: baseDir}
}

// PathFor returns the file that holds appID's leads. App ids are used as
// file names verbatim, so only letters, digits, '-', '_' and a non-leading
// '.' are accepted.
func (r *LeadFileRepository) PathFor(appID string) (string, error) {
	if appID == "" || strings.HasPrefix(appID, ".") {
		return "", fmt.Errorf("invalid app id %q for file storage", appID)
	}
	for _, c := range appID {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_', c == '.':
		default:
			return "", fmt.Errorf("invalid app id %q for file storage: unsupported character %q", appID, c)
		}
	}
	return filepath.Join(r.baseDir, appID+".json"), nil
}

// Load reads appID's leads. A missing file is an empty collection.
func (r *LeadFileRepository) Load(ctx context.Context, appID string) ([]*secondary.LeadRecord, error) {
	path, err := r.PathFor(appID)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return []*secondary.LeadRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read leads file: %w", err)
	}

	var leads []*secondary.LeadRecord
	if err := json.Unmarshal(data, &leads); err != nil {
		return nil, fmt.Errorf("failed to decode leads file: %w", err)
	}
	if leads == nil {
		leads = []*secondary.LeadRecord{}
	}
	return leads, nil
}

// Save writes appID's leads via a temp file and rename, so readers never see a partial file.
func (r *LeadFileRepository) Save(ctx context.Context, appID string, leads []*secondary.LeadRecord) error {
	path, err := r.PathFor(appID)
	if err != nil {
		return err
	}

	if leads == nil {
		leads = []*secondary.LeadRecord{}
	}
	data, err := json.MarshalIndent(leads, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode leads: %w", err)
	}

	if err := os.MkdirAll(r.baseDir, 0755); err != nil {
		return fmt.Errorf("failed to create leads directory: %w", err)
	}

	tmp, err := os.CreateTemp(r.baseDir, ".leads-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write leads: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace leads file: %w", err)
	}
	return nil
}
