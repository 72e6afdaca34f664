package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/remit-labs/remitgen/internal/model"
)

const ManifestFileName = "manifest.yaml"

type Counts struct {
	Agents       int `yaml:"agents"`
	Clients      int `yaml:"clients"`
	Transactions int `yaml:"transactions"`
}

// Manifest records what one run produced: counts, seed and a checksum per
// written file.
type Manifest struct {
	RunID       string `yaml:"run_id"`
	GeneratedAt string `yaml:"generated_at"`
	Seed        int64  `yaml:"seed"`
	Counts      Counts `yaml:"counts"`
	Files       []File `yaml:"files"`
}

func NewManifest(seed int64, ds *model.Dataset, files []File) Manifest {
	return Manifest{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC().Format(model.TimeLayout),
		Seed:        seed,
		Counts: Counts{
			Agents:       len(ds.Agents),
			Clients:      len(ds.Clients),
			Transactions: len(ds.Transactions),
		},
		Files: files,
	}
}

func WriteManifest(dir string, m Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	path := filepath.Join(dir, ManifestFileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	return nil
}
