package ena

import (
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"go.yaml.in/yaml/v3"
)

// Snapshot is the on-disk form of a search outcome. A search can be
// saved to a file and re-rendered later without re-querying the portal.
type Snapshot struct {
	Outcome   `yaml:",inline"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteSnapshot saves out to a YAML file at path.
func WriteSnapshot(path string, out *Outcome) error {
	snap := Snapshot{Outcome: *out, Timestamp: time.Now()}
	data, err := yaml.Marshal(&snap)
	if err != nil {
		return errors.Wrap(err, "marshaling snapshot")
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadSnapshot loads a previously saved search outcome from disk.
func ReadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading snapshot")
	}
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, errors.Wrapf(err, "parsing snapshot %s", path)
	}
	return &snap, nil
}
