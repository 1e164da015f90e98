package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/google/uuid"
)

// ErrNotFound indicates a requested result file does not exist.
var ErrNotFound = errors.New("report: result file not found")

// namePattern matches only names this store generates, so download
// requests cannot reach outside the results directory.
var namePattern = regexp.MustCompile(`^topsis_result_[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\.csv$`)

// Store keeps result files on disk between an analysis and its download.
type Store struct {
	dir string
}

// NewStore creates the results directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("report: create results dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// NewResultName returns a fresh uuid-derived result file name.
func NewResultName() string {
	return fmt.Sprintf("topsis_result_%s.csv", uuid.NewString())
}

// ValidName reports whether name is one this store could have generated.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// Save writes a result file under the store's directory.
func (s *Store) Save(name string, data []byte) error {
	if !ValidName(name) {
		return fmt.Errorf("report: invalid result name %q", name)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("report: save result: %w", err)
	}
	return nil
}

// Read returns the contents of a previously saved result file.
func (s *Store) Read(name string) ([]byte, error) {
	if !ValidName(name) {
		return nil, ErrNotFound
	}
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("report: read result: %w", err)
	}
	return data, nil
}
