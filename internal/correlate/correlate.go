package correlate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/fuji-flow/internal/config"
)

// Pair relates an untouched original video to its re-encoded
// counterpart. Both share the same base name.
type Pair struct {
	Base      string
	Original  string
	Processed string
}

// Warning describes a processed file that could not be paired with an
// original. Non-fatal: the batch skips the file and keeps going.
type Warning struct {
	Path   string
	Reason string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Path, w.Reason)
}

// FindPairs scans dir for files following the naming convention and
// matches each processed variant with its original. Matching is
// case-sensitive. Every processed file is examined exactly once; pairs
// come out in directory-listing order.
func FindPairs(dir string, naming config.NamingConfig) ([]Pair, []Warning, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	marker := naming.ProcessedSuffix + naming.ProcessedExt

	var pairs []Pair
	var warnings []Warning
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasPrefix(name, naming.Prefix) || !strings.HasSuffix(name, marker) {
			continue
		}

		base := strings.TrimSuffix(name, marker)
		original := filepath.Join(dir, base+naming.OriginalExt)
		if _, err := os.Stat(original); err != nil {
			warnings = append(warnings, Warning{
				Path:   filepath.Join(dir, name),
				Reason: fmt.Sprintf("no original %s%s", base, naming.OriginalExt),
			})
			continue
		}

		pairs = append(pairs, Pair{
			Base:      base,
			Original:  original,
			Processed: filepath.Join(dir, name),
		})
	}

	return pairs, warnings, nil
}
