package analysis

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"wordfreq/internal/logging"
)

// sampleDocument is the demonstration text materialized when the input file
// does not exist, so a first run without arguments worth analyzing still
// produces output.
const sampleDocument = `Python is a high-level programming language. Python emphasizes code readability
with its notable use of significant whitespace. Python's language constructs and
object-oriented approach aim to help programmers write clear, logical code for
small and large-scale projects. Python is dynamically typed and garbage-collected.`

func (a *Analyzer) ensureSampleFile(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: inspect %s: %v", ErrIO, path, err)
	}

	if err := os.WriteFile(path, []byte(sampleDocument), 0o644); err != nil {
		return fmt.Errorf("%w: create sample file %s: %v", ErrIO, path, err)
	}
	a.log.Info("created sample file", logging.String("path", path))
	return nil
}
