package descriptor

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"

	"github.com/spf13/afero"

	"github.com/gamekit-labs/forge/internal/logging"
)

// Outcome reports what WriteIfAbsent did with a descriptor.
type Outcome int

const (
	Written Outcome = iota
	Skipped
	// Failed accompanies every non-nil error.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Written:
		return "written"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

var repeatedSlashes = regexp.MustCompile(`/{2,}`)

// Path returns the file a descriptor is written to inside dir.
func Path(dir string, d Descriptor) string {
	return repeatedSlashes.ReplaceAllString(dir+"/"+d.Name+d.Extension(), "/")
}

// Report lists the descriptor files a batch wrote and skipped.
type Report struct {
	Written []string
	Skipped []string
}

// Writer writes descriptor files, never replacing one that already exists.
type Writer struct {
	Fs afero.Fs
}

// NewWriter returns a Writer over fsys, or over the OS filesystem when fsys
// is nil.
func NewWriter(fsys afero.Fs) *Writer {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &Writer{Fs: fsys}
}

// WriteIfAbsent validates, serializes and writes d into dir unless the
// target path already exists.
func (w *Writer) WriteIfAbsent(dir string, d Descriptor) (Outcome, error) {
	target := Path(dir, d)

	exists, err := w.exists(target)
	if err != nil {
		return Failed, fmt.Errorf("checking %s: %w", target, err)
	}
	if exists {
		logging.Debug("Skipped", "path", target)
		return Skipped, nil
	}

	result, err := Validate(d)
	if err != nil {
		return Failed, fmt.Errorf("validating %s: %w", target, err)
	}
	if !result.Valid {
		return Failed, fmt.Errorf("invalid %s %s: %w", d.Kind, d.Name, result)
	}

	data, err := Marshal(d)
	if err != nil {
		return Failed, err
	}

	if err := w.create(target, data); err != nil {
		if errors.Is(err, fs.ErrExist) {
			logging.Debug("Skipped", "path", target)
			return Skipped, nil
		}
		return Failed, fmt.Errorf("writing %s: %w", target, err)
	}

	logging.Debug("Created", "path", target)
	return Written, nil
}

// WriteAll writes every descriptor in order. The first failure aborts the
// batch; files written before it are kept.
func (w *Writer) WriteAll(dir string, ds []Descriptor) (*Report, error) {
	report := &Report{}
	for _, d := range ds {
		outcome, err := w.WriteIfAbsent(dir, d)
		if err != nil {
			return report, err
		}
		switch outcome {
		case Skipped:
			report.Skipped = append(report.Skipped, Path(dir, d))
		default:
			report.Written = append(report.Written, Path(dir, d))
		}
	}
	return report, nil
}

// exists reports whether anything occupies path, a dangling symlink
// included.
func (w *Writer) exists(path string) (bool, error) {
	var err error
	if lstater, ok := w.Fs.(afero.Lstater); ok {
		_, _, err = lstater.LstatIfPossible(path)
	} else {
		_, err = w.Fs.Stat(path)
	}
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// create writes data to a new file at path. A failed write or close removes
// the file again so a partial descriptor is never mistaken for an existing
// one on the next run.
func (w *Writer) create(path string, data []byte) (err error) {
	f, err := w.Fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			if rerr := w.Fs.Remove(path); rerr != nil && !errors.Is(rerr, fs.ErrNotExist) {
				err = fmt.Errorf("%w (removing partial file: %v)", err, rerr)
			}
		}
	}()

	_, err = f.Write(data)
	return err
}
