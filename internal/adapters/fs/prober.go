package fs

import (
	"os"

	"github.com/spf13/afero"
	"go.trai.ch/rescache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileProber = (*Prober)(nil)

// Prober checks whether referenced files exist.
type Prober struct {
	fs afero.Fs
}

// NewProber creates a Prober over fs.
func NewProber(fs afero.Fs) *Prober {
	return &Prober{fs: fs}
}

// NewOsProber creates a Prober over the operating system filesystem.
func NewOsProber() *Prober {
	return NewProber(afero.NewOsFs())
}

// Exists reports whether path exists. A missing file is not an error.
func (p *Prober) Exists(path string) (bool, error) {
	if _, err := p.fs.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
	}
	return true, nil
}
