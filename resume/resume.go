// This package patches and inspects BitTorrent client resume files using the codec:
// qBittorrent `*.fastresume` files, whose `qBt-savePath` entry can be rewritten in
// bulk after moving a library between disks, and old uTorrent `resume.dat` files,
// whose top-level dictionaries are not always sorted.
package resume

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/rctlmk/yabel"
	"github.com/rctlmk/yabel/config"
)

const savePathKey = "qBt-savePath"

// Patcher rewrites save paths across a directory of fastresume files.
type Patcher struct {
	log *zap.SugaredLogger
}

func NewPatcher(c *config.Config) *Patcher {
	return &Patcher{log: c.Logger("resume")}
}

// SavePath returns the qBt-savePath entry of a decoded fastresume dictionary.
func SavePath(d yabel.Dictionary) (yabel.String, bool) {
	item, ok := d.Get(yabel.String(savePathKey))
	if !ok {
		return nil, false
	}
	return item.AsString()
}

// Rewrite decodes every file in source, replaces the first occurrence of old
// inside the qBt-savePath value with new, and writes the re-encoded result to
// target under the same file name. Files which do not decode to a bencode
// dictionary are skipped.
func (p *Patcher) Rewrite(source, target string, old, new []byte) error {
	if err := os.MkdirAll(target, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", target, err)
	}

	entries, err := os.ReadDir(source)
	if err != nil {
		return fmt.Errorf("reading %s: %w", source, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(source, entry.Name())
		buf, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		d, ok := topLevelDictionary(buf)
		if !ok {
			p.log.Debugf("skipping %s: not a bencode dictionary", path)
			continue
		}

		if sp, ok := SavePath(d); ok {
			if patched, changed := replaceWindow(sp, old, new); changed {
				d.Set(yabel.String(savePathKey), yabel.String(patched))
				p.log.Infof("%s: %s -> %s", entry.Name(), sp, yabel.String(patched))
			}
		}

		out := filepath.Join(target, entry.Name())
		if err := os.WriteFile(out, yabel.Encode(d), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", out, err)
		}
	}

	return nil
}

// SavePaths returns the save path of every fastresume dictionary in dir, keyed
// by file name. Files without a qBt-savePath entry are omitted.
func (p *Patcher) SavePaths(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	paths := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		buf, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", entry.Name(), err)
		}
		d, ok := topLevelDictionary(buf)
		if !ok {
			continue
		}
		if sp, ok := SavePath(d); ok {
			paths[entry.Name()] = sp.String()
		}
	}
	return paths, nil
}

// Keys returns the top-level dictionary keys of a resume.dat file. The file is
// decoded with unsorted dictionaries allowed, since old uTorrent versions wrote
// keys like ".fileguard" and "#"-prefixed torrent names out of order; the
// returned keys are in sorted order, not file order.
func Keys(path string) ([]yabel.String, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	items, err := yabel.Decode(buf, yabel.UnsortedDictionaries)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("decoding %s: empty file", path)
	}
	d, ok := items[0].AsDictionary()
	if !ok {
		return nil, fmt.Errorf("decoding %s: top-level value is not a dictionary", path)
	}
	return d.Keys(), nil
}

func topLevelDictionary(buf []byte) (yabel.Dictionary, bool) {
	items, err := yabel.Decode(buf)
	if err != nil || len(items) == 0 {
		return yabel.Dictionary{}, false
	}
	return items[0].AsDictionary()
}

// replaceWindow replaces the first occurrence of old in b, returning b
// untouched when old does not occur.
func replaceWindow(b, old, new []byte) ([]byte, bool) {
	i := bytes.Index(b, old)
	if i < 0 || len(old) == 0 {
		return b, false
	}
	out := make([]byte, 0, len(b)-len(old)+len(new))
	out = append(out, b[:i]...)
	out = append(out, new...)
	out = append(out, b[i+len(old):]...)
	return out, true
}
