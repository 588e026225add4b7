package disk

import (
	"github.com/infinivision/suffine/codec"
	"github.com/infinivision/suffine/constant"
	"github.com/infinivision/suffine/errmsg"
	"github.com/spf13/afero"
)

// New returns a spill store creating its files under dir on fs. An empty
// dir means the file system's default temporary directory.
func New(fs afero.Fs, dir string, bufSize int) *disk {
	if bufSize <= 0 {
		bufSize = constant.WriteBufferSize
	}
	return &disk{
		fs:   fs,
		dir:  dir,
		bufs: bufSize,
		mp:   make(map[string]struct{}),
	}
}

// Close removes every spill file that was not removed yet.
func (d *disk) Close() error {
	d.Lock()
	defer d.Unlock()
	var first error
	for name := range d.mp {
		if err := d.fs.Remove(name); err != nil && first == nil {
			first = errmsg.Wrap(err, "remove spill file")
		}
		delete(d.mp, name)
	}
	return first
}

func (d *disk) Write(ps []uint64, width int) (Spill, error) {
	fp, err := afero.TempFile(d.fs, d.dir, constant.SpillPattern)
	if err != nil {
		return Spill{}, errmsg.Wrap(err, "create spill file")
	}
	s := Spill{Name: fp.Name(), Count: len(ps), Width: width}
	d.track(s.Name)
	w := codec.NewWriter(fp, width, d.bufs)
	for _, p := range ps {
		if err := w.Write(p); err != nil {
			fp.Close()
			return Spill{}, err
		}
	}
	if err := w.Flush(); err != nil {
		fp.Close()
		return Spill{}, err
	}
	if err := fp.Close(); err != nil {
		return Spill{}, errmsg.Wrap(err, "close spill file")
	}
	return s, nil
}

func (d *disk) Open(s Spill) (File, error) {
	d.Lock()
	_, ok := d.mp[s.Name]
	d.Unlock()
	if !ok {
		return nil, errmsg.NotExist
	}
	fp, err := d.fs.Open(s.Name)
	if err != nil {
		return nil, errmsg.Wrap(err, "open spill file")
	}
	return fp, nil
}

func (d *disk) Remove(s Spill) error {
	d.Lock()
	defer d.Unlock()
	if _, ok := d.mp[s.Name]; !ok {
		return nil
	}
	delete(d.mp, s.Name)
	return errmsg.Wrap(d.fs.Remove(s.Name), "remove spill file")
}

func (d *disk) track(name string) {
	d.Lock()
	d.mp[name] = struct{}{}
	d.Unlock()
}
