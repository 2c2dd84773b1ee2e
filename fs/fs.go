// Package fs provides lazy directory iteration and small filesystem
// helpers on top of the core library: every fallible operation returns
// a [result.Result] carrying a [vio.Error], and [ReadDir] produces an
// iterator of Result-valued entries.
//
//	dirs := fs.ReadDir(path).Value()
//	defer dirs.Close()
//	for res := range iter.Values[result.Result[fs.DirEntry, *vio.Error]](dirs) {
//	    entry, err, ok := res.Get()
//	    ...
//	}
//
// [Dirs] owns the underlying directory handle through a
// reference-counted block whose drop hook closes it, so the handle is
// released exactly once no matter how many owners shared it. Entries
// carry their path immediately and compute [Metadata] lazily, at most
// once, on first request.
package fs

import (
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/Noelware/violet-go/option"
	"github.com/Noelware/violet-go/rc"
	"github.com/Noelware/violet-go/result"
	"github.com/Noelware/violet-go/vio"
)

// FileType classifies a directory entry.
type FileType struct {
	mode iofs.FileMode
}

// File reports whether the entry is a regular file.
func (t FileType) File() bool {
	return t.mode.IsRegular()
}

// Dir reports whether the entry is a directory.
func (t FileType) Dir() bool {
	return t.mode.IsDir()
}

// Symlink reports whether the entry is a symbolic link.
func (t FileType) Symlink() bool {
	return t.mode&iofs.ModeSymlink != 0
}

// Metadata describes a filesystem entry at the moment it was stat'ed.
type Metadata struct {
	size     int64
	mode     iofs.FileMode
	modTime  time.Time
	fileType FileType
}

// Size returns the entry's length in bytes.
func (m Metadata) Size() int64 { return m.size }

// Mode returns the entry's full file mode.
func (m Metadata) Mode() iofs.FileMode { return m.mode }

// ModTime returns the entry's modification time.
func (m Metadata) ModTime() time.Time { return m.modTime }

// FileType returns the entry's classification.
func (m Metadata) FileType() FileType { return m.fileType }

// DirEntry is one entry of a directory listing. The path and name are
// available immediately; metadata is computed lazily on the first call
// to [DirEntry.Metadata] and cached.
type DirEntry struct {
	path string
	name string
	meta *metaCell
}

type metaCell struct {
	cached option.Option[result.Result[Metadata, *vio.Error]]
}

// Path returns the entry's path, the listed directory joined with the
// entry name.
func (e DirEntry) Path() string { return e.path }

// Name returns the entry's base name.
func (e DirEntry) Name() string { return e.name }

// Metadata stats the entry, without following symlinks. The first call
// does the work; later calls return the cached outcome, success or
// failure alike.
func (e DirEntry) Metadata() result.Result[Metadata, *vio.Error] {
	if cached, ok := e.meta.cached.Get(); ok {
		return cached
	}
	res := Lstat(e.path)
	e.meta.cached = option.Some(res)
	return res
}

// FileType is a convenience for Metadata().FileType.
func (e DirEntry) FileType() result.Result[FileType, *vio.Error] {
	return result.Map(e.Metadata(), Metadata.FileType)
}

// dirHandle wraps the open directory so the rc drop hook has one thing
// to close.
type dirHandle struct {
	f *os.File
}

// Dirs lazily yields the entries of one directory. It implements
// iter.Iterator with Item result.Result[DirEntry, *vio.Error]: every
// pull either produces an entry or surfaces the read error in-band.
//
// The directory handle stays open until [Dirs.Close] runs or the
// listing is driven to exhaustion; Close is idempotent and safe to
// defer either way.
type Dirs struct {
	dir     string
	handle  *rc.Rc[dirHandle]
	names   []string
	pending option.Option[*vio.Error]
	done    bool
}

// ReadDir opens path for iteration. Entries come in the order the
// operating system returns them, which is not sorted.
func ReadDir(path string) result.Result[*Dirs, *vio.Error] {
	f, err := os.Open(path)
	if err != nil {
		return result.Err[*Dirs](vio.FromOS(err))
	}
	handle := rc.NewWithDrop(dirHandle{f: f}, func(h *dirHandle) {
		h.f.Close()
	})
	return result.Ok[*Dirs, *vio.Error](&Dirs{dir: path, handle: handle})
}

// Next yields the next directory entry, or the error that ended the
// listing. After either the end of the directory or an error, the
// handle is closed and Next keeps returning None.
func (d *Dirs) Next() option.Option[result.Result[DirEntry, *vio.Error]] {
	type item = result.Result[DirEntry, *vio.Error]
	for len(d.names) == 0 {
		// Names read alongside a failure are yielded first; the error
		// itself surfaces after them.
		if e, ok := d.pending.Take().Get(); ok {
			return option.Some(result.Err[DirEntry](e))
		}
		if d.done {
			return option.None[item]()
		}
		names, err := d.handle.Value().f.Readdirnames(64)
		d.names = names
		if err != nil {
			d.Close()
			if err != io.EOF {
				d.pending = option.Some(vio.FromOS(err))
			}
		}
	}
	name := d.names[0]
	d.names = d.names[1:]
	return option.Some(result.Ok[DirEntry, *vio.Error](DirEntry{
		path: filepath.Join(d.dir, name),
		name: name,
		meta: &metaCell{},
	}))
}

// Close releases the directory handle. It is idempotent, and it runs
// on the iterator's behalf when the listing ends.
func (d *Dirs) Close() {
	d.done = true
	if d.handle != nil {
		d.handle.Release()
		d.handle = nil
	}
}

// Lstat stats path without following symlinks.
func Lstat(path string) result.Result[Metadata, *vio.Error] {
	info, err := os.Lstat(path)
	if err != nil {
		return result.Err[Metadata](vio.FromOS(err))
	}
	return result.Ok[Metadata, *vio.Error](Metadata{
		size:     info.Size(),
		mode:     info.Mode(),
		modTime:  info.ModTime(),
		fileType: FileType{mode: info.Mode()},
	})
}

// Stat stats path, following symlinks.
func Stat(path string) result.Result[Metadata, *vio.Error] {
	info, err := os.Stat(path)
	if err != nil {
		return result.Err[Metadata](vio.FromOS(err))
	}
	return result.Ok[Metadata, *vio.Error](Metadata{
		size:     info.Size(),
		mode:     info.Mode(),
		modTime:  info.ModTime(),
		fileType: FileType{mode: info.Mode()},
	})
}

// Exists reports whether path exists. A missing entry is a successful
// false; only a failure to find out is an error.
func Exists(path string) result.Result[bool, *vio.Error] {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return result.Ok[bool, *vio.Error](true)
	case os.IsNotExist(err):
		return result.Ok[bool, *vio.Error](false)
	default:
		return result.Err[bool](vio.FromOS(err))
	}
}

// CreateDir creates a single directory. The parent must exist.
func CreateDir(path string) result.Result[result.Unit, *vio.Error] {
	if err := os.Mkdir(path, 0o755); err != nil {
		return result.Err[result.Unit](vio.FromOS(err))
	}
	return result.OkUnit[*vio.Error]()
}

// CreateDirAll creates a directory along with any missing parents.
func CreateDirAll(path string) result.Result[result.Unit, *vio.Error] {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return result.Err[result.Unit](vio.FromOS(err))
	}
	return result.OkUnit[*vio.Error]()
}

// RemoveDir removes an empty directory.
func RemoveDir(path string) result.Result[result.Unit, *vio.Error] {
	if err := os.Remove(path); err != nil {
		return result.Err[result.Unit](vio.FromOS(err))
	}
	return result.OkUnit[*vio.Error]()
}
