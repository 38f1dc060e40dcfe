// Package assetfs redirects read-only file access to a packaged asset
// store, falling back to an ordinary writable data directory.
//
// FS implements afero.Fs, so it can be handed directly to fileio.New and
// any other afero consumer: opens for reading are tried against the asset
// store first; opens for writing, and reads of names absent from the
// store, go to the data directory under the configured path prefix. Asset
// stores are read-only by construction, so write calls on an asset-backed
// file fail with a permission error and a logged warning.
//
// Only opens are intercepted. Every other filesystem operation (Stat,
// Remove, Mkdir, ...) addresses the data directory.
//
// An FS must be constructed with a non-nil store before use; New does not
// guard against a nil store and later opens will panic on one.
package assetfs

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/gavral/gamekit/core"
)

// Asset is a read-only handle into a packaged asset store.
type Asset interface {
	io.Reader
	io.Seeker
	io.Closer
}

// Store is an open-by-name container of packaged, read-only assets.
type Store interface {
	// OpenAsset opens the named asset for reading.
	OpenAsset(name string) (Asset, error)
}

// storeFS adapts any afero filesystem into a Store. Backing an asset
// store with zipfs reproduces package-archive asset containers.
type storeFS struct {
	fs afero.Fs
}

// NewStoreFS exposes the given filesystem as a read-only asset store.
func NewStoreFS(fs afero.Fs) Store {
	return &storeFS{fs: fs}
}

func (s *storeFS) OpenAsset(name string) (Asset, error) {
	return s.fs.Open(name)
}

// writeFlags are the open flags that indicate write intent.
const writeFlags = os.O_WRONLY | os.O_RDWR | os.O_APPEND | os.O_CREATE | os.O_TRUNC

// FS routes file access between an asset store and a writable data
// directory. It implements afero.Fs.
type FS struct {
	store    Store
	data     afero.Fs
	dataPath string
	log      core.Logger
}

// New creates an FS over the given asset store and data filesystem.
// dataPath is prepended to every name that reaches the data filesystem.
// A nil data falls back to the host filesystem; a nil log discards
// diagnostics. The store is a precondition and is not checked.
func New(store Store, data afero.Fs, dataPath string, log core.Logger) *FS {
	if data == nil {
		data = afero.NewOsFs()
	}
	if log == nil {
		log = core.NewNopLogger()
	}
	return &FS{store: store, data: data, dataPath: dataPath, log: log}
}

// Open opens the named file for reading, trying the asset store first and
// falling back to the data directory when the asset is not found.
func (a *FS) Open(name string) (afero.File, error) {
	return a.OpenFile(name, os.O_RDONLY, 0)
}

// OpenFile opens the named file. Write-intent flags bypass the asset
// store entirely; read-only opens try the store and fall back to the data
// directory on a miss.
func (a *FS) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if flag&writeFlags != 0 {
		return a.data.OpenFile(a.dataName(name), flag, perm)
	}

	asset, err := a.store.OpenAsset(name)
	if err != nil {
		// Regular open if the file is not packaged in the assets
		return a.data.OpenFile(a.dataName(name), flag, perm)
	}

	return &assetFile{name: name, asset: asset, log: a.log}, nil
}

// Create creates the named file in the data directory.
func (a *FS) Create(name string) (afero.File, error) {
	return a.data.Create(a.dataName(name))
}

// Mkdir creates a directory in the data directory.
func (a *FS) Mkdir(name string, perm os.FileMode) error {
	return a.data.Mkdir(a.dataName(name), perm)
}

// MkdirAll creates a directory path in the data directory.
func (a *FS) MkdirAll(path string, perm os.FileMode) error {
	return a.data.MkdirAll(a.dataName(path), perm)
}

// Remove removes the named file from the data directory.
func (a *FS) Remove(name string) error {
	return a.data.Remove(a.dataName(name))
}

// RemoveAll removes the named path from the data directory.
func (a *FS) RemoveAll(path string) error {
	return a.data.RemoveAll(a.dataName(path))
}

// Rename renames a file within the data directory.
func (a *FS) Rename(oldname, newname string) error {
	return a.data.Rename(a.dataName(oldname), a.dataName(newname))
}

// Stat stats the named file in the data directory.
func (a *FS) Stat(name string) (os.FileInfo, error) {
	return a.data.Stat(a.dataName(name))
}

// Name returns the name of this filesystem.
func (a *FS) Name() string {
	return "AssetFS"
}

// Chmod changes the mode of the named file in the data directory.
func (a *FS) Chmod(name string, mode os.FileMode) error {
	return a.data.Chmod(a.dataName(name), mode)
}

// Chown changes ownership of the named file in the data directory.
func (a *FS) Chown(name string, uid, gid int) error {
	return a.data.Chown(a.dataName(name), uid, gid)
}

// Chtimes changes the access and modification times of the named file in
// the data directory.
func (a *FS) Chtimes(name string, atime time.Time, mtime time.Time) error {
	return a.data.Chtimes(a.dataName(name), atime, mtime)
}

func (a *FS) dataName(name string) string {
	return filepath.Join(a.dataPath, name)
}

// assetFile adapts a read-only asset handle to the afero.File interface.
// Reads and seeks delegate to the asset; every write-side operation fails
// with a permission error.
type assetFile struct {
	name  string
	asset Asset
	log   core.Logger
}

func (f *assetFile) Read(p []byte) (int, error) {
	return f.asset.Read(p)
}

// ReadAt reads at an absolute offset by seeking the asset handle. The
// previous read position is restored before returning.
func (f *assetFile) ReadAt(p []byte, off int64) (int, error) {
	pos, err := f.asset.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	if _, err := f.asset.Seek(off, io.SeekStart); err != nil {
		return 0, err
	}
	n, err := io.ReadFull(f.asset, p)
	if errors.Is(err, io.ErrUnexpectedEOF) {
		err = io.EOF
	}
	if _, serr := f.asset.Seek(pos, io.SeekStart); serr != nil && err == nil {
		err = serr
	}
	return n, err
}

func (f *assetFile) Seek(offset int64, whence int) (int64, error) {
	return f.asset.Seek(offset, whence)
}

func (f *assetFile) Close() error {
	return f.asset.Close()
}

func (f *assetFile) Write(p []byte) (int, error) {
	return 0, f.denyWrite()
}

func (f *assetFile) WriteAt(p []byte, off int64) (int, error) {
	return 0, f.denyWrite()
}

func (f *assetFile) WriteString(s string) (int, error) {
	return 0, f.denyWrite()
}

func (f *assetFile) Truncate(size int64) error {
	return f.denyWrite()
}

func (f *assetFile) Name() string {
	return f.name
}

// Stat synthesizes file info from the asset's size, since asset handles
// carry no metadata of their own.
func (f *assetFile) Stat() (os.FileInfo, error) {
	pos, err := f.asset.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}
	size, err := f.asset.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, err
	}
	if _, err := f.asset.Seek(pos, io.SeekStart); err != nil {
		return nil, err
	}
	return &assetFileInfo{name: filepath.Base(f.name), size: size}, nil
}

func (f *assetFile) Sync() error {
	// Nothing buffered for a read-only asset
	return nil
}

func (f *assetFile) Readdir(count int) ([]os.FileInfo, error) {
	return nil, &os.PathError{Op: "readdir", Path: f.name, Err: errors.ErrUnsupported}
}

func (f *assetFile) Readdirnames(n int) ([]string, error) {
	return nil, &os.PathError{Op: "readdirnames", Path: f.name, Err: errors.ErrUnsupported}
}

func (f *assetFile) denyWrite() error {
	f.log.Warning("ASSETS: [%s] Failed to provide write access to asset store", f.name)
	return &os.PathError{Op: "write", Path: f.name, Err: os.ErrPermission}
}

// assetFileInfo is the synthesized metadata for an open asset.
type assetFileInfo struct {
	name string
	size int64
}

func (fi *assetFileInfo) Name() string       { return fi.name }
func (fi *assetFileInfo) Size() int64        { return fi.size }
func (fi *assetFileInfo) Mode() os.FileMode  { return 0444 }
func (fi *assetFileInfo) ModTime() time.Time { return time.Time{} }
func (fi *assetFileInfo) IsDir() bool        { return false }
func (fi *assetFileInfo) Sys() any           { return nil }
