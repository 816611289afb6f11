package export

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// CreateFS defines a file system interface that supports creating files
// and directories, for writing exports.
type CreateFS interface {
	// Sub returns a filesystem for a subdirectory.
	Sub(name string) (sub CreateFS, err error)
	// Create creates a new file for writing. The file is complete once
	// closed; files that implement Aborter can be discarded instead.
	Create(name string) (file io.WriteCloser, err error)
	// Mkdir creates a new directory with the specified permissions.
	Mkdir(name string, filemode fs.FileMode) (err error)
}

// Aborter is implemented by files that can be discarded before they are
// complete.
type Aborter interface {
	// Abort drops the file; nothing appears at its name.
	Abort() error
}

// DirFS is a CreateFS rooted at a host directory.
type DirFS string

var _ CreateFS = DirFS("")

func (dir DirFS) Sub(name string) (sub CreateFS, err error) {
	full := filepath.Join(string(dir), name)
	info, err := os.Stat(full)
	if err != nil {
		return
	}
	if !info.IsDir() {
		err = &fs.PathError{Op: "sub", Path: full, Err: fs.ErrInvalid}
		return
	}

	sub = DirFS(full)
	return
}

func (dir DirFS) Mkdir(name string, filemode fs.FileMode) (err error) {
	return os.Mkdir(filepath.Join(string(dir), name), filemode)
}

// Create writes into a temporary file that is renamed into place on Close.
func (dir DirFS) Create(name string) (file io.WriteCloser, err error) {
	full := filepath.Join(string(dir), name)
	tmp, err := os.CreateTemp(string(dir), "."+name+".*")
	if err != nil {
		return
	}

	file = &atomicFile{File: tmp, path: full}
	return
}

type atomicFile struct {
	*os.File
	path string
}

var _ Aborter = (*atomicFile)(nil)

// Abort removes the temporary file without renaming it into place.
func (af *atomicFile) Abort() (err error) {
	af.File.Close()
	return os.Remove(af.File.Name())
}

func (af *atomicFile) Close() (err error) {
	err = af.File.Close()
	if err != nil {
		os.Remove(af.File.Name())
		return
	}

	err = os.Rename(af.File.Name(), af.path)
	if err != nil {
		os.Remove(af.File.Name())
	}
	return
}

// MapFS is an in-memory CreateFS. Keys are slash separated paths.
type MapFS struct {
	Files map[string][]byte
	Dirs  map[string]bool
	root  *MapFS
	dir   string
}

var _ CreateFS = (*MapFS)(nil)

// NewMapFS creates an empty in-memory filesystem.
func NewMapFS() *MapFS {
	return &MapFS{Files: map[string][]byte{}, Dirs: map[string]bool{}}
}

func (mfs *MapFS) top() *MapFS {
	if mfs.root != nil {
		return mfs.root
	}
	return mfs
}

func (mfs *MapFS) Sub(name string) (sub CreateFS, err error) {
	full := path.Join(mfs.dir, name)
	if !mfs.top().Dirs[full] {
		err = &fs.PathError{Op: "sub", Path: full, Err: fs.ErrNotExist}
		return
	}

	sub = &MapFS{root: mfs.top(), dir: full}
	return
}

func (mfs *MapFS) Mkdir(name string, filemode fs.FileMode) (err error) {
	full := path.Join(mfs.dir, name)
	if mfs.top().Dirs[full] {
		err = &fs.PathError{Op: "mkdir", Path: full, Err: fs.ErrExist}
		return
	}

	mfs.top().Dirs[full] = true
	return
}

func (mfs *MapFS) Create(name string) (file io.WriteCloser, err error) {
	file = &memFile{fs: mfs.top(), path: path.Join(mfs.dir, name)}
	return
}

// Names lists every file, sorted.
func (mfs *MapFS) Names() (names []string) {
	for name := range mfs.top().Files {
		if mfs.dir == "" || strings.HasPrefix(name, mfs.dir+"/") {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return
}

type memFile struct {
	bytes.Buffer
	fs   *MapFS
	path string
}

// Abort drops the buffered contents.
func (mf *memFile) Abort() error {
	mf.Reset()
	return nil
}

func (mf *memFile) Close() error {
	mf.fs.Files[mf.path] = mf.Bytes()
	return nil
}
