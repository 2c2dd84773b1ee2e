package fs

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Noelware/violet-go/vio"
)

func seedDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("alpha"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("beta!"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	return dir
}

func TestReadDirListsEveryEntry(t *testing.T) {
	dir := seedDir(t)

	res := ReadDir(dir)
	require.True(t, res.IsOk())
	dirs := res.Value()
	defer dirs.Close()

	var names []string
	for {
		item, ok := dirs.Next().Get()
		if !ok {
			break
		}
		entry, e, ok := item.Get()
		require.True(t, ok, "unexpected listing error: %v", e)
		names = append(names, entry.Name())
		assert.Equal(t, filepath.Join(dir, entry.Name()), entry.Path())
	}
	sort.Strings(names)
	assert.Equal(t, []string{"a.txt", "b.txt", "sub"}, names)

	assert.True(t, dirs.Next().IsNone(), "an exhausted listing stays exhausted")
}

func TestReadDirMissingPath(t *testing.T) {
	res := ReadDir(filepath.Join(t.TempDir(), "nope"))
	require.True(t, res.IsErr())
	assert.Equal(t, vio.KindNotFound, res.Error().Kind())
}

func TestDirsCloseIsIdempotent(t *testing.T) {
	dirs := ReadDir(seedDir(t)).Value()
	dirs.Close()
	dirs.Close()
	assert.True(t, dirs.Next().IsNone())
}

func TestDirEntryMetadataIsLazyAndCached(t *testing.T) {
	dir := seedDir(t)
	dirs := ReadDir(dir).Value()
	defer dirs.Close()

	for {
		item, ok := dirs.Next().Get()
		if !ok {
			break
		}
		entry := item.Value()
		if entry.Name() != "a.txt" {
			continue
		}

		meta := entry.Metadata()
		require.True(t, meta.IsOk())
		assert.Equal(t, int64(5), meta.Value().Size())
		assert.True(t, meta.Value().FileType().File())

		// The cached stat survives the entry disappearing.
		require.NoError(t, os.Remove(entry.Path()))
		again := entry.Metadata()
		require.True(t, again.IsOk())
		assert.Equal(t, int64(5), again.Value().Size())
	}
}

func TestDirEntryFileType(t *testing.T) {
	dir := seedDir(t)
	dirs := ReadDir(dir).Value()
	defer dirs.Close()

	kinds := map[string]string{}
	for {
		item, ok := dirs.Next().Get()
		if !ok {
			break
		}
		entry := item.Value()
		ft := entry.FileType()
		require.True(t, ft.IsOk())
		switch {
		case ft.Value().Dir():
			kinds[entry.Name()] = "dir"
		case ft.Value().File():
			kinds[entry.Name()] = "file"
		}
	}
	assert.Equal(t, map[string]string{"a.txt": "file", "b.txt": "file", "sub": "dir"}, kinds)
}

func TestLstatDoesNotFollowSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation needs privileges on windows")
	}
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	link := filepath.Join(dir, "link")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))
	require.NoError(t, os.Symlink(target, link))

	viaLstat := Lstat(link)
	require.True(t, viaLstat.IsOk())
	assert.True(t, viaLstat.Value().FileType().Symlink())

	viaStat := Stat(link)
	require.True(t, viaStat.IsOk())
	assert.True(t, viaStat.Value().FileType().File())
}

func TestStatMissing(t *testing.T) {
	res := Stat(filepath.Join(t.TempDir(), "ghost"))
	require.True(t, res.IsErr())
	assert.Equal(t, vio.KindNotFound, res.Error().Kind())
}

func TestExists(t *testing.T) {
	dir := seedDir(t)

	res := Exists(filepath.Join(dir, "a.txt"))
	require.True(t, res.IsOk())
	assert.True(t, res.Value())

	res = Exists(filepath.Join(dir, "ghost"))
	require.True(t, res.IsOk(), "a missing entry is a successful false")
	assert.False(t, res.Value())
}

func TestCreateAndRemoveDir(t *testing.T) {
	dir := t.TempDir()
	child := filepath.Join(dir, "child")

	require.True(t, CreateDir(child).IsOk())
	assert.True(t, Exists(child).Value())

	again := CreateDir(child)
	require.True(t, again.IsErr())
	assert.Equal(t, vio.KindAlreadyExists, again.Error().Kind())

	require.True(t, RemoveDir(child).IsOk())
	assert.False(t, Exists(child).Value())
}

func TestCreateDirNeedsParent(t *testing.T) {
	dir := t.TempDir()
	deep := filepath.Join(dir, "a", "b", "c")

	require.True(t, CreateDir(deep).IsErr())
	require.True(t, CreateDirAll(deep).IsOk())
	assert.True(t, Exists(deep).Value())
	assert.True(t, CreateDirAll(deep).IsOk(), "creating an existing tree is fine")
}
