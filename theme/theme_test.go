package theme

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func openTestStore(t *testing.T) *BadgerStore {
	store, err := OpenStore(StoreConfig{InMemory: true})
	assert.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	th, err := Parse("light")
	assert.NoError(err)
	assert.Equal(LIGHT, th)

	_, err = Parse("sepia")
	assert.ErrorIs(err, ErrTheme)

	assert.Equal(LIGHT, DARK.Toggle())
	assert.Equal(DARK, LIGHT.Toggle())
	assert.Equal("dark", DARK.String())
}

func TestPreference_Default(t *testing.T) {
	assert := assert.New(t)

	pref := &Preference{Store: openTestStore(t)}

	th, err := pref.Load()
	assert.NoError(err)
	assert.Equal(DARK, th)
}

func TestPreference_ToggleTwice(t *testing.T) {
	assert := assert.New(t)

	store := openTestStore(t)
	pref := &Preference{Store: store, Log: zap.NewNop()}

	original, err := pref.Load()
	assert.NoError(err)

	th, err := pref.Toggle()
	assert.NoError(err)
	assert.Equal(original.Toggle(), th)

	value, ok, err := store.Get(KEY)
	assert.NoError(err)
	assert.True(ok)
	assert.Equal(string(th), value)

	th, err = pref.Toggle()
	assert.NoError(err)
	assert.Equal(original, th)

	value, ok, err = store.Get(KEY)
	assert.NoError(err)
	assert.True(ok)
	assert.Equal(string(original), value)
}

func TestPreference_Malformed(t *testing.T) {
	assert := assert.New(t)

	store := openTestStore(t)
	assert.NoError(store.Set(KEY, "sepia"))

	pref := &Preference{Store: store}
	th, err := pref.Load()
	assert.NoError(err)
	assert.Equal(DEFAULT, th)

	assert.ErrorIs(pref.Set(Theme("sepia")), ErrTheme)

	assert.NoError(pref.Set(LIGHT))
	th, err = pref.Load()
	assert.NoError(err)
	assert.Equal(LIGHT, th)
}

func TestPreference_ToggleConcurrent(t *testing.T) {
	table := [...]struct {
		toggles int
		theme   Theme
	}{
		{toggles: 50, theme: DARK},
		{toggles: 51, theme: LIGHT},
	}

	for n, entry := range table {
		pref := &Preference{Store: openTestStore(t)}

		var wg sync.WaitGroup
		errs := make(chan error, entry.toggles)
		for range entry.toggles {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := pref.Toggle()
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			assert.NoError(t, err, "%d", n)
		}

		th, err := pref.Load()
		assert.NoError(t, err, "%d", n)
		assert.Equal(t, entry.theme, th, "%d", n)
	}
}

func TestPreference_ToggleMalformed(t *testing.T) {
	assert := assert.New(t)

	store := openTestStore(t)
	assert.NoError(store.Set(KEY, "sepia"))

	pref := &Preference{Store: store}
	th, err := pref.Toggle()
	assert.NoError(err)
	assert.Equal(DEFAULT.Toggle(), th)
}

func TestStore_Update(t *testing.T) {
	assert := assert.New(t)

	store := openTestStore(t)

	value, err := store.Update("count", func(old string, ok bool) (string, error) {
		assert.False(ok)
		return old + "a", nil
	})
	assert.NoError(err)
	assert.Equal("a", value)

	value, err = store.Update("count", func(old string, ok bool) (string, error) {
		assert.True(ok)
		return old + "b", nil
	})
	assert.NoError(err)
	assert.Equal("ab", value)

	errRefused := errors.New("refused")
	_, err = store.Update("count", func(old string, ok bool) (string, error) {
		return "lost", errRefused
	})
	assert.ErrorIs(err, errRefused)

	value, ok, err := store.Get("count")
	assert.NoError(err)
	assert.True(ok)
	assert.Equal("ab", value)
}

func TestStore_Persistent(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()

	store, err := OpenStore(StoreConfig{Path: dir})
	assert.NoError(err)
	assert.NoError(store.Set(KEY, "light"))
	assert.NoError(store.Close())

	store, err = OpenStore(StoreConfig{Path: dir, Log: zap.NewNop()})
	assert.NoError(err)
	defer store.Close()

	value, ok, err := store.Get(KEY)
	assert.NoError(err)
	assert.True(ok)
	assert.Equal("light", value)

	_, ok, err = store.Get("missing")
	assert.NoError(err)
	assert.False(ok)

	_, err = OpenStore(StoreConfig{})
	assert.Error(err)
}

func TestOpenStore_Errors(t *testing.T) {
	assert := assert.New(t)

	file := filepath.Join(t.TempDir(), "file")
	assert.NoError(os.WriteFile(file, []byte("x"), 0644))

	path := filepath.Join(file, "store")
	_, err := OpenStore(StoreConfig{Path: path})
	if assert.Error(err) {
		assert.True(strings.HasPrefix(err.Error(), f("create store directory %v", path)+": "))
	}

	// A held directory lock fails the second open.
	dir := t.TempDir()
	store, err := OpenStore(StoreConfig{Path: dir})
	assert.NoError(err)
	defer store.Close()

	_, err = OpenStore(StoreConfig{Path: dir})
	if assert.Error(err) {
		assert.True(strings.HasPrefix(err.Error(), f("open store")+": "))
	}
}

func TestPaletteFor(t *testing.T) {
	assert := assert.New(t)

	dark := PaletteFor(DARK)
	light := PaletteFor(LIGHT)

	assert.NotEqual(dark.Title.GetForeground(), light.Title.GetForeground())
	assert.Equal(dark.Error.GetForeground(), light.Error.GetForeground())
}
