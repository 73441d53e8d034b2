//go:build unit

package jobstore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"ipmanager/internal/adapter/infrastructure/file"
	"ipmanager/internal/mock"
	"ipmanager/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := New(filepath.Join(t.TempDir(), "jobs.json"), file.NewManagerAdapter())
	require.NoError(t, store.Load())
	return store
}

func reload(t *testing.T, store *Store) *Store {
	t.Helper()
	reloaded := New(store.Path(), file.NewManagerAdapter())
	require.NoError(t, reloaded.Load())
	return reloaded
}

func TestStore_Load(t *testing.T) {
	t.Run("MissingFile", func(t *testing.T) {
		store := newTestStore(t)
		assert.Empty(t, store.Jobs())
	})

	t.Run("EmptyFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "jobs.json")
		require.NoError(t, os.WriteFile(path, []byte("  \n"), 0644))

		store := New(path, file.NewManagerAdapter())
		assert.NoError(t, store.Load())
		assert.Empty(t, store.Jobs())
	})

	t.Run("NullDocument", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "jobs.json")
		require.NoError(t, os.WriteFile(path, []byte("null"), 0644))

		store := New(path, file.NewManagerAdapter())
		assert.NoError(t, store.Load())
		assert.Empty(t, store.Jobs())
	})

	t.Run("MalformedDocument", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "jobs.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"name": "office",`), 0644))

		store := New(path, file.NewManagerAdapter())
		err := store.Load()
		require.Error(t, err)
		assert.True(t, errors.Is(err, types.ErrPersistence))
		assert.Empty(t, store.Jobs())
	})

	t.Run("WrongShape", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "jobs.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"name": "office"}`), 0644))

		store := New(path, file.NewManagerAdapter())
		err := store.Load()
		assert.True(t, errors.Is(err, types.ErrPersistence))
		assert.Empty(t, store.Jobs())
	})

	t.Run("PascalCaseDocument", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "jobs.json")
		doc := `[
  {
    "Name": "Lab",
    "UseDHCP": false,
    "IPAddresses": [
      { "Address": "10.0.0.5", "IsSelected": true },
      { "Address": "10.0.0.6", "IsSelected": false }
    ]
  }
]`
		require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

		store := New(path, file.NewManagerAdapter())
		require.NoError(t, store.Load())
		require.Len(t, store.Jobs(), 1)

		job := store.Jobs()[0]
		assert.Equal(t, "Lab", job.Name)
		assert.False(t, job.UseDHCP)
		assert.Equal(t, []string{"10.0.0.5"}, job.SelectedAddresses())
		assert.Len(t, job.IPAddresses, 2)
	})

	t.Run("ReadError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		files := mock.NewMockFileManager(ctrl)
		files.EXPECT().FileExists("jobs.json").Return(true)
		files.EXPECT().ReadFile("jobs.json").Return(nil, os.ErrPermission)

		store := New("jobs.json", files)
		err := store.Load()
		assert.True(t, errors.Is(err, types.ErrPersistence))
		assert.True(t, errors.Is(err, os.ErrPermission))
		assert.Empty(t, store.Jobs())
	})
}

func TestStore_RoundTrip(t *testing.T) {
	store := newTestStore(t)

	_, err := store.AddJob("office")
	require.NoError(t, err)
	_, err = store.AddJob("lab")
	require.NoError(t, err)
	_, err = store.AddJob("home")
	require.NoError(t, err)

	_, err = store.AddIPAddress("office", "10.0.0.5")
	require.NoError(t, err)
	_, err = store.AddIPAddress("office", "fe80::1")
	require.NoError(t, err)
	require.NoError(t, store.SetSelected("office", "fe80::1", true))
	require.NoError(t, store.SetMode("home", true))

	reloaded := reload(t, store)
	assert.Equal(t, store.Jobs(), reloaded.Jobs())

	names := make([]string, 0, 3)
	for _, job := range reloaded.Jobs() {
		names = append(names, job.Name)
	}
	assert.Equal(t, []string{"office", "lab", "home"}, names)
}

func TestStore_SaveFormat(t *testing.T) {
	store := newTestStore(t)
	_, err := store.AddJob("office")
	require.NoError(t, err)
	_, err = store.AddIPAddress("office", "10.0.0.5")
	require.NoError(t, err)

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	want := `[
  {
    "name": "office",
    "useDHCP": false,
    "ipAddresses": [
      {
        "address": "10.0.0.5",
        "isSelected": false
      }
    ]
  }
]
`
	assert.Equal(t, want, string(data))
}

func TestStore_SaveFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	files := mock.NewMockFileManager(ctrl)
	files.EXPECT().FileExists("jobs.json").Return(false)

	store := New("jobs.json", files)
	require.NoError(t, store.Load())

	files.EXPECT().WriteFile("jobs.json", gomock.Any(), filePerm).Return(os.ErrPermission)
	job, err := store.AddJob("office")
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrPersistence))
	assert.NotNil(t, job)
	assert.Len(t, store.Jobs(), 1)

	files.EXPECT().WriteFile("jobs.json", gomock.Any(), filePerm).Return(nil)
	assert.NoError(t, store.Save())
}

func TestStore_AddJob(t *testing.T) {
	t.Run("DistinctNames", func(t *testing.T) {
		store := newTestStore(t)
		job, err := store.AddJob("  office  ")
		require.NoError(t, err)
		assert.Equal(t, "office", job.Name)
		assert.False(t, job.UseDHCP)
		assert.Empty(t, job.IPAddresses)

		_, err = store.AddJob("lab")
		require.NoError(t, err)
		assert.Len(t, store.Jobs(), 2)
	})

	t.Run("DuplicateNameAnyCase", func(t *testing.T) {
		store := newTestStore(t)
		_, err := store.AddJob("Office")
		require.NoError(t, err)

		for _, name := range []string{"Office", "office", "OFFICE", " oFfIcE "} {
			_, err := store.AddJob(name)
			assert.True(t, errors.Is(err, types.ErrDuplicateName), name)
			assert.True(t, errors.Is(err, types.ErrValidation), name)
		}
		assert.Len(t, store.Jobs(), 1)
		assert.Len(t, reload(t, store).Jobs(), 1)
	})

	t.Run("EmptyName", func(t *testing.T) {
		store := newTestStore(t)
		for _, name := range []string{"", "   ", "\t"} {
			_, err := store.AddJob(name)
			assert.True(t, errors.Is(err, types.ErrEmptyName))
		}
		assert.Empty(t, store.Jobs())
		_, statErr := os.Stat(store.Path())
		assert.True(t, os.IsNotExist(statErr))
	})
}

func TestStore_Job(t *testing.T) {
	store := newTestStore(t)
	added, err := store.AddJob("Office")
	require.NoError(t, err)

	job, err := store.Job("office")
	require.NoError(t, err)
	assert.Same(t, added, job)

	_, err = store.Job("missing")
	assert.True(t, errors.Is(err, types.ErrJobNotFound))
}

func TestStore_RemoveJob(t *testing.T) {
	store := newTestStore(t)
	for _, name := range []string{"a", "b", "c"} {
		_, err := store.AddJob(name)
		require.NoError(t, err)
	}

	require.NoError(t, store.RemoveJob("B"))
	reloaded := reload(t, store)
	require.Len(t, reloaded.Jobs(), 2)
	assert.Equal(t, "a", reloaded.Jobs()[0].Name)
	assert.Equal(t, "c", reloaded.Jobs()[1].Name)

	assert.True(t, errors.Is(store.RemoveJob("b"), types.ErrJobNotFound))
}
