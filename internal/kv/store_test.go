package kv

import (
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPutGet(t *testing.T) {
	s := NewStore()

	s.Put("a", "1")
	v, err := s.Get("a")
	require.NoError(t, err)
	require.Equal(t, "1", v)

	s.Put("a", "2")
	v, err = s.Get("a")
	require.NoError(t, err)
	require.Equal(t, "2", v)
	require.Equal(t, 1, s.Len())
}

func TestGetMissing(t *testing.T) {
	s := NewStore()
	v, err := s.Get("missing")
	require.Empty(t, v)
	require.ErrorIs(t, err, ErrNotFound)

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	require.Equal(t, "missing", nf.Key)
	require.Contains(t, err.Error(), `"missing"`)
}

func TestSeededStore(t *testing.T) {
	s := NewSeededStore()
	require.Equal(t, 2, s.Len())

	v, err := s.Get("1")
	require.NoError(t, err)
	require.Equal(t, "David Bowie", v)

	v, err = s.Get("2")
	require.NoError(t, err)
	require.Equal(t, "Queen", v)
}

func TestSeedIsACopy(t *testing.T) {
	entries := Seed()
	entries[0].Value = "changed"

	v, err := NewSeededStore().Get("1")
	require.NoError(t, err)
	require.Equal(t, "David Bowie", v)
}

func TestPutIdempotent(t *testing.T) {
	s := NewStore()
	s.Put("k", "v")
	s.Put("k", "v")
	require.Equal(t, 1, s.Len())

	v, err := s.Get("k")
	require.NoError(t, err)
	require.Equal(t, "v", v)
}

func TestConcurrentPutGet(t *testing.T) {
	s := NewStore()
	const n = 200

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			k := strconv.Itoa(i)
			s.Put(k, "v"+k)
		}(i)
	}
	wg.Wait()

	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			k := strconv.Itoa(i)
			v, err := s.Get(k)
			if err == nil && v != "v"+k {
				err = errors.New("key " + k + " holds " + v)
			}
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	require.Equal(t, n, s.Len())
}
