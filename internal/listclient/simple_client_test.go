package listclient

import (
	"net"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gorilla/mux"
	"github.com/oklog/ulid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SystemBuilders/ListKey/internal/listservice"
	"github.com/SystemBuilders/ListKey/internal/routing"
)

func newTestClient(t *testing.T) *SimpleClient {
	t.Helper()

	ls, err := listservice.NewSimpleListService(zerolog.Nop(), listservice.DefaultOptions())
	require.NoError(t, err)

	srv := httptest.NewServer(routing.SetupRouting(ls, mux.NewRouter()))
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	host, port, err := net.SplitHostPort(u.Host)
	require.NoError(t, err)

	return NewSimpleClient(listservice.NewSimpleConfig(host, port))
}

func strs(vals []listservice.Value) []string {
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		out = append(out, string(v))
	}
	return out
}

func TestPushRemoveScenario(t *testing.T) {
	sc := newTestClient(t)

	id, err := sc.Create()
	require.NoError(t, err)

	for _, v := range []string{"1", "2", "3", "4", "5"} {
		_, err := sc.Push(id, listservice.Value(v))
		require.NoError(t, err)
	}

	v, err := sc.Remove(id, 4)
	require.NoError(t, err)
	assert.Equal(t, "5", string(v))

	v, err = sc.Remove(id, 0)
	require.NoError(t, err)
	assert.Equal(t, "1", string(v))

	snap, err := sc.Snapshot(id)
	require.NoError(t, err)
	assert.Equal(t, id, snap.ID)
	assert.Equal(t, 3, snap.Length)
	assert.Equal(t, []string{"2", "3", "4"}, strs(snap.Values))
}

func TestReverseScenario(t *testing.T) {
	sc := newTestClient(t)

	id, err := sc.Create()
	require.NoError(t, err)
	for _, v := range []string{"1", "2", "3", "4", "5"} {
		_, err := sc.Push(id, listservice.Value(v))
		require.NoError(t, err)
	}

	require.NoError(t, sc.Reverse(id))
	for i, want := range []string{"5", "4", "3", "2", "1"} {
		v, err := sc.Get(id, i)
		require.NoError(t, err)
		assert.Equal(t, want, string(v))
	}
}

func TestEmptyListScenario(t *testing.T) {
	sc := newTestClient(t)

	id, err := sc.Create()
	require.NoError(t, err)

	err = sc.Set(id, 0, listservice.Value(`"x"`))
	assert.Equal(t, listservice.ErrPositionOutOfRange, errors.Cause(err))

	_, err = sc.Get(id, 0)
	assert.Equal(t, listservice.ErrPositionOutOfRange, errors.Cause(err))

	_, err = sc.Pop(id)
	assert.Equal(t, listservice.ErrEmptyList, errors.Cause(err))

	_, err = sc.Shift(id)
	assert.Equal(t, listservice.ErrEmptyList, errors.Cause(err))
}

func TestInsertOutOfRangeScenario(t *testing.T) {
	sc := newTestClient(t)

	id, err := sc.Create()
	require.NoError(t, err)

	length, err := sc.Unshift(id, listservice.Value(`"b"`))
	require.NoError(t, err)
	assert.Equal(t, 1, length)
	length, err = sc.Insert(id, 0, listservice.Value(`"a"`))
	require.NoError(t, err)
	assert.Equal(t, 2, length)

	_, err = sc.Insert(id, -1, listservice.Value(`"x"`))
	assert.Equal(t, listservice.ErrPositionOutOfRange, errors.Cause(err))
	_, err = sc.Insert(id, 3, listservice.Value(`"x"`))
	assert.Equal(t, listservice.ErrPositionOutOfRange, errors.Cause(err))

	snap, err := sc.Snapshot(id)
	require.NoError(t, err)
	assert.Equal(t, []string{`"a"`, `"b"`}, strs(snap.Values))

	require.NoError(t, sc.Set(id, 1, listservice.Value(`"c"`)))
	v, err := sc.Shift(id)
	require.NoError(t, err)
	assert.Equal(t, `"a"`, string(v))
	v, err = sc.Pop(id)
	require.NoError(t, err)
	assert.Equal(t, `"c"`, string(v))
}

func TestInvalidValue(t *testing.T) {
	sc := newTestClient(t)

	id, err := sc.Create()
	require.NoError(t, err)

	_, err = sc.Push(id, listservice.Value("{"))
	assert.Equal(t, listservice.ErrInvalidValue, errors.Cause(err))
	_, err = sc.Push(id, nil)
	assert.Equal(t, listservice.ErrInvalidValue, errors.Cause(err))
}

func TestListLifecycle(t *testing.T) {
	sc := newTestClient(t)

	id, err := sc.Create()
	require.NoError(t, err)

	ids, err := sc.IDs()
	require.NoError(t, err)
	assert.Equal(t, []ulid.ULID{id}, ids)

	stats, err := sc.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Lists)

	require.NoError(t, sc.Drop(id))

	err = sc.Drop(id)
	assert.Equal(t, listservice.ErrListDoesntExist, errors.Cause(err))
	_, err = sc.Snapshot(id)
	assert.Equal(t, listservice.ErrListDoesntExist, errors.Cause(err))
}

func TestUnreachableNode(t *testing.T) {
	sc := NewSimpleClient(listservice.NewSimpleConfig("http://127.0.0.1", "1"))

	_, err := sc.Create()
	assert.Error(t, err)
}
