package journal

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interceptd/pkg/interception"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "strokes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { j.Close() })
	return j
}

func TestOpenCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "strokes.db")
	j, err := Open(path)
	require.NoError(t, err)
	defer j.Close()

	n, err := j.Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRecordKeyStroke(t *testing.T) {
	j := openTestJournal(t)

	err := j.Record(3, interception.KeyStroke{
		Code:        interception.ScanCodeCapsLock,
		State:       interception.KeyUp,
		Information: 9,
	})
	require.NoError(t, err)

	entries, err := j.Tail(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, "keyboard", e.Class)
	assert.Equal(t, interception.Device(3), e.Device)
	assert.Equal(t, uint16(interception.ScanCodeCapsLock), e.Code)
	assert.Equal(t, uint16(interception.KeyUp), e.State)
	assert.Equal(t, uint32(9), e.Information)
	assert.False(t, e.At.IsZero())
}

func TestRecordMouseStroke(t *testing.T) {
	j := openTestJournal(t)

	err := j.Record(12, interception.MouseStroke{
		State:   interception.MouseWheel,
		Flags:   interception.MouseMoveAbsolute,
		Rolling: -120,
		X:       640,
		Y:       -480,
	})
	require.NoError(t, err)

	entries, err := j.Tail(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, "mouse", e.Class)
	assert.Equal(t, uint16(interception.MouseWheel), e.State)
	assert.Equal(t, uint16(interception.MouseMoveAbsolute), e.Flags)
	assert.Equal(t, int16(-120), e.Rolling)
	assert.Equal(t, int32(640), e.X)
	assert.Equal(t, int32(-480), e.Y)
}

func TestTailNewestFirst(t *testing.T) {
	j := openTestJournal(t)

	for _, code := range []interception.ScanCode{
		interception.ScanCodeA, interception.ScanCodeB, interception.ScanCodeC,
	} {
		require.NoError(t, j.Record(1, interception.KeyStroke{Code: code}))
	}

	n, err := j.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	entries, err := j.Tail(2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, uint16(interception.ScanCodeC), entries[0].Code)
	assert.Equal(t, uint16(interception.ScanCodeB), entries[1].Code)
}
