package naming

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	fileA   = "5b0ed1d4-3c2a-4f2e-9a51-0f4f1c1e8a01"
	deviceA = "9d2f7a3e-0b1c-4c8e-8f6e-2d9b7a1c4e02"
)

func TestCloudObjectName(t *testing.T) {
	assert.Equal(t, fileA+"."+deviceA+".3", CloudObjectName(fileA, deviceA, 3))
}

func TestParse_RoundTrip(t *testing.T) {
	id, err := New(fileA, deviceA, 12)
	require.NoError(t, err)

	got, err := Parse(id.Name())
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestNames_AreDistinctAcrossTriples(t *testing.T) {
	seen := map[string]ObjectID{}
	files := []string{uuid.NewString(), uuid.NewString()}
	devices := []string{uuid.NewString(), uuid.NewString(), uuid.NewString()}

	for _, f := range files {
		for _, d := range devices {
			for v := int64(0); v < 4; v++ {
				id := ObjectID{FileID: f, DeviceID: d, Version: v}
				prev, dup := seen[id.Name()]
				require.False(t, dup, "%v and %v share a name", prev, id)
				seen[id.Name()] = id
			}
		}
	}
	assert.Len(t, seen, 2*3*4)
}

func TestNew_Rejects(t *testing.T) {
	_, err := New("not-a-uuid", deviceA, 0)
	assert.Error(t, err)
	_, err = New(fileA, "a.b", 0)
	assert.Error(t, err)
	_, err = New(fileA, deviceA, -1)
	assert.Error(t, err)
}

func TestParse_Malformed(t *testing.T) {
	for _, name := range []string{"", "a.b", fileA + "." + deviceA + ".x", fileA + "." + deviceA + ".1.2"} {
		_, err := Parse(name)
		assert.Error(t, err, name)
	}
}

func TestObjectID_Key(t *testing.T) {
	id := ObjectID{FileID: fileA, DeviceID: deviceA, Version: 1}
	assert.Equal(t, "Photos/"+id.Name(), id.Key("Photos"))
	assert.Equal(t, id.Name(), id.Key(""))
}
