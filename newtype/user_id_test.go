package newtype

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func TestNewAndValue(t *testing.T) {
	uid := NewUserID(42)
	assert.Equal(t, uint64(42), uid.Value())
	assert.Equal(t, "42", uid.String())
}

func TestConversion(t *testing.T) {
	uid := UserID(99)
	id := uint64(uid)
	assert.Equal(t, uint64(99), id)
}

func TestProto(t *testing.T) {
	uid := NewUserID(7)
	msg := uid.Proto()
	assert.True(t, proto.Equal(wrapperspb.UInt64(7), msg))

	data, err := proto.Marshal(msg)
	assert.NoError(t, err)
	var decoded wrapperspb.UInt64Value
	assert.NoError(t, proto.Unmarshal(data, &decoded))
	assert.Equal(t, uid, UserIDFromProto(&decoded))

	assert.Equal(t, UserID(0), UserIDFromProto(nil))
}

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	Demo(&buf)
	assert.Equal(t, "[Newtype demo] UserId value = 1001\n", buf.String())
}
