package newtype

import (
	"fmt"
	"io"
	"strconv"

	"google.golang.org/protobuf/types/known/wrapperspb"
)

// UserID is a user identifier. It is a distinct type so it cannot be mixed
// up with other uint64 values without an explicit conversion.
type UserID uint64

func NewUserID(id uint64) UserID {
	return UserID(id)
}

// Value returns the underlying uint64.
func (id UserID) Value() uint64 {
	return uint64(id)
}

func (id UserID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Proto wraps the id for protobuf messages.
func (id UserID) Proto() *wrapperspb.UInt64Value {
	return wrapperspb.UInt64(uint64(id))
}

// UserIDFromProto unwraps a protobuf value. A nil value yields zero.
func UserIDFromProto(v *wrapperspb.UInt64Value) UserID {
	return UserID(v.GetValue())
}

// Demo prints the value behind a UserID.
func Demo(w io.Writer) {
	uid := NewUserID(1001)
	fmt.Fprintf(w, "[Newtype demo] UserId value = %d\n", uid.Value())
}
