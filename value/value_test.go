/*
File    : wisp/value/value_test.go
*/
package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber_StringTrimsTrailingDotZero(t *testing.T) {
	assert.Equal(t, "3", Number{Value: 3.0}.String())
	assert.Equal(t, "3.5", Number{Value: 3.5}.String())
	assert.Equal(t, "0", Number{Value: 0}.String())
	assert.Equal(t, "-2", Number{Value: -2.0}.String())
}

func TestBoolean_String(t *testing.T) {
	assert.Equal(t, "true", Boolean{Value: true}.String())
	assert.Equal(t, "false", Boolean{Value: false}.String())
}

func TestNil_String(t *testing.T) {
	assert.Equal(t, "nil", NilValue.String())
}

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(NilValue))
	assert.False(t, Truthy(Boolean{Value: false}))
	assert.True(t, Truthy(Boolean{Value: true}))
	assert.True(t, Truthy(Number{Value: 0}), "0 is truthy")
	assert.True(t, Truthy(Text{Value: ""}), "empty string is truthy")
}

func TestEqual_NilEqualsNil(t *testing.T) {
	assert.True(t, Equal(NilValue, Nil{}))
}

func TestEqual_DifferentKindsAreUnequal(t *testing.T) {
	assert.False(t, Equal(Number{Value: 0}, Text{Value: ""}))
	assert.False(t, Equal(Boolean{Value: false}, NilValue))
}

func TestEqual_SameKindStructuralCompare(t *testing.T) {
	assert.True(t, Equal(Number{Value: 1}, Number{Value: 1}))
	assert.False(t, Equal(Number{Value: 1}, Number{Value: 2}))
	assert.True(t, Equal(Text{Value: "a"}, Text{Value: "a"}))
	assert.False(t, Equal(Text{Value: "a"}, Text{Value: "b"}))
}
