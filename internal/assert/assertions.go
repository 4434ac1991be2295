package assert

import (
	"math"
	"reflect"
	"strings"
	"testing"
)

// Equal verifies equality of two objects.
func Equal[T any](t *testing.T, a, b T) {
	if !reflect.DeepEqual(a, b) {
		t.Helper()
		t.Fatalf("%v != %v", a, b)
	}
}

// NotEqual verifies objects are not equal.
func NotEqual[T any](t *testing.T, a T, b T) {
	if reflect.DeepEqual(a, b) {
		t.Helper()
		t.Fatalf("%v == %v", a, b)
	}
}

// True verifies the value is true.
func True(t *testing.T, value bool) {
	if !value {
		t.Helper()
		t.Fatalf("value is not true")
	}
}

// False verifies the value is false.
func False(t *testing.T, value bool) {
	if value {
		t.Helper()
		t.Fatalf("value is not false")
	}
}

// Nil verifies the pointer is nil.
func Nil[T any](t *testing.T, ptr *T) {
	if ptr != nil {
		t.Helper()
		t.Fatalf("%v != nil", *ptr)
	}
}

// NotNil verifies the pointer is not nil.
func NotNil[T any](t *testing.T, ptr *T) {
	if ptr == nil {
		t.Helper()
		t.Fatalf("pointer is nil")
	}
}

// InDelta verifies two floats are equal within the given tolerance.
func InDelta(t *testing.T, a, b, delta float64) {
	if math.IsNaN(a) || math.IsNaN(b) || math.Abs(a-b) > delta {
		t.Helper()
		t.Fatalf("%v != %v within delta %v", a, b, delta)
	}
}

// NoError verifies the error is nil.
func NoError(t *testing.T, err error) {
	if err != nil {
		t.Helper()
		t.Fatalf("unexpected error: %v", err)
	}
}

// ErrorContains checks whether the given error contains the specified string.
func ErrorContains(t *testing.T, err error, str string) {
	if err == nil {
		t.Helper()
		t.Fatalf("Error is nil")
	} else if !strings.Contains(err.Error(), str) {
		t.Helper()
		t.Fatalf("Error does not contain string: %s", str)
	}
}
