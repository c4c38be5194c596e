// Package testing provides test utilities for the web client.
package testing

import (
	"reflect"
	"strings"
)

// Assertion provides assertion helpers for testing.
type Assertion struct {
	t       TestingT
	subject interface{}
	name    string
}

// TestingT is the interface for testing.T.
type TestingT interface {
	Errorf(format string, args ...interface{})
	FailNow()
	Helper()
}

// Assert creates a new assertion.
func Assert(t TestingT, subject interface{}) *Assertion {
	return &Assertion{t: t, subject: subject}
}

// Named sets a name for the assertion.
func (a *Assertion) Named(name string) *Assertion {
	a.name = name
	return a
}

// fail reports a failure.
func (a *Assertion) fail(msg string, args ...interface{}) {
	a.t.Helper()
	prefix := ""
	if a.name != "" {
		prefix = a.name + ": "
	}
	a.t.Errorf(prefix+msg, args...)
}

// Equals asserts that the subject equals expected.
func (a *Assertion) Equals(expected interface{}) *Assertion {
	a.t.Helper()
	if !reflect.DeepEqual(a.subject, expected) {
		a.fail("expected %v, got %v", expected, a.subject)
	}
	return a
}

// IsTrue asserts that the subject is true.
func (a *Assertion) IsTrue() *Assertion {
	a.t.Helper()
	if b, ok := a.subject.(bool); !ok || !b {
		a.fail("expected true, got %v", a.subject)
	}
	return a
}

// IsFalse asserts that the subject is false.
func (a *Assertion) IsFalse() *Assertion {
	a.t.Helper()
	if b, ok := a.subject.(bool); !ok || b {
		a.fail("expected false, got %v", a.subject)
	}
	return a
}

// Contains asserts that the subject contains the substring.
func (a *Assertion) Contains(substr string) *Assertion {
	a.t.Helper()
	s, ok := a.subject.(string)
	if !ok {
		a.fail("expected string, got %T", a.subject)
		return a
	}
	if !strings.Contains(s, substr) {
		a.fail("expected '%s' to contain '%s'", s, substr)
	}
	return a
}

// StartsWith asserts that the subject starts with prefix.
func (a *Assertion) StartsWith(prefix string) *Assertion {
	a.t.Helper()
	s, ok := a.subject.(string)
	if !ok {
		a.fail("expected string, got %T", a.subject)
		return a
	}
	if !strings.HasPrefix(s, prefix) {
		a.fail("expected '%s' to start with '%s'", s, prefix)
	}
	return a
}

// HasLength asserts that the subject has the expected length.
func (a *Assertion) HasLength(expected int) *Assertion {
	a.t.Helper()
	val := reflect.ValueOf(a.subject)
	switch val.Kind() {
	case reflect.String, reflect.Array, reflect.Slice, reflect.Map, reflect.Chan:
		if val.Len() != expected {
			a.fail("expected length %d, got %d", expected, val.Len())
		}
	default:
		a.fail("cannot get length of %T", a.subject)
	}
	return a
}

// IsEmpty asserts that the subject is empty.
func (a *Assertion) IsEmpty() *Assertion {
	a.t.Helper()
	val := reflect.ValueOf(a.subject)
	switch val.Kind() {
	case reflect.String, reflect.Array, reflect.Slice, reflect.Map, reflect.Chan:
		if val.Len() != 0 {
			a.fail("expected empty %T, got length %d", a.subject, val.Len())
		}
	default:
		a.fail("cannot check emptiness of %T", a.subject)
	}
	return a
}

// IsNotEmpty asserts that the subject is not empty.
func (a *Assertion) IsNotEmpty() *Assertion {
	a.t.Helper()
	val := reflect.ValueOf(a.subject)
	switch val.Kind() {
	case reflect.String, reflect.Array, reflect.Slice, reflect.Map, reflect.Chan:
		if val.Len() == 0 {
			a.fail("expected non-empty %T", a.subject)
		}
	default:
		a.fail("cannot check emptiness of %T", a.subject)
	}
	return a
}

// MapAssertion provides map-specific assertions.
type MapAssertion struct {
	*Assertion
	mapVal reflect.Value
}

// AssertMap creates a map assertion.
func AssertMap[K comparable, V any](t TestingT, m map[K]V) *MapAssertion {
	return &MapAssertion{
		Assertion: Assert(t, m),
		mapVal:    reflect.ValueOf(m),
	}
}

// HasValue asserts the map has the key with the expected value.
func (m *MapAssertion) HasValue(key, expected interface{}) *MapAssertion {
	m.t.Helper()
	val := m.mapVal.MapIndex(reflect.ValueOf(key))
	if !val.IsValid() {
		m.fail("expected map to have key %v", key)
		return m
	}
	if !reflect.DeepEqual(val.Interface(), expected) {
		m.fail("expected map[%v] = %v, got %v", key, expected, val.Interface())
	}
	return m
}

// MustNotFail fails the test if there's an error.
func MustNotFail(t TestingT, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("unexpected error: %v", err)
		t.FailNow()
	}
}

// MustFail fails the test if there's no error.
func MustFail(t TestingT, err error) {
	t.Helper()
	if err == nil {
		t.Errorf("expected error but got none")
		t.FailNow()
	}
}
