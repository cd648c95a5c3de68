package every

import (
	"errors"
	"reflect"
)

// isNil reports whether err is nil or a typed nil of any nilable kind.
func isNil(err error) bool {
	if err == nil {
		return true
	}
	v := reflect.ValueOf(err)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.Slice, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// FromErrors splits err into its parts. A joined error (Unwrap() []error)
// contributes each non-nil child, anything else contributes itself.
// It reports false when err is nil or holds no errors.
func FromErrors(err error) (Every[error], bool) {
	if isNil(err) {
		return Every[error]{}, false
	}

	e, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return One(err), true
	}

	parts := make([]error, 0, len(e.Unwrap()))
	for _, child := range e.Unwrap() {
		if !isNil(child) {
			parts = append(parts, child)
		}
	}
	return From(parts)
}

// Join folds e into one error with errors.Join
func Join(e Every[error]) error {
	if e.IsOne() {
		return e.head
	}
	return errors.Join(e.ToSlice()...)
}
