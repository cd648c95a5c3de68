// Package orzap renders or.Or and every.Every values as zap fields.
package orzap

import (
	"github.com/ib-77/orly/pkg/or"
	"github.com/ib-77/orly/pkg/or/every"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Variant values written under the "variant" key
const (
	VariantGood = "good"
	VariantBad  = "bad"
)

type orMarshaler[G, B any] struct {
	result or.Or[G, B]
}

func (m orMarshaler[G, B]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if g, ok := m.result.GoodValue(); ok {
		enc.AddString("variant", VariantGood)
		return enc.AddReflected("value", g)
	}

	b, _ := m.result.BadValue()
	enc.AddString("variant", VariantBad)
	return enc.AddReflected("error", b)
}

type everyMarshaler[T any] struct {
	items every.Every[T]
}

func (m everyMarshaler[T]) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for v := range m.items.All() {
		if err := appendItem(enc, v); err != nil {
			return err
		}
	}
	return nil
}

func appendItem(enc zapcore.ArrayEncoder, v any) error {
	switch item := v.(type) {
	case string:
		enc.AppendString(item)
	case error:
		enc.AppendString(item.Error())
	default:
		return enc.AppendReflected(item)
	}
	return nil
}

// Field logs result under key as an object with a "variant" entry and
// either a "value" or an "error" entry. For results with an every.Every
// Bad side prefer AccumulatedField.
func Field[G, B any](key string, result or.Or[G, B]) zap.Field {
	return zap.Object(key, orMarshaler[G, B]{result: result})
}

// Errors logs an accumulated error set as an array, in order.
// error elements are written as their messages.
func Errors[T any](key string, items every.Every[T]) zap.Field {
	return zap.Array(key, everyMarshaler[T]{items: items})
}

// AccumulatedField logs a result whose Bad side is an every.Every as an
// object with an "errors" array.
func AccumulatedField[G, ERR any](key string, result or.Or[G, every.Every[ERR]]) zap.Field {
	return zap.Object(key, accumulatedMarshaler[G, ERR]{result: result})
}

type accumulatedMarshaler[G, ERR any] struct {
	result or.Or[G, every.Every[ERR]]
}

func (m accumulatedMarshaler[G, ERR]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if g, ok := m.result.GoodValue(); ok {
		enc.AddString("variant", VariantGood)
		return enc.AddReflected("value", g)
	}

	errs, _ := m.result.BadValue()
	enc.AddString("variant", VariantBad)
	return enc.AddArray("errors", everyMarshaler[ERR]{items: errs})
}
