// Package chain provides a fluent wrapper around or.Or[T, B]
// for building synchronous fail-fast chains.
//
// The first Bad stops the chain: later steps are skipped and the Bad is
// carried to the end unchanged. For collecting every failure use the
// accumulating combinators of package or instead.
//
// Key operations:
// - Start/FromValue: begin a chain from an Or or a value
// - Then: switch to a new Or[U, B] via a function
// - ThenTry: call a function (U, error) and convert error to Bad
// - Map: transform the Good value (T -> U)
// - Ensure: run side effects on Good without changing the result
// - RepeatUntil: re-apply a step while a condition holds
// - Finally: collapse the chain into a final value via handlers
package chain
