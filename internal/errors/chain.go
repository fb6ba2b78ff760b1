package apperrors

import "errors"

type causer interface {
	Cause() error
}

// Cause returns the source of err: the result of its Cause method when it
// has one, otherwise errors.Unwrap(err). It returns nil for a nil err.
func Cause(err error) error {
	if c, ok := err.(causer); ok {
		return c.Cause()
	}
	return errors.Unwrap(err)
}

// Chain returns err followed by every error reached by repeatedly calling
// Cause. An AggregateError ends the chain.
func Chain(err error) []error {
	var chain []error
	for err != nil {
		chain = append(chain, err)
		err = Cause(err)
	}
	return chain
}

// Root returns the last error of err's chain, or nil for a nil err.
func Root(err error) error {
	for err != nil {
		next := Cause(err)
		if next == nil {
			return err
		}
		err = next
	}
	return nil
}

// Walk visits err and everything below it depth-first, calling fn with each
// error and its depth (0 for err itself). Below an AggregateError the walk
// continues into Errors(); below any other error it follows Cause. Returning
// false from fn skips the children of that error. Nil errors are not visited.
func Walk(err error, fn func(err error, depth int) bool) {
	walk(err, 0, fn)
}

func walk(err error, depth int, fn func(error, int) bool) {
	if err == nil || !fn(err, depth) {
		return
	}
	if agg, ok := err.(*AggregateError); ok {
		for _, child := range agg.errs {
			walk(child, depth+1, fn)
		}
		return
	}
	walk(Cause(err), depth+1, fn)
}
