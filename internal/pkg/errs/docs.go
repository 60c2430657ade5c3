// Package errs provides the typed errors shared by the domain model, the use
// cases and the adapters.
//
// Every error type pairs a sentinel (ErrObjectNotFound, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrValueIsRequired) with a struct carrying the
// offending parameter and an optional cause. Unwrap returns the sentinel, so
// callers classify with errors.Is:
//
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    return c.JSON(http.StatusNotFound, ...)
//	}
//
// IsValidation groups the sentinels that describe bad input; the HTTP layer
// maps those to 400 Bad Request.
package errs
