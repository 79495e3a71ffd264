// Package errs defines the error types shared by the domain, the use cases and
// the adapters.
//
// Every type unwraps to a sentinel so callers classify errors with errors.Is:
//
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // 404
//	}
//
// Types:
//   - ValueIsRequiredError: a mandatory value is missing
//   - ValueIsInvalidError: a value breaks a domain rule
//   - ValueIsOutOfRangeError: a number is outside its bounds
//   - ObjectNotFoundError: a lookup by id or name matched nothing
//
// Messages never span lines; identifiers containing line breaks are flattened.
package errs
