package httperr

import "errors"

// BusinessError is a domain rule violation identified by a stable
// string code ("time_conflict", "not_allowed", ...). Use cases return
// these; the handler layer translates each code to an HTTP status.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string { return e.Code }

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsBusiness reports whether err carries the given business code.
func IsBusiness(err error, code string) bool {
	var be BusinessError
	return errors.As(err, &be) && be.Code == code
}
