package cart

import "errors"

var (
	// ErrNotFound means the remote cart id is unknown or has expired.
	ErrNotFound = errors.New("cart not found")
	// ErrMalformed means the response body was not decodable JSON.
	ErrMalformed = errors.New("malformed cart payload")
	// ErrSchemaInvalid means decoded JSON failed required-field validation.
	ErrSchemaInvalid = errors.New("cart schema invalid")
	// ErrNetwork means the transport failed before a usable response.
	ErrNetwork = errors.New("cart fetch failed")
)
