package sessionid

import "errors"

var (
	// ErrInvalidSalt indicates the salt cannot be used to build a codec
	ErrInvalidSalt = errors.New("sessionid.invalid_salt")

	// ErrInvalidPayload indicates the timestamp or sequence cannot form a payload
	ErrInvalidPayload = errors.New("sessionid.invalid_payload")

	// ErrEncode indicates the codec failed to encode the payload
	ErrEncode = errors.New("sessionid.encode_failed")

	// ErrSelfCheckFailed indicates a freshly encoded id did not decode back to its payload.
	// It points to a codec defect, never to bad user input.
	ErrSelfCheckFailed = errors.New("sessionid.self_check_failed")
)
