// Package sessionid issues and validates opaque, time-ordered session
// identifiers.
//
// An identifier is a Hashids encoding of a numeric payload built from the
// issuance timestamp and a small sequence number:
//
//	(year-2018) MMddHHmmss fff sequence
//
// The encoding is keyed by a secret salt and uses a 25 character alphabet
// without ambiguous glyphs. Decoding with any other salt fails. The issued
// salt is stored as "salt|sequence" next to the identifier, which makes the
// identifier self-validating: no server-side lookup is needed to check it,
// only the secret salt and the original creation time.
//
// # Usage
//
//	import "github.com/dmitrymomot/dfcsession/pkg/sessionid"
//
//	gen := sessionid.New()
//
//	now := time.Now().UTC()
//	res, err := gen.CreateSession("my-secret-salt", now)
//	if err != nil {
//	    // only happens on codec defects or invalid input
//	}
//
//	ok := gen.ValidateSessionID(fmt.Sprintf("my-secret-salt|%d", res.Counter), now, res.EncodedSessionID)
//
// # Sequence counter
//
// Identifiers minted in the same millisecond are told apart by a sequence
// number in [0,99). By default every Generator in the process shares one
// SequenceCounter; use WithCounter to inject another one (for tests, for
// example).
//
// # Error Handling
//
//   - ErrInvalidSalt     – salt is empty or malformed
//   - ErrInvalidPayload  – timestamp/sequence cannot form a payload
//   - ErrEncode          – the underlying codec rejected the input
//   - ErrSelfCheckFailed – decoding a freshly encoded id did not match
//
// Validation never returns an error: it reports false for every malformed or
// tampered input.
package sessionid
