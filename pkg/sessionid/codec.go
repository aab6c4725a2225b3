package sessionid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/speps/go-hashids/v2"
)

const (
	// Alphabet used for encoded ids. Look-alike glyphs (0/o, 1/l/i, b/6, ...) are left out.
	Alphabet = "acefghjkmnrstwxyz23456789"

	// MinLength is the minimum length of an encoded id.
	MinLength = 4

	epochYear = 2018
)

// Codec encodes payloads into salted ids and back.
// A Codec is immutable and safe for concurrent use.
type Codec struct {
	h *hashids.HashID
}

// NewCodec creates a codec keyed by salt.
func NewCodec(salt string) (*Codec, error) {
	if strings.TrimSpace(salt) == "" {
		return nil, ErrInvalidSalt
	}

	data := hashids.NewData()
	data.Salt = salt
	data.MinLength = MinLength
	data.Alphabet = Alphabet

	h, err := hashids.NewWithData(data)
	if err != nil {
		return nil, errors.Join(ErrInvalidSalt, err)
	}

	return &Codec{h: h}, nil
}

// Encode turns a non-negative payload into an id.
func (c *Codec) Encode(payload int64) (string, error) {
	if payload < 0 {
		return "", fmt.Errorf("%w: negative payload %d", ErrEncode, payload)
	}

	id, err := c.h.EncodeInt64([]int64{payload})
	if err != nil {
		return "", errors.Join(ErrEncode, err)
	}
	return id, nil
}

// Decode recovers the payload of an id.
// It reports false for ids produced with another salt, ids holding more than
// one number, and anything that is not a valid encoding.
func (c *Codec) Decode(id string) (int64, bool) {
	if id == "" {
		return 0, false
	}

	numbers, err := c.h.DecodeInt64WithError(id)
	if err != nil || len(numbers) != 1 {
		return 0, false
	}
	return numbers[0], true
}

// Payload builds the numeric payload for an issuance at t with sequence seq.
// The digits are the years since 2018, MMddHHmmss, zero padded milliseconds
// and the sequence, so payloads sort by time. t is taken in UTC.
func Payload(t time.Time, seq int) (int64, error) {
	if seq < 0 {
		return 0, fmt.Errorf("%w: negative sequence %d", ErrInvalidPayload, seq)
	}

	t = t.UTC()
	years := t.Year() - epochYear
	if years < 0 {
		return 0, fmt.Errorf("%w: year %d is before %d", ErrInvalidPayload, t.Year(), epochYear)
	}

	var b strings.Builder
	b.WriteString(strconv.Itoa(years))
	b.WriteString(t.Format("0102150405"))
	fmt.Fprintf(&b, "%03d", t.Nanosecond()/int(time.Millisecond))
	b.WriteString(strconv.Itoa(seq))

	payload, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0, errors.Join(ErrInvalidPayload, err)
	}
	return payload, nil
}
