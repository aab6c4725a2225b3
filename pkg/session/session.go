package session

import (
	"strings"
	"time"
)

// CarrierSeparator joins partition key and identifier in the carrier value.
const CarrierSeparator = "-"

// Session is the caller-visible identity of a session.
// It is never stored server side; once it has travelled through a client it
// must pass validation before being trusted again.
type Session struct {
	PartitionKey string    `json:"partitionKey"`
	SessionID    string    `json:"sessionId"`
	Salt         string    `json:"salt"`
	CreatedAt    time.Time `json:"createdDate"`
}

// Carrier returns the transport value "{partitionKey}-{sessionId}".
func (s *Session) Carrier() string {
	if s == nil {
		return ""
	}
	return s.PartitionKey + CarrierSeparator + s.SessionID
}

// ParseCarrier splits a carrier value into partition key and identifier.
// Identifiers never contain the separator, so the last one is used and
// application names may contain dashes.
func ParseCarrier(value string) (partitionKey, sessionID string, ok bool) {
	idx := strings.LastIndex(value, CarrierSeparator)
	if idx <= 0 || idx == len(value)-1 {
		return "", "", false
	}
	return value[:idx], value[idx+1:], true
}
