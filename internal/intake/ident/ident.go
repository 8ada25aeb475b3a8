// Package ident generates human-readable submission identifiers. An id is
// unique with very high probability but no central authority enforces it; the
// store's unique index on the id column is the backstop against collisions.
package ident

import (
	"crypto/rand"
	"fmt"
	"time"
)

// Domain is the short tag prefixed to every identifier.
type Domain string

const (
	Contact      Domain = "CT"
	Event        Domain = "REG"
	Webinar      Domain = "WEB"
	BusinessClub Domain = "BC"
	Inquiry      Domain = "SVC"
)

const (
	suffixLen      = 9
	suffixAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// New returns an identifier of the form <TAG>-<unix millis>-<9 random
// uppercase alphanumerics>. The suffix comes from crypto/rand so one submitter
// cannot pre-guess another's id.
func New(d Domain) string {
	return fmt.Sprintf("%s-%d-%s", d, time.Now().UnixMilli(), randomSuffix())
}

func randomSuffix() string {
	buf := make([]byte, suffixLen)
	// rand.Read never fails on supported platforms; it panics internally
	// if the kernel source is broken, which is not a recoverable state.
	_, _ = rand.Read(buf)
	for i, b := range buf {
		buf[i] = suffixAlphabet[int(b)%len(suffixAlphabet)]
	}
	return string(buf)
}
