package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"parcel/internal/pkg/errs"
)

const (
	// trackingSuffixLength is the number of random characters appended to
	// the date part of a tracking number.
	trackingSuffixLength = 6

	// trackingMaxAttempts bounds collision retries. Exhausting them fails
	// the surrounding shipment creation; the caller may retry the whole
	// operation.
	trackingMaxAttempts = 5

	// DefaultTrackingPrefix is used when the tenant configures none.
	DefaultTrackingPrefix = "PCL"

	trackingAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// ErrTrackingNumberExhausted is returned when five consecutive candidates
// collided with existing shipments.
var ErrTrackingNumberExhausted = errs.NewBusinessRuleError(
	"tracking number", "could not generate a unique tracking number after 5 attempts")

// TrackingNumberChecker answers whether a candidate tracking number is
// already taken. Implemented by the shipment repository.
type TrackingNumberChecker interface {
	TrackingNumberExists(ctx context.Context, trackingNumber string) (bool, error)
}

// TrackingNumberGenerator produces human-readable shipment identifiers of
// the form PREFIX-YYYYMMDD-XXXXXX, where the date is the current UTC day
// and the suffix is six random alphanumeric characters.
type TrackingNumberGenerator struct {
	prefix string
}

// NewTrackingNumberGenerator creates a generator with the given prefix.
// An empty prefix falls back to DefaultTrackingPrefix.
func NewTrackingNumberGenerator(prefix string) *TrackingNumberGenerator {
	if prefix == "" {
		prefix = DefaultTrackingPrefix
	}
	return &TrackingNumberGenerator{prefix: prefix}
}

// Generate produces a tracking number not yet taken according to checker.
// On collision it regenerates, up to five times, then fails with
// ErrTrackingNumberExhausted.
func (g *TrackingNumberGenerator) Generate(ctx context.Context, checker TrackingNumberChecker) (string, error) {
	for attempt := 0; attempt < trackingMaxAttempts; attempt++ {
		candidate, err := g.candidate()
		if err != nil {
			return "", err
		}

		taken, err := checker.TrackingNumberExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}

	return "", ErrTrackingNumberExhausted
}

func (g *TrackingNumberGenerator) candidate() (string, error) {
	buf := make([]byte, trackingSuffixLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("reading random suffix: %w", err)
	}
	for i, b := range buf {
		buf[i] = trackingAlphabet[int(b)%len(trackingAlphabet)]
	}

	return fmt.Sprintf("%s-%s-%s", g.prefix, time.Now().UTC().Format("20060102"), buf), nil
}
