// Package status is the single booking lifecycle shared by court and table bookings.
//
// Both kinds store the canonical values below. Table bookings additionally accept and
// display the legacy labels DaDat, DaXacNhan, DaHuy and QuaHan.
package status

import (
	"errors"
	"strings"
)

type Kind string

const (
	KindCourt Kind = "court"
	KindTable Kind = "table"
)

type Status string

const (
	Pending   Status = "pending"
	Confirmed Status = "confirmed"
	Canceled  Status = "canceled"
	Received  Status = "received"
	Expired   Status = "expired"
)

var (
	ErrUnknownKind       = errors.New("unknown booking kind")
	ErrUnknownStatus     = errors.New("unknown booking status")
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrNotCancelable     = errors.New("booking can only be canceled while pending")
)

type vocabulary struct {
	labels      map[Status]string
	transitions map[Status][]Status
}

var vocabularies = map[Kind]vocabulary{
	KindCourt: {
		labels: map[Status]string{
			Pending:   string(Pending),
			Confirmed: string(Confirmed),
			Canceled:  string(Canceled),
			Received:  string(Received),
			Expired:   string(Expired),
		},
		transitions: map[Status][]Status{
			Pending:   {Confirmed, Canceled, Expired},
			Confirmed: {Received},
		},
	},
	KindTable: {
		labels: map[Status]string{
			Pending:   "DaDat",
			Confirmed: "DaXacNhan",
			Canceled:  "DaHuy",
			Expired:   "QuaHan",
		},
		transitions: map[Status][]Status{
			Pending:   {Confirmed, Canceled, Expired},
			Confirmed: {Expired},
		},
	},
}

func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := vocabularies[k]; !ok {
		return "", ErrUnknownKind
	}

	return k, nil
}

// Parse accepts a canonical value or one of the kind's labels.
func Parse(kind Kind, s string) (Status, error) {
	v, ok := vocabularies[kind]
	if !ok {
		return "", ErrUnknownKind
	}

	s = strings.TrimSpace(s)

	for st, label := range v.labels {
		if strings.EqualFold(s, string(st)) || strings.EqualFold(s, label) {
			return st, nil
		}
	}

	return "", ErrUnknownStatus
}

// Label returns the display label of st for kind, or the canonical value if the kind has none.
func Label(kind Kind, st Status) string {
	if label, ok := vocabularies[kind].labels[st]; ok {
		return label
	}

	return string(st)
}

func CanTransition(kind Kind, from, to Status) bool {
	for _, next := range vocabularies[kind].transitions[from] {
		if next == to {
			return true
		}
	}

	return false
}

func Transition(kind Kind, from, to Status) error {
	if to == Canceled && from != Pending {
		return ErrNotCancelable
	}

	if !CanTransition(kind, from, to) {
		return ErrInvalidTransition
	}

	return nil
}

// Active reports whether a booking in st still occupies its slots.
func Active(st Status) bool {
	return st == Pending || st == Confirmed || st == Received
}
