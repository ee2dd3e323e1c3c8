package utils

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// Human-readable record numbers: a millisecond timestamp in base36, uppercased,
// with a per-kind prefix. Customer bookings and synthesized walk-in bookings
// carry different prefixes so staff can tell them apart at a glance.

const codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func timestamp36() string {
	return strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))
}

func randSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return string(b)
}

// NewBookingNumber returns a code for a customer-submitted booking, e.g. PA-MB3K2J1Q-X4T9.
func NewBookingNumber() string {
	return "PA-" + timestamp36() + "-" + randSuffix(4)
}

// NewWalkInNumber returns a code for a booking synthesized for a walk-in job card.
func NewWalkInNumber() string {
	return "WI-" + timestamp36() + "-" + randSuffix(4)
}

func NewJobCardNumber() string {
	return "JC-" + timestamp36() + "-" + randSuffix(4)
}

func NewBillNumber() string {
	return "BILL-" + timestamp36() + "-" + randSuffix(4)
}

// Today returns the local calendar date as YYYY-MM-DD.
func Today() string {
	return time.Now().Format("2006-01-02")
}
