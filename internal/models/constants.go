package models

import "strings"

// RentalStatus values are stored lower-case.
type RentalStatus string

const (
	RentalStatusActive    RentalStatus = "active"
	RentalStatusFinished  RentalStatus = "finished"
	RentalStatusCompleted RentalStatus = "completed"
	RentalStatusCancelled RentalStatus = "cancelled"
)

// ValidRentalStatuses lists the rental statuses accepted on update.
var ValidRentalStatuses = map[RentalStatus]struct{}{
	RentalStatusActive:    {},
	RentalStatusFinished:  {},
	RentalStatusCompleted: {},
	RentalStatusCancelled: {},
}

// ParseRentalStatus trims and lower-cases raw before matching.
func ParseRentalStatus(raw string) (RentalStatus, bool) {
	s := RentalStatus(strings.ToLower(strings.TrimSpace(raw)))
	_, ok := ValidRentalStatuses[s]
	return s, ok
}

// Is compares ignoring case, so legacy rows like "Finished" still match.
func (s RentalStatus) Is(other RentalStatus) bool {
	return strings.EqualFold(strings.TrimSpace(string(s)), string(other))
}

// Availability statuses of a clothing item. Other upper-case tokens are
// accepted as-is.
const (
	AvailabilityAvailable   = "AVAILABLE"
	AvailabilityRented      = "RENTED"
	AvailabilityUnavailable = "UNAVAILABLE"
)

// NormalizeAvailability trims and upper-cases an availability token.
func NormalizeAvailability(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// PaymentStatus values are stored lower-case.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusCanceled PaymentStatus = "canceled"
)

var ValidPaymentStatuses = map[PaymentStatus]struct{}{
	PaymentStatusPending:  {},
	PaymentStatusPaid:     {},
	PaymentStatusCanceled: {},
}

// ParsePaymentStatus lower-cases raw before matching. Surrounding spaces
// are not stripped.
func ParsePaymentStatus(raw string) (PaymentStatus, bool) {
	s := PaymentStatus(strings.ToLower(raw))
	_, ok := ValidPaymentStatuses[s]
	return s, ok
}

// ReportStatus is case-sensitive: only the exact upper-case tokens are valid.
type ReportStatus string

const (
	ReportStatusOpen       ReportStatus = "OPEN"
	ReportStatusInProgress ReportStatus = "IN_PROGRESS"
	ReportStatusResolved   ReportStatus = "RESOLVED"
	ReportStatusRejected   ReportStatus = "REJECTED"
)

var ValidReportStatuses = map[ReportStatus]struct{}{
	ReportStatusOpen:       {},
	ReportStatusInProgress: {},
	ReportStatusResolved:   {},
	ReportStatusRejected:   {},
}

// ParseReportStatus performs no normalization.
func ParseReportStatus(raw string) (ReportStatus, bool) {
	s := ReportStatus(raw)
	_, ok := ValidReportStatuses[s]
	return s, ok
}
