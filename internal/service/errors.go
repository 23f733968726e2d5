package service

import (
	"errors"

	"github.com/vesteevolta/backend/internal/pkg/apperror"
	"github.com/vesteevolta/backend/internal/repository/common"
)

// Rejection reasons. Each is a distinct value so callers can tell them
// apart with errors.Is.
var (
	ErrCategoryNotFound     = apperror.NotFound("category not found")
	ErrCategoryNameRequired = apperror.Invalid("category name is required")
	ErrCategoryNameTaken    = apperror.Conflict("a category with this name already exists")
	ErrCategoryHasClothings = apperror.Conflict("category still has clothing assigned")

	ErrClothingNotFound            = apperror.NotFound("clothing not found")
	ErrClothingDescriptionRequired = apperror.Invalid("clothing description is required")
	ErrInvalidRentPrice            = apperror.Invalid("rent price must be greater than zero")
	ErrOwnerRoleRequired           = apperror.Forbidden("only owners can list clothing")
	ErrNotClothingOwner            = apperror.Forbidden("only the owner can change this clothing")
	ErrClothingRented              = apperror.Conflict("clothing is currently rented")
	ErrClothingHasHistory          = apperror.Conflict("clothing has rentals, ratings or reports and cannot be deleted")
	ErrCategoriesRequired          = apperror.Invalid("at least one category is required")
	ErrUnknownCategory             = apperror.NotFound("one or more categories do not exist")

	ErrRentalNotFound      = apperror.NotFound("rental not found")
	ErrRenterRequired      = apperror.Invalid("renter is required")
	ErrInvalidRentalPeriod = apperror.Invalid("end date must not be before start date")
	ErrInvalidRentalStatus = apperror.Invalid("invalid rental status")
	ErrInvalidDateRange    = apperror.Invalid("'from' must not be after 'to'")

	ErrPaymentNotFound      = apperror.NotFound("payment not found")
	ErrInvalidPaymentAmount = apperror.Invalid("payment amount must be greater than zero")
	ErrInvalidPaymentStatus = apperror.Invalid("invalid payment status")

	ErrRatingNotFound         = apperror.NotFound("rating not found")
	ErrNotRentalRenter        = apperror.Forbidden("only the renter can rate this rental")
	ErrRentalNotFinished      = apperror.Invalid("only finished rentals can be rated")
	ErrRentalAlreadyRated     = apperror.Conflict("rental already rated")
	ErrRatingClothingMismatch = apperror.Invalid("clothing does not match the rental")
	ErrNotRatingAuthor        = apperror.Forbidden("only the author can delete this rating")

	ErrReportNotFound           = apperror.NotFound("report not found")
	ErrReportTypeRequired       = apperror.Invalid("report type is required")
	ErrReportReasonRequired     = apperror.Invalid("report reason is required")
	ErrReportedUserRequired     = apperror.Invalid("reported user is required")
	ErrReportedClothingRequired = apperror.Invalid("reported clothing is required")
	ErrInvalidReportStatus      = apperror.Invalid("invalid report status")

	ErrEmailTaken         = apperror.Conflict("email already registered")
	ErrUserHasHistory     = apperror.Conflict("user has rentals, ratings or reports and cannot be deleted")
	ErrInvalidProfileType = apperror.Invalid("profile type must be Owner, Customer or Admin")
)

// storageError maps a repository error: common.ErrNotFound becomes
// notFound, anything else is wrapped as a database failure.
func storageError(err error, notFound *apperror.AppError) error {
	if notFound != nil && errors.Is(err, common.ErrNotFound) {
		return notFound
	}
	return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "storage failure")
}

// deleteError is storageError for removals, where rows still referenced
// elsewhere surface as the conflict given.
func deleteError(err error, notFound, hasDependents *apperror.AppError) error {
	if errors.Is(err, common.ErrHasDependents) {
		return hasDependents
	}
	return storageError(err, notFound)
}

func invalid(err error) error {
	return apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
}
