package routes

import (
	"time"

	"staynest-server/models"
	"staynest-server/storage"
	"staynest-server/utils"

	"github.com/kataras/iris/v12"
	"golang.org/x/exp/slices"
)

type CreateBookingInput struct {
	PropertyID uint   `json:"propertyID" validate:"required"`
	StartDate  string `json:"startDate" validate:"required"` // YYYY-MM-DD
	EndDate    string `json:"endDate" validate:"required"`   // YYYY-MM-DD
	NumGuests  int    `json:"numGuests" validate:"omitempty,min=1"`
}

type UpdateBookingStatusInput struct {
	Status string `json:"status" validate:"required"`
}

const bookingDateLayout = "2006-01-02"

// overlaps reports whether two half-open date ranges intersect.
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

func CreateBooking(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	var input CreateBookingInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	startDate, startErr := time.Parse(bookingDateLayout, input.StartDate)
	endDate, endErr := time.Parse(bookingDateLayout, input.EndDate)
	if startErr != nil || endErr != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "dates must be YYYY-MM-DD", ctx)
		return
	}

	var property models.Property
	if err := storage.DB.First(&property, input.PropertyID).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	if property.OwnerID == userID {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "hosts cannot book their own listing", ctx)
		return
	}

	numGuests := input.NumGuests
	if numGuests == 0 {
		numGuests = 1
	}
	if numGuests > property.MaxGuests {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "party exceeds the listing capacity", ctx)
		return
	}

	// Reject requests that collide with a stay already on the calendar.
	var conflicting int64
	if err := storage.DB.Model(&models.Booking{}).
		Where("property_id = ? AND status IN ('pending','confirmed')", property.ID).
		Where("start_date < ? AND ? < end_date", endDate, startDate).
		Count(&conflicting).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if conflicting > 0 {
		utils.CreateError(iris.StatusConflict, "Conflict", "property is already booked for those dates", ctx)
		return
	}

	booking := models.Booking{
		PropertyID: property.ID,
		UserID:     userID,
		StartDate:  startDate,
		EndDate:    endDate,
		NumGuests:  numGuests,
		Status:     models.BookingStatusPending,
	}
	booking.TotalPrice = float64(booking.Nights()) * property.PricePerNight

	if err := storage.DB.Create(&booking).Error; err != nil {
		utils.HandleWriteError(err, ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(booking)
}

// ListMyBookings returns the authenticated user's bookings, newest first.
func ListMyBookings(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	var bookings []models.Booking
	if err := storage.DB.Where("user_id = ?", userID).
		Preload("Property").
		Preload("Property.Location").
		Preload("Payment").
		Order("id DESC").
		Find(&bookings).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"success": true, "bookings": bookings})
}

// ListPropertyBookings returns every booking of a listing to its owner.
func ListPropertyBookings(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	propertyID, err := ctx.Params().GetUint("id")
	if err != nil {
		ctx.StatusCode(iris.StatusBadRequest)
		return
	}

	var property models.Property
	if dbErr := storage.DB.First(&property, propertyID).Error; dbErr != nil {
		utils.CreateNotFound(ctx)
		return
	}

	if property.OwnerID != userID {
		utils.CreateForbidden(ctx)
		return
	}

	var bookings []models.Booking
	if dbErr := storage.DB.Where("property_id = ?", propertyID).
		Preload("User").
		Order("start_date").
		Find(&bookings).Error; dbErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"success": true, "bookings": bookings})
}

// UpdateBookingStatus drives the booking through its lifecycle. Hosts confirm
// or complete stays on their own listings; guests may only cancel their own.
func UpdateBookingStatus(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	id, err := ctx.Params().GetUint("id")
	if err != nil {
		ctx.StatusCode(iris.StatusBadRequest)
		return
	}

	var input UpdateBookingStatusInput
	if readErr := ctx.ReadJSON(&input); readErr != nil {
		utils.HandleValidationErrors(readErr, ctx)
		return
	}

	if !slices.Contains(models.BookingStatuses, input.Status) {
		utils.CreateError(iris.StatusUnprocessableEntity, "Domain Check Violation", "unknown booking status", ctx)
		return
	}

	var booking models.Booking
	if dbErr := storage.DB.Preload("Property").First(&booking, id).Error; dbErr != nil {
		utils.CreateNotFound(ctx)
		return
	}

	isGuest := booking.UserID == userID
	isOwner := booking.Property != nil && booking.Property.OwnerID == userID
	switch input.Status {
	case models.BookingStatusCanceled:
		if !isGuest && !isOwner {
			utils.CreateForbidden(ctx)
			return
		}
	case models.BookingStatusConfirmed, models.BookingStatusCompleted:
		if !isOwner {
			utils.CreateForbidden(ctx)
			return
		}
	default:
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "bookings cannot return to pending", ctx)
		return
	}

	if !booking.CanTransitionTo(input.Status) {
		utils.CreateError(iris.StatusConflict, "Conflict",
			"cannot move booking from "+booking.Status+" to "+input.Status, ctx)
		return
	}

	booking.Status = input.Status
	if saveErr := storage.DB.Save(&booking).Error; saveErr != nil {
		utils.HandleWriteError(saveErr, ctx)
		return
	}

	ctx.JSON(booking)
}
