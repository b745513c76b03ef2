package routes

import (
	"staynest-server/models"
	"staynest-server/storage"
	"staynest-server/utils"

	"github.com/kataras/iris/v12"
)

type CreateReviewInput struct {
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment"`
	BookingID *uint  `json:"bookingID"`
}

func CreatePropertyReview(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	propertyID, err := ctx.Params().GetUint("id")
	if err != nil {
		ctx.StatusCode(iris.StatusBadRequest)
		return
	}

	var input CreateReviewInput
	if readErr := ctx.ReadJSON(&input); readErr != nil {
		utils.HandleValidationErrors(readErr, ctx)
		return
	}

	var property models.Property
	if dbErr := storage.DB.First(&property, propertyID).Error; dbErr != nil {
		utils.CreateNotFound(ctx)
		return
	}

	if property.OwnerID == userID {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "hosts cannot review their own listing", ctx)
		return
	}

	review := models.Review{
		PropertyID: property.ID,
		UserID:     userID,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}

	// A review tied to the reviewer's own completed stay counts as verified.
	if input.BookingID != nil {
		var booking models.Booking
		if dbErr := storage.DB.First(&booking, *input.BookingID).Error; dbErr != nil {
			utils.CreateError(iris.StatusConflict, "Referential Integrity Violation", "booking not found", ctx)
			return
		}
		if booking.UserID != userID || booking.PropertyID != property.ID {
			utils.CreateForbidden(ctx)
			return
		}
		review.BookingID = &booking.ID
		review.IsVerified = booking.Status == models.BookingStatusCompleted
	}

	if dbErr := storage.DB.Create(&review).Error; dbErr != nil {
		utils.HandleWriteError(dbErr, ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(review)
}

func ListPropertyReviews(ctx iris.Context) {
	propertyID, err := ctx.Params().GetUint("id")
	if err != nil {
		ctx.StatusCode(iris.StatusBadRequest)
		return
	}

	var reviews []models.Review
	if dbErr := storage.DB.Where("property_id = ?", propertyID).
		Preload("User").
		Order("id DESC").
		Find(&reviews).Error; dbErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	var avg float64
	storage.DB.Model(&models.Review{}).
		Where("property_id = ?", propertyID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg)

	ctx.JSON(iris.Map{"success": true, "reviews": reviews, "averageRating": avg})
}

func DeleteReview(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	id, err := ctx.Params().GetUint("id")
	if err != nil {
		ctx.StatusCode(iris.StatusBadRequest)
		return
	}

	var review models.Review
	if dbErr := storage.DB.First(&review, id).Error; dbErr != nil {
		utils.CreateNotFound(ctx)
		return
	}

	if review.UserID != userID {
		utils.CreateForbidden(ctx)
		return
	}

	if delErr := storage.DB.Delete(&review).Error; delErr != nil {
		utils.HandleWriteError(delErr, ctx)
		return
	}

	ctx.StatusCode(iris.StatusNoContent)
}
