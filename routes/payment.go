package routes

import (
	"time"

	"staynest-server/models"
	"staynest-server/storage"
	"staynest-server/utils"

	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

type CreatePaymentMethodInput struct {
	MethodType string `json:"methodType" validate:"required"`
	Label      string `json:"label" validate:"max=256"`
	IsDefault  bool   `json:"isDefault"`
}

type CreatePaymentInput struct {
	BookingID       uint   `json:"bookingID" validate:"required"`
	PaymentMethodID uint   `json:"paymentMethodID" validate:"required"`
	TransactionID   string `json:"transactionID" validate:"required,max=64"`
}

func CreatePaymentMethod(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	var input CreatePaymentMethodInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	method := models.PaymentMethod{
		UserID:     userID,
		MethodType: input.MethodType,
		Label:      input.Label,
		IsDefault:  input.IsDefault,
	}

	err := storage.DB.Transaction(func(tx *gorm.DB) error {
		if input.IsDefault {
			// Only one default per user.
			if err := tx.Model(&models.PaymentMethod{}).
				Where("user_id = ?", userID).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&method).Error
	})
	if err != nil {
		utils.HandleWriteError(err, ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(method)
}

func ListPaymentMethods(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	var methods []models.PaymentMethod
	if err := storage.DB.Where("user_id = ?", userID).Order("is_default DESC, id").Find(&methods).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"success": true, "paymentMethods": methods})
}

func DeletePaymentMethod(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	id, err := ctx.Params().GetUint("id")
	if err != nil {
		ctx.StatusCode(iris.StatusBadRequest)
		return
	}

	var method models.PaymentMethod
	if dbErr := storage.DB.First(&method, id).Error; dbErr != nil {
		utils.CreateNotFound(ctx)
		return
	}

	if method.UserID != userID {
		utils.CreateForbidden(ctx)
		return
	}

	var inUse int64
	if countErr := storage.DB.Model(&models.Payment{}).
		Where("payment_method_id = ?", method.ID).Count(&inUse).Error; countErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if inUse > 0 {
		utils.CreateError(iris.StatusConflict, "Referential Integrity Violation",
			"payment method has payments and cannot be deleted", ctx)
		return
	}

	if delErr := storage.DB.Delete(&method).Error; delErr != nil {
		utils.HandleWriteError(delErr, ctx)
		return
	}

	ctx.StatusCode(iris.StatusNoContent)
}

// CreatePayment settles a confirmed booking. The amount is taken from the
// booking itself, never from the client, and the unique index on booking_id
// turns a double payment into a uniqueness violation.
func CreatePayment(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	var input CreatePaymentInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var booking models.Booking
	if err := storage.DB.First(&booking, input.BookingID).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	if booking.UserID != userID {
		utils.CreateForbidden(ctx)
		return
	}

	if booking.Status != models.BookingStatusConfirmed {
		utils.CreateError(iris.StatusConflict, "Conflict", "only confirmed bookings can be paid", ctx)
		return
	}

	var method models.PaymentMethod
	if err := storage.DB.First(&method, input.PaymentMethodID).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}
	if method.UserID != userID {
		utils.CreateForbidden(ctx)
		return
	}

	now := time.Now().UTC()
	payment := models.Payment{
		BookingID:       booking.ID,
		PaymentMethodID: method.ID,
		Amount:          booking.TotalPrice,
		Status:          models.PaymentStatusCompleted,
		TransactionID:   input.TransactionID,
		PaidAt:          &now,
	}

	if err := storage.DB.Create(&payment).Error; err != nil {
		utils.HandleWriteError(err, ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(payment)
}

func GetBookingPayment(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	bookingID, err := ctx.Params().GetUint("id")
	if err != nil {
		ctx.StatusCode(iris.StatusBadRequest)
		return
	}

	var booking models.Booking
	if dbErr := storage.DB.Preload("Property").First(&booking, bookingID).Error; dbErr != nil {
		utils.CreateNotFound(ctx)
		return
	}

	isOwner := booking.Property != nil && booking.Property.OwnerID == userID
	if booking.UserID != userID && !isOwner {
		utils.CreateForbidden(ctx)
		return
	}

	var payment models.Payment
	if dbErr := storage.DB.Preload("PaymentMethod").Where("booking_id = ?", bookingID).First(&payment).Error; dbErr != nil {
		utils.CreateNotFound(ctx)
		return
	}

	ctx.JSON(payment)
}
