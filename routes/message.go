package routes

import (
	"time"

	"staynest-server/models"
	"staynest-server/storage"
	"staynest-server/utils"

	"github.com/kataras/iris/v12"
)

type SendMessageInput struct {
	RecipientID uint   `json:"recipientID" validate:"required"`
	Subject     string `json:"subject" validate:"max=256"`
	Body        string `json:"body" validate:"required"`
	BookingID   *uint  `json:"bookingID"`
	ReviewID    *uint  `json:"reviewID"`
}

func SendMessage(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	var input SendMessageInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if input.RecipientID == userID {
		utils.CreateError(iris.StatusUnprocessableEntity, "Domain Check Violation",
			"sender and recipient must differ", ctx)
		return
	}

	var recipient models.User
	if err := storage.DB.First(&recipient, input.RecipientID).Error; err != nil {
		utils.CreateError(iris.StatusConflict, "Referential Integrity Violation", "recipient not found", ctx)
		return
	}

	message := models.Message{
		SenderID:    userID,
		RecipientID: recipient.ID,
		Subject:     input.Subject,
		Body:        input.Body,
	}

	// Optional context rows must exist and involve the sender.
	if input.BookingID != nil {
		var booking models.Booking
		if err := storage.DB.Preload("Property").First(&booking, *input.BookingID).Error; err != nil {
			utils.CreateError(iris.StatusConflict, "Referential Integrity Violation", "booking not found", ctx)
			return
		}
		isOwner := booking.Property != nil && booking.Property.OwnerID == userID
		if booking.UserID != userID && !isOwner {
			utils.CreateForbidden(ctx)
			return
		}
		message.BookingID = &booking.ID
	}
	if input.ReviewID != nil {
		var review models.Review
		if err := storage.DB.First(&review, *input.ReviewID).Error; err != nil {
			utils.CreateError(iris.StatusConflict, "Referential Integrity Violation", "review not found", ctx)
			return
		}
		message.ReviewID = &review.ID
	}

	if err := storage.DB.Create(&message).Error; err != nil {
		utils.HandleWriteError(err, ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(message)
}

// Inbox lists received messages, unread first.
func Inbox(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	var messages []models.Message
	if err := storage.DB.Where("recipient_id = ?", userID).
		Preload("Sender").
		Order("is_read, id DESC").
		Limit(100).
		Find(&messages).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	var unread int64
	storage.DB.Model(&models.Message{}).
		Where("recipient_id = ? AND is_read = false", userID).
		Count(&unread)

	ctx.JSON(iris.Map{"success": true, "messages": messages, "unreadCount": unread})
}

// Conversation lists the two-way message history with another user.
func Conversation(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	otherID, err := ctx.Params().GetUint("userID")
	if err != nil {
		ctx.StatusCode(iris.StatusBadRequest)
		return
	}

	var messages []models.Message
	if dbErr := storage.DB.
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userID, otherID, otherID, userID).
		Order("id DESC").
		Limit(100).
		Find(&messages).Error; dbErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	// reverse to chronological
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	ctx.JSON(iris.Map{"success": true, "messages": messages})
}

func MarkMessageRead(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	id, err := ctx.Params().GetUint("id")
	if err != nil {
		ctx.StatusCode(iris.StatusBadRequest)
		return
	}

	var message models.Message
	if dbErr := storage.DB.First(&message, id).Error; dbErr != nil {
		utils.CreateNotFound(ctx)
		return
	}

	if message.RecipientID != userID {
		utils.CreateForbidden(ctx)
		return
	}

	if !message.IsRead {
		now := time.Now().UTC()
		message.IsRead = true
		message.ReadAt = &now
		if saveErr := storage.DB.Save(&message).Error; saveErr != nil {
			utils.HandleWriteError(saveErr, ctx)
			return
		}
	}

	ctx.JSON(message)
}
