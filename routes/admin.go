package routes

import (
	"staynest-server/models"
	"staynest-server/storage"
	"staynest-server/utils"

	"github.com/kataras/iris/v12"
	"golang.org/x/exp/slices"
)

// AdminListUsers returns a paginated user listing for the dashboard.
func AdminListUsers(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("perPage", 20)
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	var total int64
	storage.DB.Model(&models.User{}).Count(&total)

	var users []models.User
	if err := storage.DB.
		Select("id, first_name, last_name, email, role, created_at").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Order("id").
		Find(&users).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.JSONPage(ctx, users, page, perPage, total)
}

type ChangeRoleInput struct {
	Role string `json:"role" validate:"required"`
}

func AdminChangeUserRole(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		ctx.StatusCode(iris.StatusBadRequest)
		return
	}

	var input ChangeRoleInput
	if readErr := ctx.ReadJSON(&input); readErr != nil {
		utils.HandleValidationErrors(readErr, ctx)
		return
	}

	if !slices.Contains(models.UserRoles, input.Role) {
		utils.CreateError(iris.StatusUnprocessableEntity, "Domain Check Violation", "unknown role", ctx)
		return
	}

	var user models.User
	if dbErr := storage.DB.First(&user, id).Error; dbErr != nil {
		utils.CreateNotFound(ctx)
		return
	}

	user.Role = input.Role
	if saveErr := storage.DB.Save(&user).Error; saveErr != nil {
		utils.HandleWriteError(saveErr, ctx)
		return
	}

	ctx.JSON(iris.Map{"success": true, "user": user})
}

// AdminListBookings exposes all bookings with their payment state.
func AdminListBookings(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("perPage", 20)
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	var total int64
	storage.DB.Model(&models.Booking{}).Count(&total)

	var bookings []models.Booking
	if err := storage.DB.
		Preload("Property").
		Preload("User").
		Preload("Payment").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Order("id DESC").
		Find(&bookings).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.JSONPage(ctx, bookings, page, perPage, total)
}
