package routes

import (
	"staynest-server/models"
	"staynest-server/storage"
	"staynest-server/utils"

	"github.com/kataras/iris/v12"
)

// Read side of the lookup tables. Writes are admin-only and registered behind
// the RBAC middleware in main.

func ListLocations(ctx iris.Context) {
	var locations []models.Location
	if err := storage.DB.Order("country, city").Find(&locations).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(iris.Map{"success": true, "locations": locations})
}

func ListPropertyTypes(ctx iris.Context) {
	var types []models.PropertyType
	if err := storage.DB.Order("type_name").Find(&types).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(iris.Map{"success": true, "propertyTypes": types})
}

func ListAmenities(ctx iris.Context) {
	var amenities []models.Amenity
	if err := storage.DB.Order("name").Find(&amenities).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(iris.Map{"success": true, "amenities": amenities})
}

type CreatePropertyTypeInput struct {
	TypeName    string `json:"typeName" validate:"required,max=64"`
	Description string `json:"description"`
}

func CreatePropertyType(ctx iris.Context) {
	var input CreatePropertyTypeInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	propertyType := models.PropertyType{TypeName: input.TypeName, Description: input.Description}
	if err := storage.DB.Create(&propertyType).Error; err != nil {
		utils.HandleWriteError(err, ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(propertyType)
}

type CreateAmenityInput struct {
	Name string `json:"name" validate:"required,max=64"`
	Icon string `json:"icon" validate:"max=64"`
}

func CreateAmenity(ctx iris.Context) {
	var input CreateAmenityInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	amenity := models.Amenity{Name: input.Name, Icon: input.Icon}
	if err := storage.DB.Create(&amenity).Error; err != nil {
		utils.HandleWriteError(err, ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(amenity)
}
