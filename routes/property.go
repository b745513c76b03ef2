package routes

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"staynest-server/models"
	"staynest-server/storage"
	"staynest-server/utils"

	"github.com/kataras/iris/v12"
	"gorm.io/datatypes"
)

type CreatePropertyInput struct {
	Name           string   `json:"name" validate:"required,max=256"`
	Description    string   `json:"description"`
	PropertyTypeID uint     `json:"propertyTypeID" validate:"required"`
	City           string   `json:"city" validate:"required"`
	State          string   `json:"state"`
	Country        string   `json:"country" validate:"required"`
	Zip            string   `json:"zip"`
	PricePerNight  float64  `json:"pricePerNight" validate:"required,gt=0"`
	MaxGuests      int      `json:"maxGuests" validate:"omitempty,min=1"`
	Images         []string `json:"images"`
	AmenityIDs     []uint   `json:"amenityIDs"`
}

type UpdatePropertyInput struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	PricePerNight *float64 `json:"pricePerNight"`
	MaxGuests     *int     `json:"maxGuests"`
	Images        []string `json:"images"`
}

func propertyCacheKey(id uint) string {
	return fmt.Sprintf("property:%d", id)
}

func invalidatePropertyCache(id uint) {
	if storage.Redis != nil {
		storage.Redis.Del(context.Background(), propertyCacheKey(id))
	}
}

func CreateProperty(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	var input CreatePropertyInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	// Reuse an existing location row for the same address, otherwise the
	// lookup table would fill with duplicates.
	location := models.Location{City: input.City, State: input.State, Country: input.Country, Zip: input.Zip}
	var existingLocation models.Location
	query := storage.DB.Where("city = ? AND country = ? AND zip = ?", input.City, input.Country, input.Zip).
		Limit(1).Find(&existingLocation)
	if query.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if query.RowsAffected > 0 {
		location = existingLocation
	} else if err := storage.DB.Create(&location).Error; err != nil {
		utils.HandleWriteError(err, ctx)
		return
	}

	var amenities []models.Amenity
	if len(input.AmenityIDs) > 0 {
		if err := storage.DB.Find(&amenities, input.AmenityIDs).Error; err != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
		if len(amenities) != len(input.AmenityIDs) {
			utils.CreateError(iris.StatusBadRequest, "Validation Error", "unknown amenity id", ctx)
			return
		}
	}

	images := input.Images
	if images == nil {
		images = []string{}
	}
	imagesJSON, _ := json.Marshal(images)

	maxGuests := input.MaxGuests
	if maxGuests == 0 {
		maxGuests = 1
	}

	property := models.Property{
		OwnerID:        userID,
		Name:           input.Name,
		Description:    input.Description,
		LocationID:     location.ID,
		PropertyTypeID: input.PropertyTypeID,
		PricePerNight:  input.PricePerNight,
		MaxGuests:      maxGuests,
		Images:         datatypes.JSON(imagesJSON),
		Amenities:      amenities,
	}

	if err := storage.DB.Create(&property).Error; err != nil {
		utils.HandleWriteError(err, ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(property)
}

func GetProperty(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		ctx.StatusCode(iris.StatusBadRequest)
		return
	}

	// Serve from cache when possible; listings change rarely, bookings often.
	if storage.Redis != nil {
		if cached, cacheErr := storage.Redis.Get(context.Background(), propertyCacheKey(id)).Result(); cacheErr == nil {
			ctx.ContentType("application/json")
			ctx.WriteString(cached)
			return
		}
	}

	var property models.Property
	if dbErr := storage.DB.
		Preload("Location").
		Preload("PropertyType").
		Preload("Amenities").
		Preload("Reviews").
		First(&property, id).Error; dbErr != nil {
		utils.CreateNotFound(ctx)
		return
	}

	if storage.Redis != nil {
		if payload, marshalErr := json.Marshal(&property); marshalErr == nil {
			storage.Redis.Set(context.Background(), propertyCacheKey(id), string(payload), 10*time.Minute)
		}
	}

	ctx.JSON(property)
}

func UpdateProperty(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	id, err := ctx.Params().GetUint("id")
	if err != nil {
		ctx.StatusCode(iris.StatusBadRequest)
		return
	}

	var property models.Property
	if dbErr := storage.DB.First(&property, id).Error; dbErr != nil {
		utils.CreateNotFound(ctx)
		return
	}

	if property.OwnerID != userID {
		utils.CreateForbidden(ctx)
		return
	}

	var input UpdatePropertyInput
	if readErr := ctx.ReadJSON(&input); readErr != nil {
		utils.HandleValidationErrors(readErr, ctx)
		return
	}

	if input.Name != nil {
		property.Name = *input.Name
	}
	if input.Description != nil {
		property.Description = *input.Description
	}
	if input.PricePerNight != nil {
		property.PricePerNight = *input.PricePerNight
	}
	if input.MaxGuests != nil {
		property.MaxGuests = *input.MaxGuests
	}
	if input.Images != nil {
		imagesJSON, _ := json.Marshal(input.Images)
		property.Images = datatypes.JSON(imagesJSON)
	}

	if saveErr := storage.DB.Save(&property).Error; saveErr != nil {
		utils.HandleWriteError(saveErr, ctx)
		return
	}

	invalidatePropertyCache(property.ID)
	ctx.JSON(property)
}

// DeleteProperty removes a listing. The RESTRICT constraint on bookings makes
// the database refuse when reservations still reference it.
func DeleteProperty(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	id, err := ctx.Params().GetUint("id")
	if err != nil {
		ctx.StatusCode(iris.StatusBadRequest)
		return
	}

	var property models.Property
	if dbErr := storage.DB.First(&property, id).Error; dbErr != nil {
		utils.CreateNotFound(ctx)
		return
	}

	if property.OwnerID != userID {
		utils.CreateForbidden(ctx)
		return
	}

	var bookingCount int64
	if countErr := storage.DB.Model(&models.Booking{}).
		Where("property_id = ?", property.ID).Count(&bookingCount).Error; countErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if bookingCount > 0 {
		utils.CreateError(iris.StatusConflict, "Referential Integrity Violation",
			"property has bookings and cannot be deleted", ctx)
		return
	}

	if delErr := storage.DB.Delete(&property).Error; delErr != nil {
		utils.HandleWriteError(delErr, ctx)
		return
	}

	invalidatePropertyCache(property.ID)
	ctx.StatusCode(iris.StatusNoContent)
}

// SetPropertyAmenities replaces the amenity set of a listing.
func SetPropertyAmenities(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	id, err := ctx.Params().GetUint("id")
	if err != nil {
		ctx.StatusCode(iris.StatusBadRequest)
		return
	}

	var input struct {
		AmenityIDs []uint `json:"amenityIDs" validate:"required"`
	}
	if readErr := ctx.ReadJSON(&input); readErr != nil {
		utils.HandleValidationErrors(readErr, ctx)
		return
	}

	var property models.Property
	if dbErr := storage.DB.First(&property, id).Error; dbErr != nil {
		utils.CreateNotFound(ctx)
		return
	}

	if property.OwnerID != userID {
		utils.CreateForbidden(ctx)
		return
	}

	var amenities []models.Amenity
	if len(input.AmenityIDs) > 0 {
		if dbErr := storage.DB.Find(&amenities, input.AmenityIDs).Error; dbErr != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
		if len(amenities) != len(input.AmenityIDs) {
			utils.CreateError(iris.StatusBadRequest, "Validation Error", "unknown amenity id", ctx)
			return
		}
	}

	if assocErr := storage.DB.Model(&property).Association("Amenities").Replace(amenities); assocErr != nil {
		utils.HandleWriteError(assocErr, ctx)
		return
	}

	invalidatePropertyCache(property.ID)
	ctx.JSON(iris.Map{"success": true, "amenities": amenities})
}

// SearchProperties filters listings by city, type and nightly price range.
func SearchProperties(ctx iris.Context) {
	city := ctx.URLParamDefault("city", "")
	typeName := ctx.URLParamDefault("type", "")
	minPrice := ctx.URLParamFloat64Default("minPrice", 0)
	maxPrice := ctx.URLParamFloat64Default("maxPrice", 0)
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("perPage", 20)
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	query := storage.DB.Model(&models.Property{}).
		Preload("Location").
		Preload("PropertyType")

	if city != "" {
		query = query.Joins("JOIN locations ON locations.id = properties.location_id").
			Where("lower(locations.city) = lower(?)", city)
	}
	if typeName != "" {
		query = query.Joins("JOIN property_types ON property_types.id = properties.property_type_id").
			Where("property_types.type_name = ?", typeName)
	}
	if minPrice > 0 {
		query = query.Where("properties.price_per_night >= ?", minPrice)
	}
	if maxPrice > 0 {
		query = query.Where("properties.price_per_night <= ?", maxPrice)
	}

	var total int64
	query.Count(&total)

	var properties []models.Property
	if err := query.Offset((page - 1) * perPage).Limit(perPage).Find(&properties).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.JSONPage(ctx, properties, page, perPage, total)
}

// ListOwnerProperties returns the listings of the authenticated host.
func ListOwnerProperties(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	var properties []models.Property
	if err := storage.DB.Where("owner_id = ?", userID).
		Preload("Location").
		Preload("PropertyType").
		Find(&properties).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"success": true, "properties": properties})
}
