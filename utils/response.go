package utils

import (
	"errors"

	"staynest-server/models"

	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

type PageMeta struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
}

func JSONPage(ctx iris.Context, data interface{}, page, perPage int, total int64) {
	ctx.JSON(iris.Map{
		"data":  data,
		"meta":  PageMeta{Page: page, PerPage: perPage, Total: total},
		"links": iris.Map{},
	})
}

func JSONError(ctx iris.Context, status int, code, message string) {
	ctx.StatusCode(status)
	ctx.JSON(iris.Map{"error": code, "message": message})
}

func CreateError(status int, title string, detail string, ctx iris.Context) {
	ctx.StopWithJSON(status, iris.Map{"title": title, "detail": detail})
}

func CreateInternalServerError(ctx iris.Context) {
	CreateError(iris.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred.", ctx)
}

func CreateNotFound(ctx iris.Context) {
	CreateError(iris.StatusNotFound, "Not Found", "Resource not found.", ctx)
}

func CreateForbidden(ctx iris.Context) {
	CreateError(iris.StatusForbidden, "Forbidden", "You are not allowed to perform this action.", ctx)
}

func CreateEmailAlreadyRegistered(ctx iris.Context) {
	CreateError(iris.StatusConflict, "Conflict", "Email already registered.", ctx)
}

func HandleValidationErrors(err error, ctx iris.Context) {
	CreateError(iris.StatusBadRequest, "Validation Error", err.Error(), ctx)
}

// HandleWriteError maps an insert/update failure onto the schema's violation
// taxonomy: uniqueness and foreign-key failures surface as 409, domain and
// not-null checks as 422, everything else as 500.
func HandleWriteError(err error, ctx iris.Context) {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, models.ErrUniquenessViolation):
		CreateError(iris.StatusConflict, "Uniqueness Violation", err.Error(), ctx)
	case errors.Is(err, gorm.ErrForeignKeyViolated) || errors.Is(err, models.ErrReferentialViolation):
		CreateError(iris.StatusConflict, "Referential Integrity Violation", err.Error(), ctx)
	case errors.Is(err, models.ErrDomainCheckViolation):
		CreateError(iris.StatusUnprocessableEntity, "Domain Check Violation", err.Error(), ctx)
	case errors.Is(err, models.ErrNotNullViolation):
		CreateError(iris.StatusUnprocessableEntity, "Not Null Violation", err.Error(), ctx)
	case errors.Is(err, gorm.ErrRecordNotFound):
		CreateNotFound(ctx)
	default:
		CreateInternalServerError(ctx)
	}
}
