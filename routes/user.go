package routes

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"staynest-server/models"
	"staynest-server/storage"
	"staynest-server/utils"

	"github.com/MicahParks/keyfunc"
	"github.com/golang-jwt/jwt/v4"
	"github.com/kataras/iris/v12"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slices"
)

type RegisterUserInput struct {
	FirstName string `json:"firstName" validate:"required,max=256"`
	LastName  string `json:"lastName" validate:"required,max=256"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,max=256"`
	Role      string `json:"role"`
}

type LoginUserInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleUserInput struct {
	IdentityToken string `json:"identityToken" validate:"required"`
}

func Register(ctx iris.Context) {
	var userInput RegisterUserInput
	err := ctx.ReadJSON(&userInput)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	// Admins are promoted out of band, never self-registered.
	role := userInput.Role
	if role == "" {
		role = models.RoleGuest
	}
	if !slices.Contains([]string{models.RoleGuest, models.RoleHost}, role) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "role must be guest or host", ctx)
		return
	}

	var newUser models.User
	userExists, userExistsErr := getAndHandleUserExists(&newUser, userInput.Email)
	if userExistsErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	if userExists {
		utils.CreateEmailAlreadyRegistered(ctx)
		return
	}

	hashedPassword, hashErr := hashAndSaltPassword(userInput.Password)
	if hashErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	newUser = models.User{
		FirstName: userInput.FirstName,
		LastName:  userInput.LastName,
		Email:     strings.ToLower(userInput.Email),
		Password:  hashedPassword,
		Role:      role,
	}

	if err := storage.DB.Create(&newUser).Error; err != nil {
		utils.HandleWriteError(err, ctx)
		return
	}

	returnUser(newUser, ctx)
}

func Login(ctx iris.Context) {
	var userInput LoginUserInput
	err := ctx.ReadJSON(&userInput)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var existingUser models.User
	errorMsg := "Invalid email or password."
	userExists, userExistsErr := getAndHandleUserExists(&existingUser, userInput.Email)
	if userExistsErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	if !userExists {
		utils.CreateError(iris.StatusUnauthorized, "Credentials Error", errorMsg, ctx)
		return
	}

	if existingUser.SocialLogin {
		utils.CreateError(iris.StatusUnauthorized, "Credentials Error", "Social Login Account", ctx)
		return
	}

	passwordErr := bcrypt.CompareHashAndPassword([]byte(existingUser.Password), []byte(userInput.Password))
	if passwordErr != nil {
		utils.CreateError(iris.StatusUnauthorized, "Credentials Error", errorMsg, ctx)
		return
	}

	returnUser(existingUser, ctx)
}

// GoogleLoginOrSignUp verifies a Google ID token against Google's published
// JWKS and signs the user in, creating the account on first sight.
func GoogleLoginOrSignUp(ctx iris.Context) {
	var userInput GoogleUserInput
	err := ctx.ReadJSON(&userInput)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	res, httpErr := http.Get("https://www.googleapis.com/oauth2/v3/certs")
	if httpErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	defer res.Body.Close()

	body, bodyErr := io.ReadAll(res.Body)
	if bodyErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	jwks, jwksErr := keyfunc.NewJSON(body)
	if jwksErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	token, tokenErr := jwt.Parse(userInput.IdentityToken, jwks.Keyfunc)
	if tokenErr != nil || !token.Valid {
		utils.CreateError(iris.StatusUnauthorized, "Unauthorized", "Invalid identity token.", ctx)
		return
	}

	claims := token.Claims.(jwt.MapClaims)
	email := fmt.Sprint(claims["email"])
	if email == "" || email == "<nil>" {
		utils.CreateError(iris.StatusUnauthorized, "Unauthorized", "Identity token has no email.", ctx)
		return
	}

	var user models.User
	userExists, userExistsErr := getAndHandleUserExists(&user, email)
	if userExistsErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	if !userExists {
		user = models.User{
			FirstName:      fmt.Sprint(claims["given_name"]),
			LastName:       fmt.Sprint(claims["family_name"]),
			Email:          strings.ToLower(email),
			SocialLogin:    true,
			SocialProvider: "Google",
			Role:           models.RoleGuest,
		}
		if err := storage.DB.Create(&user).Error; err != nil {
			utils.HandleWriteError(err, ctx)
			return
		}

		returnUser(user, ctx)
		return
	}

	if user.SocialLogin && user.SocialProvider == "Google" {
		returnUser(user, ctx)
		return
	}

	utils.CreateEmailAlreadyRegistered(ctx)
}

// SearchUsers allows searching users by name or email (auth required)
func SearchUsers(ctx iris.Context) {
	q := ctx.URLParamDefault("q", "")
	limit := ctx.URLParamIntDefault("limit", 20)
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	if len(q) < 1 {
		ctx.JSON(iris.Map{"success": true, "users": []interface{}{}})
		return
	}
	var users []models.User
	search := "%" + q + "%"
	storage.DB.Limit(limit).
		Where("lower(first_name) LIKE lower(?) OR lower(last_name) LIKE lower(?) OR lower(email) LIKE lower(?)", search, search, search).
		Select("id, first_name, last_name, email, role").
		Find(&users)
	ctx.JSON(iris.Map{"success": true, "users": users})
}

func GetUser(ctx iris.Context) {
	params := ctx.Params()
	id := params.Get("id")

	var user models.User
	if err := storage.DB.Preload("Properties").First(&user, id).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	ctx.JSON(user)
}

func getAndHandleUserExists(user *models.User, email string) (exists bool, err error) {
	userExistsQuery := storage.DB.Where("email = ?", strings.ToLower(email)).Limit(1).Find(&user)

	if userExistsQuery.Error != nil {
		return false, userExistsQuery.Error
	}

	return userExistsQuery.RowsAffected > 0, nil
}

func hashAndSaltPassword(password string) (hashedPassword string, err error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(bytes), nil
}

func returnUser(user models.User, ctx iris.Context) {
	tokenPair, tokenErr := utils.CreateTokenPair(user.ID)
	if tokenErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"ID":           user.ID,
		"firstName":    user.FirstName,
		"lastName":     user.LastName,
		"email":        user.Email,
		"phoneNumber":  user.PhoneNumber,
		"role":         user.Role,
		"accessToken":  string(tokenPair.AccessToken),
		"refreshToken": string(tokenPair.RefreshToken),
	})
}
