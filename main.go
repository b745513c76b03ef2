package main

import (
	"fmt"
	"log"
	"os"

	"staynest-server/routes"
	"staynest-server/storage"
	"staynest-server/utils"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

func main() {
	godotenv.Load()
	storage.InitializeDB()
	storage.InitializeRedis()

	app := iris.New()
	app.Validator = validator.New()

	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(iris.Compression)

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifier.WithDefaultBlocklist()
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	refreshTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("REFRESH_TOKEN_SECRET")))
	refreshTokenVerifier.WithDefaultBlocklist()
	refreshTokenVerifierMiddleware := refreshTokenVerifier.Verify(func() interface{} {
		return new(jwt.Claims)
	})

	refreshTokenVerifier.Extractors = append(refreshTokenVerifier.Extractors, func(ctx iris.Context) string {
		var tokenInput utils.RefreshTokenInput
		err := ctx.ReadJSON(&tokenInput)
		if err != nil {
			return ""
		}

		return tokenInput.RefreshToken
	})

	user := app.Party("/api/user")
	{
		user.Post("/register", routes.Register)
		user.Post("/login", routes.Login)
		user.Post("/google", routes.GoogleLoginOrSignUp)
		user.Get("/search", accessTokenVerifierMiddleware, routes.SearchUsers)
		user.Get("/{id}", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.GetUser)
	}

	properties := app.Party("/api/properties")
	{
		properties.Get("/search", routes.SearchProperties)
		properties.Get("/{id:uint}", routes.GetProperty)
		properties.Get("/{id:uint}/reviews", routes.ListPropertyReviews)
		properties.Post("/{id:uint}/reviews", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.CreatePropertyReview)
		properties.Get("/{id:uint}/bookings", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.ListPropertyBookings)

		properties.Post("/", accessTokenVerifierMiddleware, utils.HostOnlyMiddleware, routes.CreateProperty)
		properties.Get("/mine", accessTokenVerifierMiddleware, utils.HostOnlyMiddleware, routes.ListOwnerProperties)
		properties.Patch("/{id:uint}", accessTokenVerifierMiddleware, utils.HostOnlyMiddleware, routes.UpdateProperty)
		properties.Put("/{id:uint}/amenities", accessTokenVerifierMiddleware, utils.HostOnlyMiddleware, routes.SetPropertyAmenities)
		properties.Delete("/{id:uint}", accessTokenVerifierMiddleware, utils.HostOnlyMiddleware, routes.DeleteProperty)
	}

	bookings := app.Party("/api/bookings", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware)
	{
		bookings.Post("/", routes.CreateBooking)
		bookings.Get("/mine", routes.ListMyBookings)
		bookings.Patch("/{id:uint}/status", routes.UpdateBookingStatus)
		bookings.Get("/{id:uint}/payment", routes.GetBookingPayment)
	}

	payments := app.Party("/api/payments", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware)
	{
		payments.Post("/", routes.CreatePayment)
		payments.Get("/methods", routes.ListPaymentMethods)
		payments.Post("/methods", routes.CreatePaymentMethod)
		payments.Delete("/methods/{id:uint}", routes.DeletePaymentMethod)
	}

	messages := app.Party("/api/messages", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware)
	{
		messages.Post("/", routes.SendMessage)
		messages.Get("/inbox", routes.Inbox)
		messages.Get("/conversation/{userID:uint}", routes.Conversation)
		messages.Patch("/{id:uint}/read", routes.MarkMessageRead)
	}

	reviews := app.Party("/api/reviews", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware)
	{
		reviews.Delete("/{id:uint}", routes.DeleteReview)
	}

	lookups := app.Party("/api/lookups")
	{
		lookups.Get("/locations", routes.ListLocations)
		lookups.Get("/property-types", routes.ListPropertyTypes)
		lookups.Get("/amenities", routes.ListAmenities)
		lookups.Post("/property-types", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware, routes.CreatePropertyType)
		lookups.Post("/amenities", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware, routes.CreateAmenity)
	}

	admin := app.Party("/api/admin", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware)
	{
		admin.Get("/users", routes.AdminListUsers)
		admin.Patch("/users/{id:uint}/role", routes.AdminChangeUserRole)
		admin.Get("/bookings", routes.AdminListBookings)
	}

	app.Post("/api/refresh", refreshTokenVerifierMiddleware, utils.RefreshToken)

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	addr := "0.0.0.0:" + port

	fmt.Printf("Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
