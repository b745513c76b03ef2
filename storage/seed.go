package storage

import (
	"log"
	"time"

	"staynest-server/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Demo fixture literals. Kept as plain builders so tests can assert the data
// set satisfies every schema constraint without a database connection.

func DemoLocations() []models.Location {
	return []models.Location{
		{City: "Lisbon", State: "Lisboa", Country: "Portugal", Zip: "1100-148"},
		{City: "Porto", State: "Porto", Country: "Portugal", Zip: "4000-322"},
	}
}

func DemoPropertyTypes() []models.PropertyType {
	return []models.PropertyType{
		{TypeName: "entire_place", Description: "Guests have the whole place to themselves."},
		{TypeName: "private_room", Description: "A private room in a shared home."},
	}
}

func DemoAmenities() []models.Amenity {
	return []models.Amenity{
		{Name: "wifi", Icon: "wifi-high"},
		{Name: "kitchen", Icon: "cooking-pot"},
		{Name: "washer", Icon: "washing-machine"},
		{Name: "balcony", Icon: "sun"},
	}
}

func DemoUsers() []models.User {
	return []models.User{
		{FirstName: "Ana", LastName: "Ferreira", Email: "ana@staynest.dev", PhoneNumber: "+351912000001", Role: models.RoleHost},
		{FirstName: "Bruno", LastName: "Costa", Email: "bruno@staynest.dev", PhoneNumber: "+351912000002", Role: models.RoleGuest},
		{FirstName: "Clara", LastName: "Mendes", Email: "clara@staynest.dev", Role: models.RoleGuest},
	}
}

// SeedDemoData loads the sample data set: 3 users, 2 properties, 2 bookings,
// 2 payments, 2 reviews, 2 messages, plus the lookup rows they reference.
// Safe to run repeatedly; existing rows are matched by natural key.
func SeedDemoData(db *gorm.DB) error {
	log.Println("Seeding demo data...")

	password, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	var users []models.User
	for _, u := range DemoUsers() {
		u.Password = string(password)
		var existing models.User
		if err := db.Where("email = ?", u.Email).First(&existing).Error; err == gorm.ErrRecordNotFound {
			if err := db.Create(&u).Error; err != nil {
				return err
			}
			existing = u
		} else if err != nil {
			return err
		}
		users = append(users, existing)
	}
	host, guest1, guest2 := users[0], users[1], users[2]

	var locations []models.Location
	for _, l := range DemoLocations() {
		var existing models.Location
		if err := db.Where("city = ? AND zip = ?", l.City, l.Zip).First(&existing).Error; err == gorm.ErrRecordNotFound {
			if err := db.Create(&l).Error; err != nil {
				return err
			}
			existing = l
		} else if err != nil {
			return err
		}
		locations = append(locations, existing)
	}

	var types []models.PropertyType
	for _, pt := range DemoPropertyTypes() {
		var existing models.PropertyType
		if err := db.Where("type_name = ?", pt.TypeName).First(&existing).Error; err == gorm.ErrRecordNotFound {
			if err := db.Create(&pt).Error; err != nil {
				return err
			}
			existing = pt
		} else if err != nil {
			return err
		}
		types = append(types, existing)
	}

	var amenities []models.Amenity
	for _, a := range DemoAmenities() {
		var existing models.Amenity
		if err := db.Where("name = ?", a.Name).First(&existing).Error; err == gorm.ErrRecordNotFound {
			if err := db.Create(&a).Error; err != nil {
				return err
			}
			existing = a
		} else if err != nil {
			return err
		}
		amenities = append(amenities, existing)
	}

	properties := []models.Property{
		{
			OwnerID:        host.ID,
			Name:           "Alfama River View Apartment",
			Description:    "Bright one-bedroom overlooking the Tagus, five minutes from the cathedral.",
			LocationID:     locations[0].ID,
			PropertyTypeID: types[0].ID,
			PricePerNight:  120,
			MaxGuests:      3,
			Images:         datatypes.JSON([]byte(`["https://img.staynest.dev/alfama-1.jpg"]`)),
			Amenities:      []models.Amenity{amenities[0], amenities[1], amenities[3]},
		},
		{
			OwnerID:        host.ID,
			Name:           "Ribeira Cozy Room",
			Description:    "Quiet private room in a shared riverside flat.",
			LocationID:     locations[1].ID,
			PropertyTypeID: types[1].ID,
			PricePerNight:  95,
			MaxGuests:      2,
			Images:         datatypes.JSON([]byte(`["https://img.staynest.dev/ribeira-1.jpg"]`)),
			Amenities:      []models.Amenity{amenities[0], amenities[2]},
		},
	}
	for i, p := range properties {
		var existing models.Property
		if err := db.Where("owner_id = ? AND name = ?", p.OwnerID, p.Name).First(&existing).Error; err == gorm.ErrRecordNotFound {
			if err := db.Create(&p).Error; err != nil {
				return err
			}
			existing = p
		} else if err != nil {
			return err
		}
		properties[i] = existing
	}

	bookings := []models.Booking{
		{
			PropertyID: properties[0].ID,
			UserID:     guest1.ID,
			StartDate:  time.Date(2026, 9, 10, 15, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2026, 9, 14, 11, 0, 0, 0, time.UTC),
			NumGuests:  2,
			TotalPrice: 480,
			Status:     models.BookingStatusConfirmed,
		},
		{
			PropertyID: properties[1].ID,
			UserID:     guest2.ID,
			StartDate:  time.Date(2026, 7, 2, 15, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2026, 7, 4, 11, 0, 0, 0, time.UTC),
			NumGuests:  1,
			TotalPrice: 190,
			Status:     models.BookingStatusCompleted,
		},
	}
	for i, b := range bookings {
		var existing models.Booking
		if err := db.Where("property_id = ? AND user_id = ? AND start_date = ?", b.PropertyID, b.UserID, b.StartDate).
			First(&existing).Error; err == gorm.ErrRecordNotFound {
			if err := db.Create(&b).Error; err != nil {
				return err
			}
			existing = b
		} else if err != nil {
			return err
		}
		bookings[i] = existing
	}

	methods := []models.PaymentMethod{
		{UserID: guest1.ID, MethodType: models.MethodCreditCard, Label: "Visa ending 4242", IsDefault: true},
		{UserID: guest2.ID, MethodType: models.MethodPaypal, Label: "clara@staynest.dev", IsDefault: true},
	}
	for i, pm := range methods {
		var existing models.PaymentMethod
		if err := db.Where("user_id = ? AND method_type = ?", pm.UserID, pm.MethodType).First(&existing).Error; err == gorm.ErrRecordNotFound {
			if err := db.Create(&pm).Error; err != nil {
				return err
			}
			existing = pm
		} else if err != nil {
			return err
		}
		methods[i] = existing
	}

	paidAt1 := time.Date(2026, 8, 30, 9, 12, 0, 0, time.UTC)
	paidAt2 := time.Date(2026, 6, 20, 17, 45, 0, 0, time.UTC)
	payments := []models.Payment{
		{BookingID: bookings[0].ID, PaymentMethodID: methods[0].ID, Amount: 480, Status: models.PaymentStatusCompleted, TransactionID: "txn_9f1c2a", PaidAt: &paidAt1},
		{BookingID: bookings[1].ID, PaymentMethodID: methods[1].ID, Amount: 190, Status: models.PaymentStatusCompleted, TransactionID: "txn_4b7d0e", PaidAt: &paidAt2},
	}
	for _, p := range payments {
		var existing models.Payment
		if err := db.Where("booking_id = ?", p.BookingID).First(&existing).Error; err == gorm.ErrRecordNotFound {
			if err := db.Create(&p).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}

	reviews := []models.Review{
		{PropertyID: properties[1].ID, UserID: guest2.ID, BookingID: &bookings[1].ID, Rating: 5, Comment: "Spotless room and a lovely host.", IsVerified: true},
		{PropertyID: properties[0].ID, UserID: guest1.ID, Rating: 4, Comment: "Great view, stairs are steep."},
	}
	for _, r := range reviews {
		var existing models.Review
		if err := db.Where("property_id = ? AND user_id = ?", r.PropertyID, r.UserID).First(&existing).Error; err == gorm.ErrRecordNotFound {
			if err := db.Create(&r).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}

	messages := []models.Message{
		{SenderID: guest1.ID, RecipientID: host.ID, BookingID: &bookings[0].ID, Subject: "Check-in time", Body: "Hi Ana, could we check in an hour early?"},
		{SenderID: host.ID, RecipientID: guest1.ID, BookingID: &bookings[0].ID, Subject: "Re: Check-in time", Body: "Of course, the apartment will be ready from 14:00.", IsRead: true},
	}
	for _, m := range messages {
		var existing models.Message
		if err := db.Where("sender_id = ? AND recipient_id = ? AND subject = ?", m.SenderID, m.RecipientID, m.Subject).
			First(&existing).Error; err == gorm.ErrRecordNotFound {
			if err := db.Create(&m).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}

	log.Println("Seeding complete.")
	return nil
}
