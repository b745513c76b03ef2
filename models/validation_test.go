package models

import (
	"errors"
	"testing"
	"time"
)

func TestUserValidate(t *testing.T) {
	u := User{FirstName: "Ana", LastName: "Ferreira", Email: "ana@example.com", Role: RoleHost}
	if err := u.Validate(); err != nil {
		t.Fatalf("valid user rejected: %v", err)
	}

	u.Role = "superuser"
	if err := u.Validate(); !errors.Is(err, ErrDomainCheckViolation) {
		t.Fatalf("expected domain check violation for unknown role, got %v", err)
	}

	u.Role = RoleGuest
	u.Email = ""
	if err := u.Validate(); !errors.Is(err, ErrNotNullViolation) {
		t.Fatalf("expected not null violation for missing email, got %v", err)
	}
}

func TestPropertyValidate(t *testing.T) {
	p := Property{OwnerID: 1, Name: "Flat", LocationID: 1, PropertyTypeID: 1, PricePerNight: 100}
	if err := p.Validate(); err != nil {
		t.Fatalf("valid property rejected: %v", err)
	}

	for _, price := range []float64{0, -10} {
		p.PricePerNight = price
		if err := p.Validate(); !errors.Is(err, ErrDomainCheckViolation) {
			t.Fatalf("price %v: expected domain check violation, got %v", price, err)
		}
	}

	p.PricePerNight = 100
	p.LocationID = 0
	if err := p.Validate(); !errors.Is(err, ErrNotNullViolation) {
		t.Fatalf("expected not null violation for missing location, got %v", err)
	}
}

func TestBookingValidate(t *testing.T) {
	start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	b := Booking{
		PropertyID: 1,
		UserID:     2,
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, 4),
		TotalPrice: 480,
		Status:     BookingStatusPending,
	}
	if err := b.Validate(); err != nil {
		t.Fatalf("valid booking rejected: %v", err)
	}
	if got := b.Nights(); got != 4 {
		t.Fatalf("expected 4 nights, got %d", got)
	}

	cases := []struct {
		name   string
		mutate func(*Booking)
		want   error
	}{
		{"end equals start", func(b *Booking) { b.EndDate = b.StartDate }, ErrDomainCheckViolation},
		{"end before start", func(b *Booking) { b.EndDate = b.StartDate.AddDate(0, 0, -1) }, ErrDomainCheckViolation},
		{"negative total", func(b *Booking) { b.TotalPrice = -1 }, ErrDomainCheckViolation},
		{"unknown status", func(b *Booking) { b.Status = "paused" }, ErrDomainCheckViolation},
		{"missing property", func(b *Booking) { b.PropertyID = 0 }, ErrNotNullViolation},
		{"missing dates", func(b *Booking) { b.StartDate, b.EndDate = time.Time{}, time.Time{} }, ErrNotNullViolation},
	}
	for _, tc := range cases {
		bad := b
		tc.mutate(&bad)
		if err := bad.Validate(); !errors.Is(err, tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestBookingTransitions(t *testing.T) {
	cases := []struct {
		from, to string
		allowed  bool
	}{
		{BookingStatusPending, BookingStatusConfirmed, true},
		{BookingStatusPending, BookingStatusCanceled, true},
		{BookingStatusPending, BookingStatusCompleted, false},
		{BookingStatusConfirmed, BookingStatusCompleted, true},
		{BookingStatusConfirmed, BookingStatusCanceled, true},
		{BookingStatusConfirmed, BookingStatusPending, false},
		{BookingStatusCanceled, BookingStatusConfirmed, false},
		{BookingStatusCompleted, BookingStatusCanceled, false},
	}
	for _, tc := range cases {
		b := Booking{Status: tc.from}
		if got := b.CanTransitionTo(tc.to); got != tc.allowed {
			t.Errorf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.allowed, got)
		}
	}
}

func TestReviewRatingBounds(t *testing.T) {
	for _, rating := range []int{0, 6, -1} {
		r := Review{PropertyID: 1, UserID: 2, Rating: rating}
		if err := r.Validate(); !errors.Is(err, ErrDomainCheckViolation) {
			t.Errorf("rating %d: expected domain check violation, got %v", rating, err)
		}
	}
	for rating := 1; rating <= 5; rating++ {
		r := Review{PropertyID: 1, UserID: 2, Rating: rating}
		if err := r.Validate(); err != nil {
			t.Errorf("rating %d: valid review rejected: %v", rating, err)
		}
	}
}

func TestPaymentMethodValidate(t *testing.T) {
	pm := PaymentMethod{UserID: 1, MethodType: MethodCreditCard}
	if err := pm.Validate(); err != nil {
		t.Fatalf("valid payment method rejected: %v", err)
	}

	pm.MethodType = "cash"
	if err := pm.Validate(); !errors.Is(err, ErrDomainCheckViolation) {
		t.Fatalf("expected domain check violation for unknown method type, got %v", err)
	}
}

func TestPaymentValidate(t *testing.T) {
	p := Payment{BookingID: 1, PaymentMethodID: 1, Amount: 480, Status: PaymentStatusCompleted}
	if err := p.Validate(); err != nil {
		t.Fatalf("valid payment rejected: %v", err)
	}

	p.Amount = 0
	if err := p.Validate(); !errors.Is(err, ErrDomainCheckViolation) {
		t.Fatalf("expected domain check violation for zero amount, got %v", err)
	}
}

func TestMessageValidate(t *testing.T) {
	m := Message{SenderID: 1, RecipientID: 2, Body: "hello"}
	if err := m.Validate(); err != nil {
		t.Fatalf("valid message rejected: %v", err)
	}

	m.RecipientID = 1
	if err := m.Validate(); !errors.Is(err, ErrDomainCheckViolation) {
		t.Fatalf("expected domain check violation for self-message, got %v", err)
	}

	m.RecipientID = 2
	m.Body = "  "
	if err := m.Validate(); !errors.Is(err, ErrNotNullViolation) {
		t.Fatalf("expected not null violation for empty body, got %v", err)
	}
}
