package worker

import (
	"testing"

	"github.com/scentlab/scentlab/internal/models"
)

func TestResolveConfirmationReceiverNilOrder(t *testing.T) {
	email, locale := resolveConfirmationReceiver(nil, &models.User{Email: "user@example.com"})
	if email != "" || locale != "" {
		t.Fatalf("expected empty receiver for nil order, got %q / %q", email, locale)
	}
}

func TestResolveConfirmationReceiverPrefersCheckoutEmail(t *testing.T) {
	order := &models.Order{CustomerEmail: "  gift@example.com  "}
	user := &models.User{Email: "account@example.com", Locale: "vi-VN"}

	email, locale := resolveConfirmationReceiver(order, user)
	if email != "gift@example.com" {
		t.Fatalf("receiver want gift@example.com got %q", email)
	}
	if locale != "vi-VN" {
		t.Fatalf("locale want vi-VN got %q", locale)
	}
}

func TestResolveConfirmationReceiverFallsBackToAccount(t *testing.T) {
	order := &models.Order{CustomerEmail: "   "}
	user := &models.User{Email: " account@example.com ", Locale: "en-US"}

	email, locale := resolveConfirmationReceiver(order, user)
	if email != "account@example.com" {
		t.Fatalf("receiver want account@example.com got %q", email)
	}
	if locale != "en-US" {
		t.Fatalf("locale want en-US got %q", locale)
	}
}

func TestResolveConfirmationReceiverGuestWithoutEmail(t *testing.T) {
	order := &models.Order{OrderNo: "SL20260101XXXX"}

	email, locale := resolveConfirmationReceiver(order, nil)
	if email != "" {
		t.Fatalf("guest order without email should have no receiver, got %q", email)
	}
	if locale != "" {
		t.Fatalf("locale want empty got %q", locale)
	}
}
