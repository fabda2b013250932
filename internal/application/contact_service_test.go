package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/webatelier/landing-api/pkg/mailer"
)

func TestContactSubmitWithoutDelivery(t *testing.T) {
	// No broker, no mail credentials: the request is accepted and logged.
	svc := NewContactService(nil, mailer.NewMailgun("", "", ""), "owner@example.com", true, newTestLogger())

	err := svc.Submit(context.Background(), ContactInput{
		Name:    "Jane",
		Email:   "jane@example.com",
		Phone:   "+381601234567",
		Message: "Please call me back about a garage extension.",
	})
	assert.NoError(t, err)
}

func TestContactSubmitDisabled(t *testing.T) {
	svc := NewContactService(nil, mailer.NewMailgun("mg.example.com", "key", "noreply@example.com"), "owner@example.com", false, newTestLogger())

	err := svc.Submit(context.Background(), ContactInput{
		Name:    "Jane",
		Email:   "jane@example.com",
		Message: "hello",
	})
	assert.NoError(t, err)
}
