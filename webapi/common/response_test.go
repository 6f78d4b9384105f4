package common_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/amirasaad/onboarding/pkg/domain"
	"github.com/amirasaad/onboarding/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorToStatusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.NotFound("missing"), fiber.StatusNotFound},
		{fmt.Errorf("load: %w", domain.NotFound("missing")), fiber.StatusNotFound},
		{domain.InvalidInput("bad"), fiber.StatusBadRequest},
		{domain.InvalidState("done"), fiber.StatusBadRequest},
		{domain.ErrValidation, fiber.StatusBadRequest},
		{domain.ErrAlreadyExists, fiber.StatusConflict},
		{fiber.ErrRequestEntityTooLarge, fiber.StatusRequestEntityTooLarge},
		{errors.New("disk on fire"), fiber.StatusInternalServerError},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, common.ErrorToStatusCode(tc.err), tc.err.Error())
	}
}

func TestErrorJSON_HidesInternalErrors(t *testing.T) {
	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return common.ErrorJSON(c, errors.New("pq: connection refused"))
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return common.ErrorJSON(c, domain.NotFound("Account request not found with id: X"))
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/boom", nil))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint: errcheck
	var body common.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Internal Server Error", body.Error)
	assert.Equal(t, "An unexpected error occurred", body.Message)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/missing", nil))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint: errcheck
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, fiber.StatusNotFound, body.Status)
	assert.Equal(t, "Account request not found with id: X", body.Message)
	assert.False(t, body.Timestamp.IsZero())
}
