// Package validation serves real-time single-field checks.
package validation

import (
	"strings"

	"github.com/amirasaad/onboarding/pkg/metrics"
	fieldrules "github.com/amirasaad/onboarding/pkg/validation"
	"github.com/amirasaad/onboarding/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// FieldRequest names the field to check and the raw value.
type FieldRequest struct {
	FieldName  string `json:"fieldName"`
	FieldValue string `json:"fieldValue"`
}

// Routes registers the validation endpoints on r (the /api/v1 group).
func Routes(r fiber.Router, v *fieldrules.FieldValidator, m *metrics.Metrics) {
	r.Post("/validation/idDocument", ValidateDocument(v, m))
	r.Post("/validation/:field", ValidateField(v, m))
}

// ValidateField checks one field value.
// @Summary Validate a single field
// @Description The body fieldName selects the rule; the path segment is used when it is blank. Always answers 200.
// @Tags validation
// @Accept json
// @Produce json
// @Param field path string true "Field name"
// @Param request body FieldRequest true "Field to validate"
// @Success 200 {object} fieldrules.Result
// @Router /api/v1/validation/{field} [post]
func ValidateField(v *fieldrules.FieldValidator, m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in FieldRequest
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&in); err != nil {
				return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body")
			}
		}
		field := strings.TrimSpace(in.FieldName)
		if field == "" {
			field = c.Params("field")
		}
		res := v.Validate(field, in.FieldValue)
		label := strings.ToLower(field)
		if strings.HasPrefix(res.Message, "Unknown field") {
			label = "unknown"
		}
		m.ObserveValidation(label, res.Valid)
		return c.JSON(res)
	}
}

// ValidateDocument checks an uploaded identity document without storing it.
// @Summary Validate an identity document
// @Tags validation
// @Accept multipart/form-data
// @Produce json
// @Param idDocument formData file true "Identity document"
// @Success 200 {object} fieldrules.Result
// @Router /api/v1/validation/idDocument [post]
func ValidateDocument(v *fieldrules.FieldValidator, m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, closeDoc, err := common.FormUpload(c, "idDocument")
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		defer closeDoc()
		res := v.IDDocument(doc)
		m.ObserveValidation("iddocument", res.Valid)
		return c.JSON(res)
	}
}
