// Package account serves the account request endpoints.
package account

import (
	"mime"

	registrationsvc "github.com/amirasaad/onboarding/pkg/service/registration"
	"github.com/amirasaad/onboarding/webapi/common"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const (
	requestPart  = "request"
	documentPart = "idDocument"
)

// Routes registers the account endpoints on r, which is expected to be the
// /api/v1 group.
func Routes(r fiber.Router, svc *registrationsvc.Service, validate *validator.Validate) {
	r.Post("/accounts/register", RegisterOrSubmit(svc, validate))
	r.Post("/accounts/draft", SaveDraft(svc, validate))
	r.Put("/accounts/:requestId", UpdateDraft(svc, validate))
	r.Get("/accounts/:requestId", GetAccountRequest(svc))
	r.Get("/accounts/:requestId/document", GetDocument(svc))
	r.Get("/account-types", AccountTypes(svc))
}

// RegisterOrSubmit registers a new account or submits an existing draft.
// @Summary Register an account or submit a draft
// @Description Without requestId a new SUBMITTED request is created and the ID document is mandatory. With requestId the stored draft is submitted, reusing its document when none is uploaded.
// @Tags accounts
// @Accept multipart/form-data
// @Produce json
// @Param requestId query string false "Draft request ID"
// @Param request formData string true "AccountRequest JSON"
// @Param idDocument formData file false "Identity document (image or PDF)"
// @Success 200 {object} AccountResponse
// @Success 201 {object} AccountResponse
// @Failure 400 {object} common.ErrorResponse
// @Failure 404 {object} common.ErrorResponse
// @Failure 429 {object} common.ErrorResponse
// @Router /api/v1/accounts/register [post]
func RegisterOrSubmit(svc *registrationsvc.Service, validate *validator.Validate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindPart[AccountRequest](c, validate, requestPart)
		if input == nil {
			return err
		}
		d, err := input.Details()
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		doc, closeDoc, err := common.FormUpload(c, documentPart)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		defer closeDoc()

		intent := registrationsvc.IntentFromRequestID(c.Query("requestId"))
		req, err := svc.SubmitOrRegister(c.UserContext(), intent, d, doc)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		status := fiber.StatusCreated
		if _, draft := intent.RequestID(); draft {
			status = fiber.StatusOK
		}
		return c.Status(status).JSON(NewAccountResponse(req))
	}
}

// SaveDraft saves an incomplete request.
// @Summary Save a draft
// @Description Name, date of birth and address are validated; every other field is optional.
// @Tags accounts
// @Accept multipart/form-data
// @Produce json
// @Param request formData string true "DraftRequest JSON"
// @Param idDocument formData file false "Identity document (image or PDF)"
// @Success 201 {object} AccountResponse
// @Failure 400 {object} common.ErrorResponse
// @Router /api/v1/accounts/draft [post]
func SaveDraft(svc *registrationsvc.Service, validate *validator.Validate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindPart[DraftRequest](c, validate, requestPart)
		if input == nil {
			return err
		}
		d, err := input.Details()
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		doc, closeDoc, err := common.FormUpload(c, documentPart)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		defer closeDoc()

		req, err := svc.SaveDraft(c.UserContext(), d, doc)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(NewAccountResponse(req))
	}
}

// UpdateDraft resumes a draft.
// @Summary Update a draft
// @Tags accounts
// @Accept multipart/form-data
// @Produce json
// @Param requestId path string true "Request ID"
// @Param request formData string true "AccountRequest JSON"
// @Param idDocument formData file false "Replacement identity document"
// @Success 200 {object} AccountResponse
// @Failure 400 {object} common.ErrorResponse
// @Failure 404 {object} common.ErrorResponse
// @Router /api/v1/accounts/{requestId} [put]
func UpdateDraft(svc *registrationsvc.Service, validate *validator.Validate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindPart[AccountRequest](c, validate, requestPart)
		if input == nil {
			return err
		}
		d, err := input.Details()
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		doc, closeDoc, err := common.FormUpload(c, documentPart)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		defer closeDoc()

		req, err := svc.UpdateDraft(c.UserContext(), c.Params("requestId"), d, doc)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return c.JSON(NewAccountResponse(req))
	}
}

// GetAccountRequest returns a request by ID.
// @Summary Get an account request
// @Tags accounts
// @Produce json
// @Param requestId path string true "Request ID"
// @Success 200 {object} AccountResponse
// @Failure 404 {object} common.ErrorResponse
// @Router /api/v1/accounts/{requestId} [get]
func GetAccountRequest(svc *registrationsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, err := svc.GetByRequestID(c.UserContext(), c.Params("requestId"))
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return c.JSON(NewAccountResponse(req))
	}
}

// GetDocument streams the identity document of a request.
// @Summary Download the identity document
// @Tags accounts
// @Produce octet-stream
// @Param requestId path string true "Request ID"
// @Success 200 {file} file
// @Failure 404 {object} common.ErrorResponse
// @Router /api/v1/accounts/{requestId}/document [get]
func GetDocument(svc *registrationsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rc, doc, err := svc.OpenDocument(c.UserContext(), c.Params("requestId"))
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		contentType := doc.MimeType
		if contentType == "" {
			contentType = fiber.MIMEOctetStream
		}
		c.Set(fiber.HeaderContentType, contentType)
		c.Set(fiber.HeaderContentDisposition,
			mime.FormatMediaType("inline", map[string]string{"filename": doc.OriginalName}))
		// fasthttp closes rc once the body is written.
		return c.SendStream(rc)
	}
}

// AccountTypes lists the supported account types.
// @Summary List account types
// @Tags accounts
// @Produce json
// @Success 200 {array} string
// @Router /api/v1/account-types [get]
func AccountTypes(svc *registrationsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		types := svc.AccountTypes()
		out := make([]string, len(types))
		for i, t := range types {
			out[i] = t.String()
		}
		return c.JSON(out)
	}
}
