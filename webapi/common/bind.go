package common

import (
	"encoding/json"
	"mime/multipart"

	"github.com/amirasaad/onboarding/pkg/domain/registration"
	"github.com/amirasaad/onboarding/pkg/validation"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// BindAndValidate parses the JSON body into T and validates it. On failure
// it writes the error response and returns a nil *T together with the
// result of writing that response.
func BindAndValidate[T any](c *fiber.Ctx, validate *validator.Validate) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	return validated(c, validate, &input)
}

// BindPart decodes the JSON multipart part named part into T and validates
// it. Plain JSON bodies are accepted too.
func BindPart[T any](c *fiber.Ctx, validate *validator.Validate, part string) (*T, error) {
	if c.Is("json") {
		return BindAndValidate[T](c, validate)
	}
	raw := c.FormValue(part)
	if raw == "" {
		return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Required part '"+part+"' is not present")
	}
	var input T
	if err := json.Unmarshal([]byte(raw), &input); err != nil {
		return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	return validated(c, validate, &input)
}

func validated[T any](c *fiber.Ctx, validate *validator.Validate, input *T) (*T, error) {
	if err := validate.Struct(input); err != nil {
		if fields := validation.FieldErrors(err); fields != nil {
			return nil, ValidationErrorJSON(c, fields)
		}
		return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, err.Error())
	}
	return input, nil
}

// FormUpload opens the multipart file named field. It returns a nil upload
// when the request carries no such file. The returned close func is never
// nil.
func FormUpload(c *fiber.Ctx, field string) (*registration.Upload, func(), error) {
	noop := func() {}
	form, err := c.MultipartForm()
	if err != nil {
		return nil, noop, nil
	}
	files := form.File[field]
	if len(files) == 0 {
		return nil, noop, nil
	}
	return OpenUpload(files[0])
}

// OpenUpload wraps a multipart file header as a registration.Upload.
func OpenUpload(fh *multipart.FileHeader) (*registration.Upload, func(), error) {
	f, err := fh.Open()
	if err != nil {
		return nil, func() {}, err
	}
	return &registration.Upload{
		Content:      f,
		OriginalName: fh.Filename,
		ContentType:  fh.Header.Get(fiber.HeaderContentType),
		Size:         fh.Size,
	}, func() { _ = f.Close() }, nil
}
