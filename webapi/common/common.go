// Package common holds the response envelope, problem details and request
// binding shared by every HTTP handler.
package common

import (
	"errors"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/gofiber/fiber/v2"
)

// Response defines the standard API response structure for success cases.
type Response struct {
	Status  int    `json:"status"`         // HTTP status code
	Message string `json:"message"`        // Human-readable explanation
	Data    any    `json:"data,omitempty"` // Response data
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`     // A URI reference that identifies the problem type
	Title    string `json:"title"`              // Short, human-readable summary
	Status   int    `json:"status"`             // HTTP status code
	Detail   string `json:"detail,omitempty"`   // Human-readable explanation
	Instance string `json:"instance,omitempty"` // URI reference that identifies the specific occurrence
	Errors   any    `json:"errors,omitempty"`   // Optional: additional error details
}

// ContentTypeProblem is the media type of ProblemDetails bodies.
const ContentTypeProblem = "application/problem+json"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// SuccessResponseJSON writes data wrapped in the Response envelope.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// ProblemDetailsJSON writes an RFC 9457 problem response.
//
// The optional arguments are a string detail and an int status code, in any
// order. Without an explicit status the code is derived from err with
// ErrorToStatusCode; without an explicit detail err's message is used.
func ProblemDetailsJSON(c *fiber.Ctx, title string, err error, opts ...any) error {
	status := 0
	detail := ""
	for _, o := range opts {
		switch v := o.(type) {
		case int:
			status = v
		case string:
			detail = v
		}
	}
	if status == 0 {
		if err == nil {
			status = fiber.StatusInternalServerError
		} else {
			status = ErrorToStatusCode(err)
		}
	}
	if detail == "" && err != nil {
		detail = err.Error()
	}

	pd := ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: c.OriginalURL(),
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		pd.Errors = fields
	}

	// c.JSON overwrites the content type, so set it afterwards.
	if jerr := c.Status(status).JSON(pd); jerr != nil {
		return jerr
	}
	c.Set(fiber.HeaderContentType, ContentTypeProblem)
	return nil
}

// ErrorToStatusCode maps ledger errors to HTTP status codes.
func ErrorToStatusCode(err error) int {
	var verrs validator.ValidationErrors
	switch {
	case errors.Is(err, account.ErrAccountNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, account.ErrAccountBlocked):
		return fiber.StatusForbidden
	case errors.Is(err, account.ErrInsufficientFunds),
		errors.Is(err, account.ErrInvalidAmount),
		errors.Is(err, account.ErrCannotTransferToSameAccount),
		errors.Is(err, account.ErrAccountHasBalance),
		errors.Is(err, account.ErrAccountAlreadyClosed),
		errors.Is(err, account.ErrInvalidOwner),
		errors.Is(err, account.ErrInvalidStatus),
		errors.Is(err, account.ErrUnsupportedCurrency),
		errors.Is(err, account.ErrInvalidTransactionType),
		errors.As(err, &verrs):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// BindAndValidate parses the request body and validates it using go-playground/validator.
// Returns a pointer to the struct (populated), or writes an error response and returns nil.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ProblemDetailsJSON(c, "Invalid request body", err, fiber.StatusBadRequest)
	}
	if err := validate.Struct(input); err != nil {
		return nil, ProblemDetailsJSON(c, "Validation failed", err, fiber.StatusBadRequest)
	}
	return &input, nil
}
