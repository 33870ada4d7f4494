package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"unicode"

	"github.com/rarango1992/GPAC/internal/common"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Joi-style password rule: lower, upper, digit, special, length >= 8.
	v.RegisterValidation("strongpwd", func(fl validator.FieldLevel) bool {
		password := fl.Field().String()
		if len(password) < 8 {
			return false
		}
		var lower, upper, digit, special bool
		for _, r := range password {
			switch {
			case unicode.IsLower(r):
				lower = true
			case unicode.IsUpper(r):
				upper = true
			case unicode.IsDigit(r):
				digit = true
			default:
				special = true
			}
		}
		return lower && upper && digit && special
	})
	return v
}

// FieldDetail is one per-field validation message, returned as the data of
// a code-3 envelope.
type FieldDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// decodeAndValidate parses the request body into v and validates it. On
// failure it writes the code-3 envelope and reports false; no side effect
// may run after that.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		common.RespondEnvelope(w, http.StatusOK,
			[]FieldDetail{{Field: "body", Message: "Invalid request payload: " + err.Error()}},
			"API Error.", common.CodeValidation)
		return false
	}
	return validateRequest(w, v)
}

func validateRequest(w http.ResponseWriter, v interface{}) bool {
	if err := validate.Struct(v); err != nil {
		common.RespondEnvelope(w, http.StatusOK, validationDetails(err), "API Error.", common.CodeValidation)
		return false
	}
	return true
}

func validationDetails(err error) []FieldDetail {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldDetail{{Field: "body", Message: err.Error()}}
	}
	details := make([]FieldDetail, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, FieldDetail{
			Field:   fe.Field(),
			Message: fmt.Sprintf("failed validation on '%s'", fe.Tag()),
		})
	}
	return details
}
