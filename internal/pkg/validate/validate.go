package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/campuslab/printbooth/internal/model"
)

// FieldError names the offending field and the rule it broke, in a form
// safe to return to the caller.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Reason
}

// Errors is the full result of one record-level validation pass.
type Errors []FieldError

func (e Errors) Error() string {
	reasons := make([]string, 0, len(e))
	for _, fe := range e {
		reasons = append(reasons, fe.Reason)
	}
	return strings.Join(reasons, "; ")
}

var digitsRe = regexp.MustCompile(`^[0-9]+$`)

var v = func() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	_ = val.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
		return digitsRe.MatchString(fl.Field().String())
	})
	return val
}()

var pendingAccountReasons = map[string]string{
	"Name":           "Name is required and must be at most 50 characters",
	"StudentID":      "Student ID must be 7 digits",
	"RFIDCardNumber": "RFID card number must be 10 digits starting with 0",
	"Email":          "A valid email address is required",
	"Phone":          "Phone number must be 11 digits",
	"Password":       "Password must be at least 6 characters",
}

var boothManagerReasons = map[string]string{
	"Name":           "Name is required and must be at most 50 characters",
	"Email":          "A valid email address is required",
	"Password":       "Password must be at least 6 characters",
	"BoothName":      "Booth name is required",
	"BoothLocation":  "Booth location is required",
	"BoothCode":      "Booth code is required",
	"PaperCapacity":  "Paper capacity cannot be negative",
	"PaperAvailable": "Loaded paper cannot be negative or exceed capacity",
}

var jsonFieldNames = map[string]string{
	"Name":           "name",
	"StudentID":      "studentId",
	"RFIDCardNumber": "rfidCardNumber",
	"Email":          "email",
	"Phone":          "phone",
	"Password":       "password",
	"BoothName":      "boothName",
	"BoothLocation":  "boothLocation",
	"BoothCode":      "boothCode",
	"PaperCapacity":  "paperCapacity",
	"PaperAvailable": "paperAvailable",
}

func PendingAccount(p *model.PendingAccount) Errors {
	return collect(v.Struct(p), pendingAccountReasons)
}

func BoothManager(m *model.BoothManager) Errors {
	return collect(v.Struct(m), boothManagerReasons)
}

func collect(err error, reasons map[string]string) Errors {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Errors{{Field: "record", Reason: "record is not valid"}}
	}
	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		field := jsonFieldNames[fe.Field()]
		if field == "" {
			field = fe.Field()
		}
		reason := reasons[fe.Field()]
		if reason == "" {
			reason = fmt.Sprintf("%s failed %s validation", field, fe.Tag())
		}
		out = append(out, FieldError{Field: field, Reason: reason})
	}
	return out
}
