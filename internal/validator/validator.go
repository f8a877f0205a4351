// Package validator checks game payloads against the catalog's field
// rules and turns violations into human-readable messages.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"gameshelf/backend/internal/catalog"

	"github.com/go-playground/validator/v10"
)

var httpURLPattern = regexp.MustCompile(`^https?://`)

// lengthMessages maps string fields with both a lower and upper bound to
// a single message, since a failing min or max only knows its own param.
var lengthMessages = map[string]string{
	"title":       "title must be between 2 and 100 characters",
	"description": "description must be between 10 and 1000 characters",
	"platform":    "platform must contain at least one entry",
}

// GameValidator validates create and update payloads. The clock is a
// field so tests can pin "now" for the release year upper bound.
type GameValidator struct {
	validate *validator.Validate
	now      func() time.Time
}

// New returns a GameValidator using the wall clock.
func New() *GameValidator {
	return NewWithClock(time.Now)
}

// NewWithClock returns a GameValidator whose release year upper bound is
// derived from now.
func NewWithClock(now func() time.Time) *GameValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields under their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	gv := &GameValidator{validate: v, now: now}

	mustRegister(v, "gamegenre", func(fl validator.FieldLevel) bool {
		return catalog.ValidGenre(fl.Field().String())
	})
	mustRegister(v, "gameplatform", func(fl validator.FieldLevel) bool {
		return catalog.ValidPlatform(fl.Field().String())
	})
	mustRegister(v, "release_year", func(fl validator.FieldLevel) bool {
		year := fl.Field().Int()
		return year >= 1950 && int(year) <= gv.now().Year()
	})
	mustRegister(v, "httpurl", func(fl validator.FieldLevel) bool {
		return httpURLPattern.MatchString(fl.Field().String())
	})

	return gv
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("failed to register %q validation: %v", tag, err))
	}
}

// Check validates s and returns the violations as an ordered list of
// messages. An empty result means the payload is acceptable. Rules never
// short-circuit: every violated field contributes a message.
func (gv *GameValidator) Check(s any) []string {
	err := gv.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, gv.message(fe))
	}
	return msgs
}

func (gv *GameValidator) message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min", "max":
		if msg, ok := lengthMessages[fe.Field()]; ok {
			return msg
		}
		return fmt.Sprintf("%s length is out of range", fe.Field())
	case "release_year":
		return fmt.Sprintf("release_year must be a whole number between 1950 and %d", gv.now().Year())
	case "gamegenre":
		return "genre must be one of: " + strings.Join(catalog.Genres, ", ")
	case "gameplatform":
		return "platform entries must be one of: " + strings.Join(catalog.Platforms, ", ")
	case "unique":
		return "platform must not contain duplicate entries"
	case "httpurl":
		return "image must be an absolute http or https URL"
	case "uuid":
		return "owner_id must be a valid user id"
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
