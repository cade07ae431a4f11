package model

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sort"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/go-playground/validator/v10"
)

// ValidationError carries the failed rule per JSON field name. Params holds
// the rule argument (e.g. the max length) for rules that take one.
type ValidationError struct {
	Fields map[string]string
	Params map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister(v, "currency", func(fl validator.FieldLevel) bool {
		return IsSupportedCurrency(fl.Field().String())
	})
	mustRegister(v, "value_date_type", oneOf(DefaultValueDateTypeEnum))
	mustRegister(v, "week_day", oneOf(WeekDaysEnum))
	mustRegister(v, "role_name", oneOf(RolesEnum))
	mustRegister(v, "invitation_type", oneOf(InvitationTypeEnum))
	mustRegister(v, "time_off_status", oneOf(append([]string{TimeOffStatusAll}, StatusTypesEnum...)))
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func oneOf(values []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return slices.Contains(values, fl.Field().String())
	}
}

// IsSupportedCurrency reports whether code is in CurrenciesEnum and known to go-money.
func IsSupportedCurrency(code string) bool {
	return slices.Contains(CurrenciesEnum, code) && money.GetCurrency(code) != nil
}

// Validate runs the struct's validate tags and converts failures into a *ValidationError.
func Validate(dto any) error {
	err := validate.Struct(dto)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{Fields: make(map[string]string, len(verrs)), Params: map[string]string{}}
	for _, fe := range verrs {
		path := fieldPath(fe)
		out.Fields[path] = fe.Tag()
		if p := fe.Param(); p != "" {
			out.Params[path] = p
		}
	}
	return out
}

// fieldPath drops the top-level struct name from the namespace,
// e.g. "InviteCreateDTO.emails[1]" becomes "emails[1]".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}
