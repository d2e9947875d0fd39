package models

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Flow selects which payment model a campaign is validated for.
type Flow int

const (
	// FlowPackage pays per campaign and requires selected_package.
	FlowPackage Flow = iota
	// FlowFunded spends prepaid credits and sizes the top-up from estimated_posts.
	FlowFunded
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate returns every rule the campaign breaks for the given flow, in field order.
// An empty result means the campaign may be submitted.
func (c *CampaignRequest) Validate(flow Flow) []string {
	var problems []string

	if err := validate.Struct(c); err != nil {
		fieldErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return []string{err.Error()}
		}
		for _, fe := range fieldErrs {
			problems = append(problems, describe(fe))
		}
	}

	switch flow {
	case FlowPackage:
		if err := validate.Var(c.SelectedPackage, "required,oneof="+strings.Join(Packages, " ")); err != nil {
			problems = append(problems, fmt.Sprintf("selected_package must be one of %s", strings.Join(Packages, ", ")))
		}
	case FlowFunded:
		if err := validate.Var(c.EstimatedPosts, fmt.Sprintf("min=0,max=%d", MaxEstimatedPosts)); err != nil {
			problems = append(problems, fmt.Sprintf("estimated_posts must be between 0 and %d (0 means the default of %d)", MaxEstimatedPosts, DefaultEstimatedPosts))
		}
	}

	return problems
}

func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}

	switch {
	case fe.Field() == "product_id":
		return "product_id must be set to a valid product identifier"
	case fe.Field() == "keywords":
		return "keywords must be a non-empty list"
	case strings.HasPrefix(field, "keywords["):
		return fmt.Sprintf("%s must not be blank", field)
	default:
		return fmt.Sprintf("%s is required", field)
	}
}
