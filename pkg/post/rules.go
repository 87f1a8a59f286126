package post

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrSchemaViolation is matched by every ValidationErrors value.
var ErrSchemaViolation = errors.New("post: schema violation")

var base64Pattern = regexp.MustCompile(`^[a-zA-Z0-9+/]*={0,2}$`)

// Rule is one field constraint. The same table guards request bodies and
// documents about to be written.
type Rule struct {
	Field           string
	Tag             string
	Message         string
	Required        bool
	RequiredMessage string
}

var Rules = []Rule{
	{
		Field: "title", Tag: "min=3,max=100",
		Message:  "Title must be between 3 and 100 characters",
		Required: true, RequiredMessage: "Title is required",
	},
	{
		Field: "message", Tag: "min=5,max=1000",
		Message:  "Message must be between 5 and 1000 characters",
		Required: true, RequiredMessage: "Message is required",
	},
	{
		Field: "creator", Tag: "max=100",
		Message:  "Creator name cannot exceed 100 characters",
		Required: true, RequiredMessage: "Creator is required",
	},
	{
		Field: "tags", Tag: "dive,max=50",
		Message: "Tags cannot exceed 50 characters each",
	},
	{
		Field: "selectedFile", Tag: "base64image",
		Message: "Invalid base64 image data",
	},
	{
		Field: "likeCount", Tag: "min=0,max=1000000",
		Message: "Like count must be between 0 and 1000000",
	},
}

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("base64image", func(fl validator.FieldLevel) bool {
		return base64Pattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// ValidationErrors lists broken rules in Rules order.
type ValidationErrors []string

func (ve ValidationErrors) Error() string {
	return "post: " + strings.Join(ve, "; ")
}

func (ve ValidationErrors) Is(target error) bool {
	return target == ErrSchemaViolation
}

// checkRules runs every rule whose field is in values. With requireAll set the
// required fields must also be non-zero.
func checkRules(values map[string]interface{}, requireAll bool) ValidationErrors {
	var errs ValidationErrors
	for _, rule := range Rules {
		v, ok := values[rule.Field]
		if !ok {
			continue
		}
		if msg, broken := rule.check(v, requireAll); broken {
			errs = append(errs, msg)
		}
	}
	return errs
}

func (rule Rule) check(v interface{}, requireAll bool) (string, bool) {
	if requireAll && rule.Required && isZero(v) {
		return rule.RequiredMessage, true
	}
	if err := validate.Var(v, rule.Tag); err != nil {
		return rule.Message, true
	}
	return "", false
}

func isZero(v interface{}) bool {
	return v == nil || reflect.ValueOf(v).IsZero()
}

// Validate checks a complete document against Rules.
func (p *Post) Validate() error {
	values := map[string]interface{}{
		"title":     p.Title,
		"message":   p.Message,
		"creator":   p.Creator,
		"tags":      p.Tags,
		"likeCount": p.LikeCount,
	}
	if p.SelectedFile != "" {
		values["selectedFile"] = p.SelectedFile
	}
	if errs := checkRules(values, true); len(errs) > 0 {
		return errs
	}
	return nil
}
