package validation

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Porismic/JupiterBot/internal/common/errors"
)

const (
	// Maximum lengths of free-text fields
	MaxNameLength  = 200
	MaxPrizeLength = 500
)

// Discord snowflakes are decimal uint64 values.
var snowflakeRegex = regexp.MustCompile(`^[0-9]{15,21}$`)

// IsSnowflake reports whether id looks like a Discord id.
func IsSnowflake(id string) bool {
	return snowflakeRegex.MatchString(id)
}

// ValidateName checks a giveaway or auction name.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if len(name) > MaxNameLength {
		return fmt.Errorf("name cannot exceed %d characters", MaxNameLength)
	}
	return nil
}

var registerOnce sync.Once

// Register installs the custom tags on gin's validator and reports fields by
// their json names. It is safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("snowflake", func(fl validator.FieldLevel) bool {
			return IsSnowflake(fl.Field().String())
		})
		_ = v.RegisterValidation("name", func(fl validator.FieldLevel) bool {
			return ValidateName(fl.Field().String()) == nil
		})
	})
}

// BindJSON decodes the body into dst and runs its binding tags. Failures come
// back as VALIDATION_ERROR naming the first offending field.
func BindJSON(c *gin.Context, dst any) error {
	Register()
	if err := c.ShouldBindJSON(dst); err != nil {
		return translate(err)
	}
	return nil
}

func translate(err error) *errors.AppError {
	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return errors.NewValidationError(fe.Field(), reason(fe))
	}
	return errors.NewValidationError("body", err.Error())
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "snowflake":
		return "must be a Discord id"
	case "name":
		return fmt.Sprintf("must be 1 to %d characters", MaxNameLength)
	case "min", "gte":
		return "must be at least " + fe.Param()
	case "max", "lte":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of " + fe.Param()
	case "dive":
		return "is invalid"
	}
	return "failed " + fe.Tag() + " check"
}
