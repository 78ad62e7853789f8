package handler

import (
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/kozlekmarchewkowy/magazyn/internal/apperror"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apperror.New("invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apperror.NewFieldErrors(fields))
		return false
	}
	return true
}

// respondError maps the error taxonomy onto HTTP statuses. EmptyResult is
// informational and handled at the call site, not here.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if kind, ok := apperror.KindOf(err); ok {
		switch kind {
		case apperror.KindValidation:
			status = http.StatusUnprocessableEntity
		case apperror.KindEmptyDirectory:
			status = http.StatusConflict
		case apperror.KindRemote:
			status = http.StatusBadGateway
		}
	}
	c.JSON(status, apperror.FromError(err))
}
