package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// los errores nombran el campo como llega en el JSON
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// bindBody decodifica el cuerpo en out y aplica sus tags validate.
// Si devuelve false la respuesta 400 ya quedó escrita y el handler debe retornar err.
func bindBody(c *fiber.Ctx, out any) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		return false, badBody(c)
	}
	if err := validate.Struct(out); err != nil {
		return false, validationError(c, describeValidation(err))
	}
	return true, nil
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s es requerido", fe.Field()))
		case "email":
			parts = append(parts, fmt.Sprintf("%s debe ser un email válido", fe.Field()))
		case "min":
			parts = append(parts, fmt.Sprintf("%s debe ser al menos %s", fe.Field(), fe.Param()))
		case "max":
			parts = append(parts, fmt.Sprintf("%s debe ser como máximo %s", fe.Field(), fe.Param()))
		default:
			parts = append(parts, fmt.Sprintf("%s no cumple %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}
