package dto

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/kraya/platform-api/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Reportar los campos con su nombre JSON, no el del struct
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// runValidation ejecuta las reglas de los tags `validate` y traduce los fallos
// a un ValidationError campo → mensaje. El catálogo va keyed por "campo.tag";
// si falta la entrada se usa un mensaje genérico.
func runValidation(s interface{}, messages map[string]string) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		msg, found := messages[fe.Field()+"."+fe.Tag()]
		if !found {
			msg = "is invalid"
		}
		fields[fe.Field()] = msg
	}
	return domain.NewValidationError(fields)
}
