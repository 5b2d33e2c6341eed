package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ✅ Khusus error validasi (validator.v10) → 422 + field errors
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "Input tidak valid")
	}
	return JsonValidationError(c, TranslateValidationErrors(ve))
}

// TranslateValidationErrors mengubah error validator jadi pesan per-field (bahasa Indonesia)
func TranslateValidationErrors(ve validator.ValidationErrors) map[string][]string {
	out := make(map[string][]string, len(ve))
	for _, fe := range ve {
		field := fe.Field()
		var msg string
		switch fe.Tag() {
		case "required":
			msg = field + " wajib diisi."
		case "email":
			msg = "Format email tidak valid."
		case "min":
			msg = field + " minimal " + fe.Param() + " karakter."
		case "max":
			msg = field + " maksimal " + fe.Param() + " karakter."
		case "oneof":
			msg = field + " harus salah satu dari: " + fe.Param() + "."
		case "gte":
			msg = field + " minimal " + fe.Param() + "."
		case "lte":
			msg = field + " maksimal " + fe.Param() + "."
		case "e164":
			msg = "Format nomor telepon tidak valid."
		default:
			msg = "Format " + field + " tidak valid."
		}
		out[field] = append(out[field], msg)
	}
	return out
}
