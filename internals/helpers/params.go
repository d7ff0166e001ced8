// file: internals/helpers/params.go
package helper

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Paging normalizado desde ?skip= y ?limit=.
type Paging struct {
	Skip  int
	Limit int
}

// ResolvePaging lee skip/limit con defaults y tope duro.
func ResolvePaging(c *fiber.Ctx, defaultLimit, maxLimit int) (Paging, error) {
	skip, err := queryInt(c, "skip", 0)
	if err != nil {
		return Paging{}, fmt.Errorf("skip debe ser un entero válido")
	}
	limit, err := queryInt(c, "limit", defaultLimit)
	if err != nil {
		return Paging{}, fmt.Errorf("limit debe ser un entero válido")
	}
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	return Paging{Skip: skip, Limit: limit}, nil
}

func queryInt(c *fiber.Ctx, name string, def int) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	return v, nil
}

// ParseIDParam lee un path param como id entero positivo.
func ParseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := strings.TrimSpace(c.Params(name))
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s debe ser un entero válido", name)
	}
	return uint(v), nil
}

// QueryUint lee un query param entero opcional; cadena vacía cuenta como ausente.
func QueryUint(c *fiber.Ctx, name string) (*uint, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s debe ser un entero válido", name)
	}
	u := uint(v)
	return &u, nil
}

// QueryBool lee un query param booleano opcional.
func QueryBool(c *fiber.Ctx, name string) (*bool, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%s debe ser un booleano válido", name)
	}
	return &v, nil
}

// TruncateRunes recorta un texto a n caracteres (runes, no bytes).
func TruncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// ValidationErrorMap convierte validator.ValidationErrors en campo → tag.
func ValidationErrorMap(err error) map[string]string {
	out := make(map[string]string)
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			out[fe.Field()] = fe.Tag()
		}
	}
	return out
}
