package handlers

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Field validation errors. These map 1:1 to the fixed client-facing messages
// and are checked before any storage access happens.
var (
	errNotJSON       = errors.New("Missing JSON in request")
	errMissingData   = errors.New("Missing data")
	errIncorrectType = errors.New("Incorrect data type detected")
)

// parseBody decodes the request body into a generic JSON object so that
// per-field presence and type checks can tell "absent" apart from "wrong type".
func parseBody(c *fiber.Ctx) (map[string]interface{}, error) {
	var body map[string]interface{}
	if err := json.Unmarshal(c.Body(), &body); err != nil || body == nil {
		return nil, errNotJSON
	}
	return body, nil
}

// requireStrings extracts mandatory string fields. Presence of every field is
// checked before any type is, so a body that is both incomplete and mistyped
// reports the missing field. Absent, null or empty values count as missing;
// any other JSON type is a type error.
func requireStrings(body map[string]interface{}, keys ...string) (map[string]string, error) {
	for _, key := range keys {
		raw, ok := body[key]
		if !ok || raw == nil {
			return nil, errMissingData
		}
		if value, isString := raw.(string); isString && value == "" {
			return nil, errMissingData
		}
	}

	values := make(map[string]string, len(keys))
	for _, key := range keys {
		value, ok := body[key].(string)
		if !ok {
			return nil, errIncorrectType
		}
		values[key] = value
	}
	return values, nil
}

// optionalString extracts a field that may be absent or null, but must be a
// string when present.
func optionalString(body map[string]interface{}, key string) (*string, error) {
	raw, ok := body[key]
	if !ok || raw == nil {
		return nil, nil
	}
	value, ok := raw.(string)
	if !ok {
		return nil, errIncorrectType
	}
	return &value, nil
}

// msg is the uniform response shape: every JSON body carries a human-readable
// msg field.
func msg(text string) fiber.Map {
	return fiber.Map{"msg": text}
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(msg(err.Error()))
}
