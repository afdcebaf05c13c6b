package utils

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ToString converts an identifier decoded from JSON to its string form.
// Numbers should be decoded with json.Decoder.UseNumber so large ids keep their digits.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	case []byte:
		return string(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}
