// Package httputil holds the HTTP vocabulary of an OpenAPI document: the
// operation methods, response status keys and media types.
package httputil

import (
	"mime"
	"strconv"
	"strings"
)

// Operation methods, as written in a path item.
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace"
)

// Methods lists the operation methods in the order OpenAPI declares them.
var Methods = []string{
	MethodGet, MethodPut, MethodPost, MethodDelete,
	MethodOptions, MethodHead, MethodPatch, MethodTrace,
}

// Status code bounds.
const (
	MinStatusCode = 100
	MaxStatusCode = 599
)

// standardStatusCodes are the codes defined by RFC 9110 and its registry.
var standardStatusCodes = map[string]bool{
	"100": true, "101": true, "102": true, "103": true,
	"200": true, "201": true, "202": true, "203": true, "204": true, "205": true,
	"206": true, "207": true, "208": true, "226": true,
	"300": true, "301": true, "302": true, "303": true, "304": true, "305": true,
	"307": true, "308": true,
	"400": true, "401": true, "402": true, "403": true, "404": true, "405": true,
	"406": true, "407": true, "408": true, "409": true, "410": true, "411": true,
	"412": true, "413": true, "414": true, "415": true, "416": true, "417": true,
	"421": true, "422": true, "423": true, "424": true, "425": true, "426": true,
	"428": true, "429": true, "431": true, "451": true,
	"500": true, "501": true, "502": true, "503": true, "504": true, "505": true,
	"506": true, "507": true, "508": true, "510": true, "511": true,
}

// ValidateStatusCode reports whether code is a valid responses key:
// "default", an "x-" extension, a range such as "2XX", or a number in
// 100-599.
func ValidateStatusCode(code string) bool {
	if code == "default" || strings.HasPrefix(code, "x-") {
		return true
	}
	if len(code) != 3 {
		return false
	}
	if code[1] == 'X' && code[2] == 'X' {
		return code[0] >= '1' && code[0] <= '5'
	}
	for i := range 3 {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	n, err := strconv.Atoi(code)
	return err == nil && n >= MinStatusCode && n <= MaxStatusCode
}

// IsStandardStatusCode reports whether code is a registered HTTP status.
func IsStandardStatusCode(code string) bool {
	return standardStatusCodes[code]
}

// IsValidMediaType reports whether mediaType parses as a media type.
// "*/*" and "type/*" ranges are accepted; "*/subtype" is not.
func IsValidMediaType(mediaType string) bool {
	if mediaType == "*/*" {
		return true
	}
	if strings.HasPrefix(mediaType, "*/") {
		return false
	}
	if base, ok := strings.CutSuffix(mediaType, "/*"); ok {
		return base != "" && base != "*" && !strings.Contains(base, "/")
	}
	_, _, err := mime.ParseMediaType(mediaType)
	return err == nil
}
