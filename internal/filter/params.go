package filter

import (
	"github.com/creasty/defaults"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DecodeParams fills v with its declared `default:"..."` tag values and then
// unmarshals the parameter blob over them, so absent keys keep their defaults
// and unknown keys are ignored.
//
// A decode error leaves v in an unspecified, partially filled state; strict
// filters map the error to StatusBadParams, lenient filters discard v and use
// a fresh all-defaults config instead.
func DecodeParams(text string, v interface{}) error {
	if err := defaults.Set(v); err != nil {
		return err
	}
	return json.UnmarshalFromString(text, v)
}
