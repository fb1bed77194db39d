package request

import (
	"encoding/json"
	"strconv"
	"strings"
)

// LooseNumber accepts a JSON number or a numeric string. Anything else
// decodes without error and leaves the value unset.
type LooseNumber struct {
	value *float64
}

func NewLooseNumber(v float64) LooseNumber {
	return LooseNumber{value: &v}
}

func (n *LooseNumber) UnmarshalJSON(data []byte) error {
	n.value = nil

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	switch v := raw.(type) {
	case float64:
		n.value = &v
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			n.value = &f
		}
	}
	return nil
}

func (n LooseNumber) MarshalJSON() ([]byte, error) {
	if n.value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.value)
}

// Float returns nil when no usable number was sent.
func (n LooseNumber) Float() *float64 {
	if n.value == nil {
		return nil
	}
	v := *n.value
	return &v
}

// StrictNumber accepts only a JSON number. Strings, booleans and null leave
// the value unset.
type StrictNumber struct {
	value *float64
}

func NewStrictNumber(v float64) StrictNumber {
	return StrictNumber{value: &v}
}

func (n *StrictNumber) UnmarshalJSON(data []byte) error {
	n.value = nil

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	if strings.TrimSpace(string(data)) == "null" {
		return nil
	}
	n.value = &v
	return nil
}

func (n StrictNumber) MarshalJSON() ([]byte, error) {
	if n.value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.value)
}

func (n StrictNumber) Float() *float64 {
	if n.value == nil {
		return nil
	}
	v := *n.value
	return &v
}

// LooseString keeps JSON strings and treats every other JSON value as "".
type LooseString string

func (s *LooseString) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		*s = ""
		return nil
	}
	*s = LooseString(v)
	return nil
}

func (s LooseString) String() string {
	return string(s)
}
