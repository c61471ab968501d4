package block

import (
	"fmt"
	"net/url"
	"strings"
)

type Field struct {
	Name  string
	Value string
}

// PayInfo is the ";"-delimited card payload sent in the PayInfo parameter.
type PayInfo struct {
	Fields []Field
}

func NewPayInfo(card Card, orderID, amount string) PayInfo {
	return PayInfo{Fields: []Field{
		{FieldPAN, card.PAN},
		{FieldEMonth, card.ExpMonth},
		{FieldEYear, card.ExpYear},
		{FieldCardHolder, card.Holder},
		{FieldSecureCode, card.SecureCode},
		{FieldOrderID, orderID},
		{FieldAmount, amount},
	}}
}

func (p PayInfo) Without(name string) PayInfo {
	fields := make([]Field, 0, len(p.Fields))
	for _, f := range p.Fields {
		if f.Name != name {
			fields = append(fields, f)
		}
	}
	return PayInfo{Fields: fields}
}

func (p PayInfo) Get(name string) (string, bool) {
	for _, f := range p.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

func (p PayInfo) String() string {
	parts := make([]string, len(p.Fields))
	for i, f := range p.Fields {
		parts[i] = f.Name + "=" + f.Value
	}
	return strings.Join(parts, ";")
}

// Encode form-encodes the payload. The result is the value of the PayInfo
// query parameter, which the request builder encodes once more.
func (p PayInfo) Encode() string {
	return url.QueryEscape(p.String())
}

func DecodePayInfo(encoded string) (PayInfo, error) {
	raw, err := url.QueryUnescape(encoded)
	if err != nil {
		return PayInfo{}, fmt.Errorf("decode PayInfo: %w", err)
	}
	return ParsePayInfo(raw)
}

func ParsePayInfo(raw string) (PayInfo, error) {
	var p PayInfo
	if raw == "" {
		return p, nil
	}
	for _, part := range strings.Split(raw, ";") {
		if part == "" {
			continue
		}
		name, value, ok := strings.Cut(part, "=")
		if !ok || name == "" {
			return PayInfo{}, fmt.Errorf("malformed PayInfo field %q", part)
		}
		p.Fields = append(p.Fields, Field{Name: name, Value: value})
	}
	return p, nil
}
