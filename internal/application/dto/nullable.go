package dto

import (
	"bytes"
	"encoding/json"
)

// NullableString campo de PATCH con tres estados: ausente (Set=false), null (Set y Value nil)
// o con valor. Un puntero no alcanza porque null y ausente decodifican igual.
type NullableString struct {
	Set   bool
	Value *string
}

// SetString construye un campo presente con valor.
func SetString(s string) NullableString {
	return NullableString{Set: true, Value: &s}
}

// SetNull construye un campo presente con null.
func SetNull() NullableString {
	return NullableString{Set: true}
}

// UnmarshalJSON solo se invoca cuando la clave viene en el cuerpo, incluso con null.
func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

func (n NullableString) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}

// IsZero permite omitzero: un campo ausente no se serializa.
func (n NullableString) IsZero() bool { return !n.Set }
