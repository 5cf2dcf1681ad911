package person

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DecodeYAML decodes a YAML document into a builder, using the default
// factory. Unknown fields are an error. The returned builder has not been
// validated; call Validate or Build as usual.
func DecodeYAML(data []byte) (*Builder, error) {
	return defaultFactory.DecodeYAML(data)
}

// EncodeYAML encodes a validated Person as a YAML document.
func EncodeYAML(p Person) ([]byte, error) {
	data, err := yaml.Marshal(ToPrimitive(p))
	if err != nil {
		return nil, fmt.Errorf("person: encoding yaml: %w", err)
	}
	return data, nil
}

// DecodeJSON decodes a JSON document into a builder, using the default
// factory. Unknown fields are an error.
func DecodeJSON(data []byte) (*Builder, error) {
	return defaultFactory.DecodeJSON(data)
}

// EncodeJSON encodes a validated Person as a JSON document.
func EncodeJSON(p Person) ([]byte, error) {
	data, err := json.Marshal(ToPrimitive(p))
	if err != nil {
		return nil, fmt.Errorf("person: encoding json: %w", err)
	}
	return data, nil
}

// DecodeYAML decodes a YAML document into one of the factory's builders.
// Unknown fields are an error.
func (f *Factory) DecodeYAML(data []byte) (*Builder, error) {
	var p Primitive
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("person: decoding yaml: %w", err)
	}
	return f.FromPrimitive(p), nil
}

// DecodeJSON decodes a JSON document into one of the factory's builders.
// Unknown fields are an error.
func (f *Factory) DecodeJSON(data []byte) (*Builder, error) {
	var p Primitive
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("person: decoding json: %w", err)
	}
	return f.FromPrimitive(p), nil
}
