package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Decode converts a serialized engine result into an editor value.
//
// The engine hands results over as JSON text. json.Decoder's token stream is
// used instead of Unmarshal because objects must become ordered (key, value)
// pairs; Unmarshal into map[string]any would discard key order. Numbers keep
// their source subtype: a literal with a fraction or exponent becomes Float,
// anything else Int.
func Decode(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}

	// Trailing garbage means the input was not a single serialized value.
	if dec.More() {
		return nil, fmt.Errorf("trailing data after value")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return valueFromToken(dec, tok)
}

func valueFromToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case nil:
		return Nil{}, nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return numberValue(t), nil
	case string:
		return String(t), nil
	case json.Delim:
		switch t {
		case '[':
			return decodeList(dec)
		case '{':
			return decodeAList(dec)
		}
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func decodeList(dec *json.Decoder) (Value, error) {
	list := List{}
	for dec.More() {
		elem, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		list = append(list, elem)
	}
	// Consume closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return list, nil
}

func decodeAList(dec *json.Decoder) (Value, error) {
	alist := AList{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is not a string: %v", keyTok)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		alist = append(alist, Pair{Key: key, Val: val})
	}
	// Consume closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return alist, nil
}

// numberValue maps a JSON number literal to Int or Float depending on its
// source notation. Integers outside int64 range degrade to Float.
func numberValue(n json.Number) Value {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Int(i)
		}
	}
	f, err := n.Float64()
	if err != nil {
		return Nil{}
	}
	return Float(f)
}
