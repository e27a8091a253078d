package models

import (
	"encoding/json"
	"fmt"
)

// EncodeList serializes an ordered string sequence into the text form stored
// in the teachers/classes columns. A nil list is stored as an empty array.
func EncodeList(list []string) (string, error) {
	if list == nil {
		list = []string{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return "", fmt.Errorf("encode list: %w", err)
	}
	return string(b), nil
}

// DecodeList is the inverse of EncodeList. Empty text decodes to an empty list.
func DecodeList(text string) ([]string, error) {
	list := []string{}
	if text == "" {
		return list, nil
	}
	if err := json.Unmarshal([]byte(text), &list); err != nil {
		return nil, fmt.Errorf("decode list %q: %w", text, err)
	}
	if list == nil {
		list = []string{}
	}
	return list, nil
}
