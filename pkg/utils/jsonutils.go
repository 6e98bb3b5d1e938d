package utils

import (
	"encoding/json"
	"fmt"
)

// GetNestedMap walks a chain of keys through nested JSON objects
func GetNestedMap(data map[string]interface{}, keys ...string) (map[string]interface{}, error) {
	current := data
	for _, key := range keys {
		next, ok := current[key].(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("key %s is not a map", key)
		}
		current = next
	}
	return current, nil
}

// GetFirstMapValue returns the first value in a map
func GetFirstMapValue(m map[string]interface{}) (interface{}, error) {
	for _, v := range m {
		return v, nil
	}
	return nil, fmt.Errorf("map is empty")
}

// ParseJSON parses a JSON string into a map
func ParseJSON(jsonStr string) (map[string]interface{}, error) {
	var result map[string]interface{}
	err := json.Unmarshal([]byte(jsonStr), &result)
	if err != nil {
		return nil, fmt.Errorf("error parsing JSON: %w", err)
	}
	return result, nil
}
