package report

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ktsuji/procheck/pkg/procheck"
)

// EncodeJSON serializes a result for pipeline consumption.
func EncodeJSON(result interface{}) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: %v", procheck.ErrEncodingFailed, err)
	}
	return string(data) + "\n", nil
}

// EncodeYAML serializes a result as YAML.
func EncodeYAML(result interface{}) (string, error) {
	data, err := yaml.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("%w: %v", procheck.ErrEncodingFailed, err)
	}
	return string(data), nil
}
