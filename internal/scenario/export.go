package scenario

import (
	"bytes"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// Export renders a scenario as indented JSON.
func Export(s Scenario) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, errors.Wrapf(err, "export scenario %s", s.ID)
	}
	return data, nil
}

type importEnvelope struct {
	Name   string              `json:"name"`
	Input  jsoniter.RawMessage `json:"input"`
	Result jsoniter.RawMessage `json:"result"`
}

// Import parses an exported scenario. The name, input and result must be
// present; ID and CreatedAt from the document are ignored since the
// repository assigns fresh ones on save.
func Import(data []byte) (Scenario, error) {
	var env importEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Scenario{}, errors.Wrapf(ErrInvalidScenario, "malformed scenario document: %v", err)
	}
	if env.Name == "" || isEmptyJSON(env.Input) || isEmptyJSON(env.Result) {
		return Scenario{}, errors.Wrap(ErrInvalidScenario, "name, input and result are required")
	}

	s := Scenario{Name: env.Name}
	if err := json.Unmarshal(env.Input, &s.Input); err != nil {
		return Scenario{}, errors.Wrapf(ErrInvalidScenario, "input is not a business input: %v", err)
	}
	if err := json.Unmarshal(env.Result, &s.Result); err != nil {
		return Scenario{}, errors.Wrapf(ErrInvalidScenario, "result is not a calculation result: %v", err)
	}
	return s, nil
}

func isEmptyJSON(raw jsoniter.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
