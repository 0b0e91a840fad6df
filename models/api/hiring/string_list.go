package hiringapimodels

import (
	"encoding/json"

	"github.com/pkg/errors"
	"skill-hire-backend/lib/utils/helpers"
)

// StringList decodes from a JSON array or from a comma separated string.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*l = nil
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*l = helpers.TrimList(list)
		return nil
	}
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return errors.New("expected an array of strings or a comma separated string")
	}
	*l = helpers.SplitList(value)
	return nil
}
