package models

import "encoding/json"

// FlexString is a scalar that tolerates both JSON strings and numbers.
// Numbers keep their literal form ("72", "72.5"); null decodes to empty.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string { return string(f) }

// Profile carries the optional per-request user profile used to
// personalize the preamble. All fields are free-form and individually
// optional; nothing is validated or converted.
type Profile struct {
	Age       FlexString `json:"age"`
	Gender    FlexString `json:"gender"`
	Height    FlexString `json:"height"`
	Weight    FlexString `json:"weight"`
	Goal      FlexString `json:"goal"`
	Diet      FlexString `json:"diet"`
	Activity  FlexString `json:"activity"`
	Allergies FlexString `json:"allergies"`
}

// IsEmpty reports whether no profile field was supplied.
func (p Profile) IsEmpty() bool {
	return p == Profile{}
}
