package models

import "strings"

// ComplexInfo is the metadata of the sports complex being configured.
// Province and Ward hold directory codes; labels are resolved at submit time.
type ComplexInfo struct {
	Name        string     `bson:"name" json:"name"`
	Street      string     `bson:"street" json:"street"`
	Province    string     `bson:"province" json:"province"`
	Ward        string     `bson:"ward" json:"ward"`
	Phone       string     `bson:"phone,omitempty" json:"phone,omitempty"`
	OpeningTime *TimeOfDay `bson:"openingTime,omitempty" json:"openingTime,omitempty"`
	ClosingTime *TimeOfDay `bson:"closingTime,omitempty" json:"closingTime,omitempty"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
}

var (
	DefaultOpeningTime = NewTimeOfDay(6, 0)
	DefaultClosingTime = NewTimeOfDay(22, 0)
)

// Hours returns the opening and closing times, falling back to the defaults.
func (c ComplexInfo) Hours() (TimeOfDay, TimeOfDay) {
	opening, closing := DefaultOpeningTime, DefaultClosingTime
	if c.OpeningTime != nil {
		opening = *c.OpeningTime
	}
	if c.ClosingTime != nil {
		closing = *c.ClosingTime
	}
	return opening, closing
}

// MissingFields lists the required metadata members that are blank.
func (c ComplexInfo) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(c.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(c.Street) == "" {
		missing = append(missing, "street")
	}
	if strings.TrimSpace(c.Province) == "" {
		missing = append(missing, "province")
	}
	if strings.TrimSpace(c.Ward) == "" {
		missing = append(missing, "ward")
	}
	return missing
}

// LocationOption is one entry of the province or ward directory.
type LocationOption struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	Value string `json:"value"`
}
