package examples

import (
	"encoding/json"
	"encoding/xml"
)

// Example holds a greeting message. The zero value holds no message.
type Example struct {
	message string
}

func NewExample(message string) Example {
	return Example{message: message}
}

func (e Example) Message() string {
	return e.message
}

// ComplexResult is an immutable first/last name pair.
type ComplexResult struct {
	firstName string
	lastName  string
}

func NewComplexResult(firstName, lastName string) ComplexResult {
	return ComplexResult{firstName: firstName, lastName: lastName}
}

func (c ComplexResult) FirstName() string {
	return c.firstName
}

func (c ComplexResult) LastName() string {
	return c.lastName
}

type complexResultView struct {
	XMLName   xml.Name `json:"-" xml:"ComplexResult"`
	FirstName string   `json:"firstName" xml:"firstName"`
	LastName  string   `json:"lastName" xml:"lastName"`
}

func (c ComplexResult) view() complexResultView {
	return complexResultView{FirstName: c.firstName, LastName: c.lastName}
}

func (c ComplexResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.view())
}

func (c *ComplexResult) UnmarshalJSON(data []byte) error {
	var v complexResultView
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = NewComplexResult(v.FirstName, v.LastName)
	return nil
}

func (c ComplexResult) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.Encode(c.view())
}

func (c *ComplexResult) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var v complexResultView
	if err := d.DecodeElement(&v, &start); err != nil {
		return err
	}
	*c = NewComplexResult(v.FirstName, v.LastName)
	return nil
}
