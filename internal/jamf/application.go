package jamf

import (
	"bytes"
	"encoding/xml"
)

// element is a schema-less view of an XML element.
type element struct {
	XMLName  xml.Name
	Children []element `xml:",any"`
}

func (e *element) children(name string) []*element {
	var out []*element
	for i := range e.Children {
		if e.Children[i].XMLName.Local == name {
			out = append(out, &e.Children[i])
		}
	}
	return out
}

// descendants collects every element named name below e, excluding e.
func (e *element) descendants(name string) []*element {
	var out []*element
	for i := range e.Children {
		child := &e.Children[i]
		if child.XMLName.Local == name {
			out = append(out, child)
		}
		out = append(out, child.descendants(name)...)
	}
	return out
}

func (e *element) hasDescendant(name string) bool {
	for i := range e.Children {
		if e.Children[i].XMLName.Local == name || e.Children[i].hasDescendant(name) {
			return true
		}
	}
	return false
}

// HasSerialNumber inspects a computerapplications response. It is true when
// any version element holds computers/computer with a serial_number element
// somewhere beneath the computer.
func HasSerialNumber(body []byte) (bool, error) {
	var root element
	if err := xml.NewDecoder(bytes.NewReader(body)).Decode(&root); err != nil {
		return false, err
	}

	for _, version := range root.descendants("version") {
		for _, computers := range version.children("computers") {
			for _, computer := range computers.children("computer") {
				if computer.hasDescendant("serial_number") {
					return true, nil
				}
			}
		}
	}

	return false, nil
}
