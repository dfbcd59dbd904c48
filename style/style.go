/*
Package style holds the types at the boundary between parsed stylesheets
and the engines consuming them: raw property values and the capability
interface of styleable elements.

The parser deliberately leaves declaration values uninterpreted; Property
is the thin container handed to a downstream value converter. Likewise,
selector matching runs against the Styleable capability only, so the
element tree of the host application stays opaque to this module.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

// Property is a raw value for a CSS property. For example, with
//
//     color: black
//
// a property value of "black" is set. Wrapping the raw string into type
// Property gives downstream value converters a common currency without
// this module interpreting the value in any way.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritance-type "initial".
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritance-type "inherit".
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks whether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// Styleable is the capability a visual element has to offer for selectors
// to be matched against it. Matching engines evaluate parsed selector
// trees against this interface only; the element tree of the host
// application remains opaque.
type Styleable interface {
	TagName() string                 // element type name, e.g. "circle"
	ID() string                      // element id, or empty
	HasClass(string) bool            // membership in a style class
	Attribute(string) (string, bool) // attribute value, if present
}
