package cli

import (
	"fmt"

	"github.com/gclaussn/go-bpmn-parser/model"
)

// elementTypeValue is a custom flag value for an element type.
type elementTypeValue model.ElementType

func (v *elementTypeValue) Set(s string) error {
	elementType := model.MapElementType(s)
	if elementType == 0 {
		return fmt.Errorf("invalid element type %s", s)
	}

	*v = elementTypeValue(elementType)
	return nil
}

func (v elementTypeValue) String() string {
	return model.ElementType(v).String()
}

func (v elementTypeValue) Type() string {
	return "elementType"
}

// warningTypeValue is a custom flag value for a warning type.
type warningTypeValue model.WarningType

func (v *warningTypeValue) Set(s string) error {
	warningType := model.MapWarningType(s)
	if warningType == 0 {
		return fmt.Errorf("invalid warning type %s", s)
	}

	*v = warningTypeValue(warningType)
	return nil
}

func (v warningTypeValue) String() string {
	return model.WarningType(v).String()
}

func (v warningTypeValue) Type() string {
	return "warningType"
}
