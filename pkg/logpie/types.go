package logpie

import "reflect"

// TypeOf returns the name of the dynamic type of value: "int" for 42,
// "string" for "x". Unnamed types such as slices or pointers are reported by
// their type expression ("[]int", "*logpie.Foo"). A nil interface yields "nil".
func TypeOf(value any) string {
	t := reflect.TypeOf(value)
	if t == nil {
		return "nil"
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}
