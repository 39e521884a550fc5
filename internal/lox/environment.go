package lox

import "fmt"

// Environment is a single scope frame. Frames are shared by pointer, every
// closure created while a frame is current keeps it alive and sees the
// writes made through any other alias.
type Environment struct {
	enclosing *Environment
	values    map[string]interface{}
}

// NewEnvironment creates a frame nested inside enclosing. A nil enclosing
// frame makes a global scope.
func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{enclosing, make(map[string]interface{})}
}

// Define binds name in this frame. Binding a name that already exists in
// this frame overwrites it.
func (env *Environment) Define(name string, value interface{}) {
	env.values[name] = value
}

// Assign updates the binding of name in the nearest frame that has it. It
// never creates a new binding.
func (env *Environment) Assign(name *Token, value interface{}) error {
	for e := env; e != nil; e = e.enclosing {
		if _, ok := e.values[name.Lexeme]; ok {
			e.values[name.Lexeme] = value
			return nil
		}
	}
	return undefinedVariable(name)
}

// Get returns the value bound to name in the nearest frame that has it.
func (env *Environment) Get(name *Token) (interface{}, error) {
	for e := env; e != nil; e = e.enclosing {
		if value, ok := e.values[name.Lexeme]; ok {
			return value, nil
		}
	}
	return nil, undefinedVariable(name)
}

// GetAt reads name from the frame exactly distance hops away. The resolver
// guarantees the binding is there.
func (env *Environment) GetAt(distance int, name string) interface{} {
	return env.ancestor(distance).values[name]
}

// AssignAt writes name in the frame exactly distance hops away.
func (env *Environment) AssignAt(distance int, name *Token, value interface{}) {
	env.ancestor(distance).values[name.Lexeme] = value
}

func (env *Environment) ancestor(distance int) *Environment {
	e := env
	for i := 0; i < distance; i++ {
		e = e.enclosing
	}
	return e
}

func undefinedVariable(name *Token) error {
	msg := fmt.Sprintf("Undefined variable '%s'.", name.Lexeme)
	return newRuntimeError(UndefinedVariable, name, msg)
}
