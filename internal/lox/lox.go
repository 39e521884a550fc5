package lox

import (
	"fmt"
	"strconv"
	"time"
)

// loxReturn is the outcome of executing a return statement. It travels back
// up through the enclosing statements until the function call that is
// running them consumes it. A nil *loxReturn means the statement completed.
type loxReturn struct {
	val interface{}
}

func newLoxReturn(val interface{}) *loxReturn {
	r := new(loxReturn)
	r.val = val
	return r
}

// loxCallable is implemented by Lox's objects that can be called.
type loxCallable interface {
	arity() int
	call(in *Interpreter, args []interface{}) (interface{}, error)
}

// loxNative is a function provided by the host.
type loxNative struct {
	name  string
	nargs int
	fn    func(args []interface{}) (interface{}, error)
}

func (fn *loxNative) arity() int {
	return fn.nargs
}

func (fn *loxNative) call(in *Interpreter, args []interface{}) (interface{}, error) {
	return fn.fn(args)
}

func (fn *loxNative) String() string {
	return "<native fn>"
}

var nativeClock = &loxNative{
	name:  "clock",
	nargs: 0,
	fn: func(args []interface{}) (interface{}, error) {
		return time.Since(time.Unix(0, 0)).Seconds(), nil
	},
}

// loxFn represents a lox function that can be called
type loxFn struct {
	decl          *FunctionStmt
	closure       *Environment
	isInitializer bool
}

func newLoxFn(decl *FunctionStmt, closure *Environment, isInitializer bool) *loxFn {
	fn := new(loxFn)
	fn.decl = decl
	fn.closure = closure
	fn.isInitializer = isInitializer
	return fn
}

func (fn *loxFn) arity() int {
	return len(fn.decl.Params)
}

func (fn *loxFn) call(in *Interpreter, args []interface{}) (interface{}, error) {
	/*
		A function encapsulates its parameters, which means each function get is
		own environment where it stores the encapsulated variables. Each function
		call dynamically creates a new environment, otherwise, recursion would break.
		If there are multiple calls to the same function in play at the same time,
		each needs its own environment, even though they are all calls to the same
		function.
	*/
	env := NewEnvironment(fn.closure)
	for i, param := range fn.decl.Params {
		env.Define(param.Lexeme, args[i])
	}

	ret, err := in.execBlock(fn.decl.Body, env)
	if err != nil {
		return nil, err
	}
	// An initializer always hands back the instance, even on an early return.
	if fn.isInitializer {
		return fn.closure.GetAt(0, "this"), nil
	}
	if ret != nil {
		return ret.val, nil
	}
	return nil, nil
}

// bind creates a copy of the method whose closure has "this" bound to the
// given instance.
func (fn *loxFn) bind(instance *loxInstance) *loxFn {
	env := NewEnvironment(fn.closure)
	env.Define("this", instance)
	return newLoxFn(fn.decl, env, fn.isInitializer)
}

func (fn *loxFn) String() string {
	return fmt.Sprintf("<fn %s>", fn.decl.Name.Lexeme)
}

// loxClass is both the description of a class and the callable that
// constructs its instances.
type loxClass struct {
	name       string
	superclass *loxClass
	methods    map[string]*loxFn
}

func newLoxClass(name string, superclass *loxClass, methods map[string]*loxFn) *loxClass {
	return &loxClass{name, superclass, methods}
}

// findMethod looks the method up in the class then along its superclass
// chain. It returns nil if no class in the chain has it.
func (class *loxClass) findMethod(name string) *loxFn {
	for c := class; c != nil; c = c.superclass {
		if method, ok := c.methods[name]; ok {
			return method
		}
	}
	return nil
}

func (class *loxClass) arity() int {
	if initializer := class.findMethod("init"); initializer != nil {
		return initializer.arity()
	}
	return 0
}

func (class *loxClass) call(in *Interpreter, args []interface{}) (interface{}, error) {
	instance := newLoxInstance(class)
	if initializer := class.findMethod("init"); initializer != nil {
		if _, err := initializer.bind(instance).call(in, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

func (class *loxClass) String() string {
	return class.name
}

type loxInstance struct {
	class  *loxClass
	fields map[string]interface{}
}

func newLoxInstance(class *loxClass) *loxInstance {
	return &loxInstance{class, make(map[string]interface{})}
}

// get returns the field with the given name, or else the method bound to this
// instance. Fields shadow methods.
func (instance *loxInstance) get(name *Token) (interface{}, error) {
	if val, ok := instance.fields[name.Lexeme]; ok {
		return val, nil
	}
	if method := instance.class.findMethod(name.Lexeme); method != nil {
		return method.bind(instance), nil
	}
	msg := fmt.Sprintf("Undefined property '%s'.", name.Lexeme)
	return nil, newRuntimeError(UndefinedProperty, name, msg)
}

func (instance *loxInstance) set(name *Token, val interface{}) {
	instance.fields[name.Lexeme] = val
}

func (instance *loxInstance) String() string {
	return fmt.Sprintf("%s instance", instance.class.name)
}

func stringify(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Only nil and false are falsey, everything else is truthy.
func isTruthy(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	default:
		return true
	}
}

// isEqual compares two values without any conversion between types.
func isEqual(lhs, rhs interface{}) bool {
	switch l := lhs.(type) {
	case nil:
		return rhs == nil
	case bool:
		r, ok := rhs.(bool)
		return ok && l == r
	case float64:
		r, ok := rhs.(float64)
		return ok && l == r
	case string:
		r, ok := rhs.(string)
		return ok && l == r
	default:
		// Callables and instances are compared by identity.
		return lhs == rhs
	}
}
