package lox

import (
	"fmt"
	"io"
)

// Interpreter exposes methods for evaluating then given Lox syntax tree. An
// interpreter keeps its global environment for its whole lifetime, so a REPL
// can feed it one input after another.
type Interpreter struct {
	globals     *Environment
	environment *Environment
	locals      map[Expr]int
	output      io.Writer
	reporter    Reporter
	isREPL      bool
}

// NewInterpreter creates an interpreter that prints to output and reports
// runtime errors to reporter. In REPL mode, the value of every top-level
// expression statement that is not an assignment is printed.
func NewInterpreter(output io.Writer, reporter Reporter, isREPL bool) *Interpreter {
	globals := NewEnvironment(nil)
	globals.Define(nativeClock.name, nativeClock)
	return &Interpreter{
		globals:     globals,
		environment: globals,
		locals:      make(map[Expr]int),
		output:      output,
		reporter:    reporter,
		isREPL:      isREPL,
	}
}

// Interpret executes the statements in order. The first runtime error is
// reported and the remaining statements are skipped.
func (in *Interpreter) Interpret(statements []Stmt) {
	for _, stmt := range statements {
		if err := in.execTopLevel(stmt); err != nil {
			in.reporter.Report(err)
			return
		}
	}
}

// execTopLevel runs a statement of the program itself. In REPL mode, the value
// of an expression statement is printed unless it is an assignment.
func (in *Interpreter) execTopLevel(stmt Stmt) error {
	exprStmt, ok := stmt.(*ExprStmt)
	if !ok || !in.isREPL {
		_, err := in.exec(stmt)
		return err
	}
	val, err := in.eval(exprStmt.Expr)
	if err != nil {
		return err
	}
	if _, ok := exprStmt.Expr.(*AssignExpr); !ok {
		fmt.Fprintln(in.output, stringify(val))
	}
	return nil
}

func (in *Interpreter) resolve(expr Expr, depth int) {
	in.locals[expr] = depth
}

func (in *Interpreter) exec(stmt Stmt) (*loxReturn, error) {
	switch stmt := stmt.(type) {
	case *BlockStmt:
		return in.execBlock(stmt.Stmts, NewEnvironment(in.environment))

	case *ClassStmt:
		return nil, in.execClass(stmt)

	case *ExprStmt:
		_, err := in.eval(stmt.Expr)
		return nil, err

	case *FunctionStmt:
		fn := newLoxFn(stmt, in.environment, false)
		in.environment.Define(stmt.Name.Lexeme, fn)
		return nil, nil

	case *IfStmt:
		cond, err := in.eval(stmt.Cond)
		if err != nil {
			return nil, err
		}
		if isTruthy(cond) {
			return in.exec(stmt.ThenBranch)
		}
		if stmt.ElseBranch != nil {
			return in.exec(stmt.ElseBranch)
		}
		return nil, nil

	case *PrintStmt:
		val, err := in.eval(stmt.Expr)
		if err != nil {
			return nil, err
		}
		fmt.Fprintln(in.output, stringify(val))
		return nil, nil

	case *ReturnStmt:
		var val interface{}
		if stmt.Val != nil {
			var err error
			if val, err = in.eval(stmt.Val); err != nil {
				return nil, err
			}
		}
		return newLoxReturn(val), nil

	case *VarStmt:
		// Globals are looked up by name, so a new global is visible as nil
		// to its own initializer. The placeholder is dropped if the
		// initializer fails.
		placeholder := false
		if in.environment == in.globals {
			if _, ok := in.globals.values[stmt.Name.Lexeme]; !ok {
				in.globals.Define(stmt.Name.Lexeme, nil)
				placeholder = true
			}
		}
		var val interface{}
		if stmt.Init != nil {
			var err error
			if val, err = in.eval(stmt.Init); err != nil {
				if placeholder {
					delete(in.globals.values, stmt.Name.Lexeme)
				}
				return nil, err
			}
		}
		in.environment.Define(stmt.Name.Lexeme, val)
		return nil, nil

	case *WhileStmt:
		for {
			cond, err := in.eval(stmt.Cond)
			if err != nil {
				return nil, err
			}
			if !isTruthy(cond) {
				return nil, nil
			}
			if ret, err := in.exec(stmt.Body); ret != nil || err != nil {
				return ret, err
			}
		}
	}
	panic(fmt.Sprintf("interpreter: unexpected statement %T", stmt))
}

// execBlock runs the statements in the given environment and restores the
// current environment on the way out, whether the block completed, returned
// or failed.
func (in *Interpreter) execBlock(statements []Stmt, environment *Environment) (*loxReturn, error) {
	previous := in.environment
	in.environment = environment
	defer func() {
		in.environment = previous
	}()
	for _, stmt := range statements {
		if ret, err := in.exec(stmt); ret != nil || err != nil {
			return ret, err
		}
	}
	return nil, nil
}

func (in *Interpreter) execClass(stmt *ClassStmt) error {
	var superclass *loxClass
	if stmt.Superclass != nil {
		val, err := in.eval(stmt.Superclass)
		if err != nil {
			return err
		}
		class, ok := val.(*loxClass)
		if !ok {
			return newRuntimeError(NotAClass, stmt.Superclass.Name, "Superclass must be a class.")
		}
		superclass = class
	}

	// Defined first so methods can refer to the class by name.
	in.environment.Define(stmt.Name.Lexeme, nil)

	if superclass != nil {
		in.environment = NewEnvironment(in.environment)
		in.environment.Define("super", superclass)
	}

	methods := make(map[string]*loxFn, len(stmt.Methods))
	for _, method := range stmt.Methods {
		isInitializer := method.Name.Lexeme == "init"
		methods[method.Name.Lexeme] = newLoxFn(method, in.environment, isInitializer)
	}
	class := newLoxClass(stmt.Name.Lexeme, superclass, methods)

	if superclass != nil {
		in.environment = in.environment.enclosing
	}
	return in.environment.Assign(stmt.Name, class)
}

func (in *Interpreter) eval(expr Expr) (interface{}, error) {
	switch expr := expr.(type) {
	case *AssignExpr:
		val, err := in.eval(expr.Val)
		if err != nil {
			return nil, err
		}
		if distance, ok := in.locals[expr]; ok {
			in.environment.AssignAt(distance, expr.Name, val)
			return val, nil
		}
		if err := in.globals.Assign(expr.Name, val); err != nil {
			return nil, err
		}
		return val, nil

	case *BinaryExpr:
		return in.evalBinary(expr)

	case *CallExpr:
		return in.evalCall(expr)

	case *GetExpr:
		obj, err := in.eval(expr.Obj)
		if err != nil {
			return nil, err
		}
		instance, ok := obj.(*loxInstance)
		if !ok {
			return nil, newRuntimeError(NotAnInstance, expr.Name, "Only instances have properties.")
		}
		return instance.get(expr.Name)

	case *GroupExpr:
		return in.eval(expr.Expr)

	case *LiteralExpr:
		return expr.Val, nil

	case *LogicalExpr:
		lhs, err := in.eval(expr.Lhs)
		if err != nil {
			return nil, err
		}
		switch expr.Op.Typ {
		case OR:
			if isTruthy(lhs) {
				return lhs, nil
			}
		case AND:
			if !isTruthy(lhs) {
				return lhs, nil
			}
		default:
			panic("Unreachable")
		}
		return in.eval(expr.Rhs)

	case *SetExpr:
		obj, err := in.eval(expr.Obj)
		if err != nil {
			return nil, err
		}
		instance, ok := obj.(*loxInstance)
		if !ok {
			return nil, newRuntimeError(NotAnInstance, expr.Name, "Only instances have fields.")
		}
		val, err := in.eval(expr.Val)
		if err != nil {
			return nil, err
		}
		instance.set(expr.Name, val)
		return val, nil

	case *SuperExpr:
		distance := in.locals[expr]
		superclass := in.environment.GetAt(distance, "super").(*loxClass)
		// "this" always lives in the scope right inside the one binding "super".
		instance := in.environment.GetAt(distance-1, "this").(*loxInstance)
		method := superclass.findMethod(expr.Method.Lexeme)
		if method == nil {
			msg := fmt.Sprintf("Undefined property '%s'.", expr.Method.Lexeme)
			return nil, newRuntimeError(UndefinedProperty, expr.Method, msg)
		}
		return method.bind(instance), nil

	case *ThisExpr:
		return in.lookUpVariable(expr.Keyword, expr)

	case *UnaryExpr:
		val, err := in.eval(expr.Expr)
		if err != nil {
			return nil, err
		}
		switch expr.Op.Typ {
		case BANG:
			return !isTruthy(val), nil
		case MINUS:
			if num, ok := val.(float64); ok {
				return -num, nil
			}
			return nil, newRuntimeError(TypeMismatch, expr.Op, "Operand must be a number.")
		}
		panic("Unreachable")

	case *VarExpr:
		return in.lookUpVariable(expr.Name, expr)
	}
	panic(fmt.Sprintf("interpreter: unexpected expression %T", expr))
}

func (in *Interpreter) evalBinary(expr *BinaryExpr) (interface{}, error) {
	lhs, err := in.eval(expr.Lhs)
	if err != nil {
		return nil, err
	}
	rhs, err := in.eval(expr.Rhs)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Typ {
	case BANG_EQUAL:
		return !isEqual(lhs, rhs), nil
	case EQUAL_EQUAL:
		return isEqual(lhs, rhs), nil
	case PLUS:
		switch l := lhs.(type) {
		case float64:
			if r, ok := rhs.(float64); ok {
				return l + r, nil
			}
		case string:
			if r, ok := rhs.(string); ok {
				return l + r, nil
			}
		}
		return nil, newRuntimeError(TypeMismatch, expr.Op, "Operands must be two numbers or two strings.")
	}

	l, okLhs := lhs.(float64)
	r, okRhs := rhs.(float64)
	if !okLhs || !okRhs {
		return nil, newRuntimeError(TypeMismatch, expr.Op, "Operands must be numbers.")
	}
	switch expr.Op.Typ {
	case GREATER:
		return l > r, nil
	case GREATER_EQUAL:
		return l >= r, nil
	case LESS:
		return l < r, nil
	case LESS_EQUAL:
		return l <= r, nil
	case MINUS:
		return l - r, nil
	case STAR:
		return l * r, nil
	case SLASH:
		if r == 0 {
			return nil, newRuntimeError(DivisionByZero, expr.Op, "Division by zero.")
		}
		return l / r, nil
	}
	panic("Unreachable")
}

func (in *Interpreter) evalCall(expr *CallExpr) (interface{}, error) {
	callee, err := in.eval(expr.Callee)
	if err != nil {
		return nil, err
	}
	fn, ok := callee.(loxCallable)
	if !ok {
		return nil, newRuntimeError(NotCallable, expr.Paren, "Can only call functions and classes.")
	}

	args := make([]interface{}, 0, len(expr.Args))
	for _, arg := range expr.Args {
		val, err := in.eval(arg)
		if err != nil {
			return nil, err
		}
		args = append(args, val)
	}

	if len(args) != fn.arity() {
		msg := fmt.Sprintf("Expected %d arguments but got %d.", fn.arity(), len(args))
		return nil, newRuntimeError(ArityMismatch, expr.Paren, msg)
	}
	return fn.call(in, args)
}

// lookUpVariable reads a local variable at the distance found by the
// resolver. Unresolved names are globals, which are looked up by name so they
// can be defined after the code that uses them.
func (in *Interpreter) lookUpVariable(name *Token, expr Expr) (interface{}, error) {
	if distance, ok := in.locals[expr]; ok {
		return in.environment.GetAt(distance, name.Lexeme), nil
	}
	return in.globals.Get(name)
}
