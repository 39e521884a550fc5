package lox

import (
	"container/list"
	"fmt"
)

// Each map reprents a single block scope, variables at the global scope are not
// tracked by the resolver. If it cannot resolve a variable in the local
// scopes, it assumes the variable to be in the global scope.
//
// A name maps to false once it is declared and to true once its initializer
// has been resolved.
type scopeMap = map[string]bool

type loxFnType int

const (
	fnTypeNone loxFnType = iota
	fnTypeFunction
	fnTypeMethod
	fnTypeInitializer
)

type loxClassType int

const (
	classTypeNone loxClassType = iota
	classTypeClass
	classTypeSubclass
)

// resolutionSink receives the scope distance of every local variable
// reference found by the resolver.
type resolutionSink interface {
	resolve(expr Expr, depth int)
}

// Resolver performs semantics analysis on the syntax tree. It walks the tree
// once, in the same order the interpreter executes it, and tells the sink how
// many scopes separate each variable reference from its declaration.
//
// Errors are reported and the walk goes on, callers must check the reporter
// before running the interpreter.
type Resolver struct {
	scopes       *list.List
	sink         resolutionSink
	reporter     Reporter
	currentFn    loxFnType
	currentClass loxClassType
}

// NewResolver creates a resolver that feeds distances to the interpreter.
func NewResolver(interpreter *Interpreter, reporter Reporter) *Resolver {
	return newResolver(interpreter, reporter)
}

func newResolver(sink resolutionSink, reporter Reporter) *Resolver {
	r := new(Resolver)
	r.scopes = list.New()
	r.sink = sink
	r.reporter = reporter
	r.currentFn = fnTypeNone
	r.currentClass = classTypeNone
	return r
}

// Resolve walks the statements in order.
func (r *Resolver) Resolve(statements []Stmt) {
	for _, stmt := range statements {
		r.resolveStmt(stmt)
	}
}

func (r *Resolver) resolveStmt(stmt Stmt) {
	switch stmt := stmt.(type) {
	case *BlockStmt:
		r.beginScope()
		r.Resolve(stmt.Stmts)
		r.endScope()

	case *ClassStmt:
		r.resolveClass(stmt)

	case *ExprStmt:
		r.resolveExpr(stmt.Expr)

	case *FunctionStmt:
		// Defined before the body so the function can refer to itself.
		r.declare(stmt.Name)
		r.define(stmt.Name)
		r.resolveFunction(stmt, fnTypeFunction)

	case *IfStmt:
		r.resolveExpr(stmt.Cond)
		r.resolveStmt(stmt.ThenBranch)
		if stmt.ElseBranch != nil {
			r.resolveStmt(stmt.ElseBranch)
		}

	case *PrintStmt:
		r.resolveExpr(stmt.Expr)

	case *ReturnStmt:
		if r.currentFn == fnTypeNone {
			r.report(stmt.Keyword, "Can't return from top-level code.")
		}
		if stmt.Val != nil {
			if r.currentFn == fnTypeInitializer {
				r.report(stmt.Keyword, "Can't return a value from an initializer.")
			}
			r.resolveExpr(stmt.Val)
		}

	case *VarStmt:
		r.declare(stmt.Name)
		if stmt.Init != nil {
			r.resolveExpr(stmt.Init)
		}
		r.define(stmt.Name)

	case *WhileStmt:
		r.resolveExpr(stmt.Cond)
		r.resolveStmt(stmt.Body)

	default:
		panic(fmt.Sprintf("resolver: unexpected statement %T", stmt))
	}
}

func (r *Resolver) resolveExpr(expr Expr) {
	switch expr := expr.(type) {
	case *AssignExpr:
		r.resolveExpr(expr.Val)
		r.resolveLocal(expr, expr.Name)

	case *BinaryExpr:
		r.resolveExpr(expr.Lhs)
		r.resolveExpr(expr.Rhs)

	case *CallExpr:
		r.resolveExpr(expr.Callee)
		for _, arg := range expr.Args {
			r.resolveExpr(arg)
		}

	case *GetExpr:
		// Properties are looked up dynamically, only the object is resolved.
		r.resolveExpr(expr.Obj)

	case *GroupExpr:
		r.resolveExpr(expr.Expr)

	case *LiteralExpr:

	case *LogicalExpr:
		r.resolveExpr(expr.Lhs)
		r.resolveExpr(expr.Rhs)

	case *SetExpr:
		r.resolveExpr(expr.Obj)
		r.resolveExpr(expr.Val)

	case *SuperExpr:
		switch r.currentClass {
		case classTypeNone:
			r.report(expr.Keyword, "Can't use 'super' outside of a class.")
		case classTypeClass:
			r.report(expr.Keyword, "Can't use 'super' in a class with no superclass.")
		}
		r.resolveLocal(expr, expr.Keyword)

	case *ThisExpr:
		if r.currentClass == classTypeNone {
			r.report(expr.Keyword, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(expr, expr.Keyword)

	case *UnaryExpr:
		r.resolveExpr(expr.Expr)

	case *VarExpr:
		if r.scopes.Front() != nil {
			scope := r.scopes.Front().Value.(scopeMap)
			if defined, exist := scope[expr.Name.Lexeme]; exist && !defined {
				r.report(expr.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(expr, expr.Name)

	default:
		panic(fmt.Sprintf("resolver: unexpected expression %T", expr))
	}
}

func (r *Resolver) resolveClass(stmt *ClassStmt) {
	enclosingClass := r.currentClass
	r.currentClass = classTypeClass
	defer func() { r.currentClass = enclosingClass }()

	r.declare(stmt.Name)
	r.define(stmt.Name)

	if stmt.Superclass != nil {
		if stmt.Superclass.Name.Lexeme == stmt.Name.Lexeme {
			r.report(stmt.Superclass.Name, "A class can't inherit from itself.")
		}
		r.currentClass = classTypeSubclass
		r.resolveExpr(stmt.Superclass)

		r.beginScope()
		r.scopes.Front().Value.(scopeMap)["super"] = true
		defer r.endScope()
	}

	r.beginScope()
	r.scopes.Front().Value.(scopeMap)["this"] = true
	for _, method := range stmt.Methods {
		fnType := fnTypeMethod
		if method.Name.Lexeme == "init" {
			fnType = fnTypeInitializer
		}
		r.resolveFunction(method, fnType)
	}
	r.endScope()
}

func (r *Resolver) resolveFunction(fn *FunctionStmt, fnType loxFnType) {
	enclosingFn := r.currentFn
	r.currentFn = fnType

	r.beginScope()
	for _, p := range fn.Params {
		r.declare(p)
		r.define(p)
	}
	r.Resolve(fn.Body)
	r.endScope()

	r.currentFn = enclosingFn
}

// resolveLocal reports the number of scopes between the innermost one and the
// one declaring name. Nothing is reported for globals.
func (r *Resolver) resolveLocal(expr Expr, name *Token) {
	steps := 0
	for scope := r.scopes.Front(); scope != nil; scope = scope.Next() {
		if _, ok := scope.Value.(scopeMap)[name.Lexeme]; ok {
			r.sink.resolve(expr, steps)
			return
		}
		steps++
	}
}

// called when resolver enters a new scope
func (r *Resolver) beginScope() {
	r.scopes.PushFront(make(scopeMap))
}

// called when resolver exits a new scope
func (r *Resolver) endScope() {
	r.scopes.Remove(r.scopes.Front())
}

func (r *Resolver) declare(name *Token) {
	if r.scopes.Front() == nil {
		return
	}
	scope := r.scopes.Front().Value.(scopeMap)
	if _, hasName := scope[name.Lexeme]; hasName {
		r.report(name, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name *Token) {
	if r.scopes.Front() == nil {
		return
	}
	r.scopes.Front().Value.(scopeMap)[name.Lexeme] = true
}

func (r *Resolver) report(token *Token, message string) {
	r.reporter.Report(newSemanticError(token, message))
}
