// Package ast defines the Steel abstract syntax tree: a tagged sum of
// node variants (one Go type per kind, per spec §3) plus the Scope type
// the parser and evaluator thread through it. Evaluation reuses a
// handful of these same node kinds (Int, Float, Bool, String, ArrayDef,
// NoOp, ClassInstance) as runtime values — the evaluator never builds a
// separate "object" hierarchy, it just returns the AST node that already
// represents the value.
package ast

import "github.com/amoghasbhardwaj/steel/token"

// Node is implemented by every AST variant. Dispatch in the parser and
// evaluator is a type switch over the concrete type, the idiomatic Go
// substitute for a tagged union.
type Node interface {
	// Scope back-reference, set by the parser at construction time.
	// Nothing reads it back: the parser's name resolution and
	// declaration-site type checks use the parser's current *Scope, and
	// the evaluator threads its own *Scope explicitly (see DESIGN.md).
	SetScope(s *Scope)
	GetScope() *Scope
	node()
}

type base struct {
	scope *Scope
}

func (b *base) SetScope(s *Scope) { b.scope = s }
func (b *base) GetScope() *Scope  { return b.scope }
func (*base) node()               {}

// --- Literals / values ---

type IntLit struct {
	base
	Value int32
}

type FloatLit struct {
	base
	Value float64
	// PastDecimal counts the fractional digits of the literal as
	// written, so formatting (println) reproduces e.g. "9.50" instead
	// of Go's default float formatting.
	PastDecimal int
}

type BoolLit struct {
	base
	Value bool
}

type StringLit struct {
	base
	Value string
}

// NoOp is both the "do nothing" statement and the value a call with no
// return produces.
type NoOp struct{ base }

// --- Names ---

type Variable struct {
	base
	Name string
}

// VarDef declares (or, once evaluated, holds the current value of) a
// scalar binding. ClassName is only meaningful when Type.Kind == Custom.
type VarDef struct {
	base
	Name      string
	Type      DataType
	Init      Node // optional
	ClassName string
}

func (v *VarDef) BindingName() string { return v.Name }

type Reassign struct {
	base
	Name  string
	Value Node
}

type Increment struct {
	base
	Name string
}

type Decrement struct {
	base
	Name string
}

// --- Structure ---

type Compound struct {
	base
	Statements []Node
}

type FunctionDef struct {
	base
	Name   string
	Params []*VarDef
	Body   *Compound
	// DefScope is the child scope created for this function's
	// parameters and body at definition time; every plain call creates
	// a fresh scope whose parent is DefScope (closure semantics), while a
	// method call's scope is parented on the receiving instance's
	// InstanceScope instead.
	DefScope *Scope
}

type FunctionCall struct {
	base
	Name string
	Args []Node
}

type Return struct {
	base
	Value Node // optional
}

type If struct {
	base
	Cond Node
	Then *Compound
	Else *Compound // optional
}

type While struct {
	base
	Cond Node
	Body *Compound
}

type For struct {
	base
	Init Node // optional, typically *VarDef
	Cond Node
	Incr Node // optional
	Body *Compound
}

type Break struct{ base }

type Binary struct {
	base
	Op    token.Kind
	Left  Node
	Right Node
}

type Unary struct {
	base
	Op      token.Kind
	Operand Node
}

// --- Arrays ---

type ArrayDef struct {
	base
	Name     string
	ElemType DataType
	Elements []Node
}

func (a *ArrayDef) BindingName() string { return a.Name }

type ArrayAccess struct {
	base
	Name        string
	Index       Node
	AssignValue Node // optional; present for a write
}

// --- Classes ---

type ClassDef struct {
	base
	Name   string
	Params []*VarDef
	Body   *Compound
	// DefScope is the class body's scope: it holds the constructor
	// parameters (as placeholder VarDefs) and the method FunctionDefs.
	// It is the parent scope for every instance created from this
	// class.
	DefScope *Scope
}

// ClassInstance is both the `new ClassName(...)` expression node and,
// once evaluated, the runtime value of an instance: InstanceScope is
// populated by the evaluator and carries the instance's own field
// bindings (a child of ClassDef.DefScope).
type ClassInstance struct {
	base
	ClassName     string
	Args          []Node
	InstanceScope *Scope
}

// ClassAccess is dot-notation: receiver.selector, optionally as a write
// (AssignValue set) when selector is a Variable.
type ClassAccess struct {
	base
	Left        Node
	Right       Node // *Variable or *FunctionCall
	AssignValue Node // optional
}

// --- Imports ---

type Import struct {
	base
	Name      string
	IsBuiltin bool
	// Module caches the parsed AST of a user import on first load.
	Module *Compound
}

func (i *Import) BindingName() string { return i.Name }

// VarBinding is implemented by the two kinds of name the Scope's
// variable list can hold: plain scalars and arrays, both looked up by
// the same lookup_variable operation (spec §4.2).
type VarBinding interface {
	Node
	BindingName() string
}
