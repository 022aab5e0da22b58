package ast

import "github.com/amoghasbhardwaj/steel/steelerr"

// Scope is a lexically nested environment: four binding sequences plus
// an optional parent link (spec §3/§4.2). It is always referenced
// through a pointer — many AST nodes share the same *Scope, and
// mutating it through any one of them must be visible through all of
// them, so Scope is never copied by value once constructed.
type Scope struct {
	parent    *Scope
	varDefs   []VarBinding
	funcDefs  []*FunctionDef
	classDefs []*ClassDef
	imports   []*Import
}

// NewScope creates a Scope with the given parent (nil for the global
// scope). Every non-root Scope gets exactly one parent, fixed here for
// its whole lifetime.
func NewScope(parent *Scope) *Scope {
	return &Scope{parent: parent}
}

func (s *Scope) Parent() *Scope { return s.parent }

// LookupVariable walks the parent chain and returns the first binding
// (scalar or array) with the given name.
func (s *Scope) LookupVariable(name string) (VarBinding, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		for _, v := range sc.varDefs {
			if v.BindingName() == name {
				return v, true
			}
		}
	}
	return nil, false
}

// LookupFunction walks the parent chain; within one scope the most
// recently inserted definition with the name wins.
func (s *Scope) LookupFunction(name string) (*FunctionDef, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		for i := len(sc.funcDefs) - 1; i >= 0; i-- {
			if f := sc.funcDefs[i]; f.Name == name {
				return f, true
			}
		}
	}
	return nil, false
}

// LookupClass walks the parent chain; within one scope the most
// recently inserted definition with the name wins.
func (s *Scope) LookupClass(name string) (*ClassDef, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		for i := len(sc.classDefs) - 1; i >= 0; i-- {
			if c := sc.classDefs[i]; c.Name == name {
				return c, true
			}
		}
	}
	return nil, false
}

func (s *Scope) LookupImport(name string) (*Import, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		for _, i := range sc.imports {
			if i.Name == name {
				return i, true
			}
		}
	}
	return nil, false
}

// InsertVariable adds a binding to the LOCAL scope, replacing any
// existing local binding with the same name (shadowing an outer
// binding is legal and does not touch the outer one).
func (s *Scope) InsertVariable(def VarBinding) {
	for i, v := range s.varDefs {
		if v.BindingName() == def.BindingName() {
			s.varDefs[i] = def
			return
		}
	}
	s.varDefs = append(s.varDefs, def)
}

// InsertFunction appends unconditionally: later definitions shadow
// earlier ones in lookup traversal order without removing them.
func (s *Scope) InsertFunction(def *FunctionDef) {
	s.funcDefs = append(s.funcDefs, def)
}

func (s *Scope) InsertClass(def *ClassDef) {
	s.classDefs = append(s.classDefs, def)
}

// UpdateVariable walks up the parent chain to find an existing binding
// by name and mutates it in place, so that writes from a nested scope
// are observed by a subsequent read in the defining (outer) scope. It
// fails with NameError if no such binding exists anywhere in the chain.
func (s *Scope) UpdateVariable(name string, def VarBinding) error {
	for sc := s; sc != nil; sc = sc.parent {
		for i, v := range sc.varDefs {
			if v.BindingName() == name {
				sc.varDefs[i] = def
				return nil
			}
		}
	}
	return steelerr.New(steelerr.NameError, "undefined variable %q", name)
}

// UpdateImport replaces the local import entry with the given name, or
// appends it if absent.
func (s *Scope) UpdateImport(entry *Import) {
	for i, imp := range s.imports {
		if imp.Name == entry.Name {
			s.imports[i] = entry
			return
		}
	}
	s.imports = append(s.imports, entry)
}
