// SPDX-License-Identifier: MIT

package hierarchy

import "github.com/katalvlaran/lvtype/typesys"

// Instance is implemented by values that declare their class by name.
type Instance interface {
	ClassName() string
}

// Class is a declared class of a Hierarchy. It implements typesys.Class.
type Class struct {
	h    *Hierarchy
	name string
}

var _ typesys.Class = (*Class)(nil)

// Name returns the class name.
func (c *Class) Name() string { return c.name }

// Hierarchy returns the owning hierarchy.
func (c *Class) Hierarchy() *Hierarchy { return c.h }

// String implements fmt.Stringer.
func (c *Class) String() string { return c.name }

// AssignableTo reports whether c extends other. Classes of different
// hierarchies are unrelated, as are Go classes.
func (c *Class) AssignableTo(other typesys.Class) bool {
	o, ok := other.(*Class)

	return ok && o.h == c.h && c.h.Extends(c.name, o.name)
}

// IsInstance reports whether v is an Instance whose class extends c.
func (c *Class) IsInstance(v any) bool {
	inst, ok := v.(Instance)

	return ok && c.h.Extends(inst.ClassName(), c.name)
}
