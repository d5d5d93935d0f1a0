// SPDX-License-Identifier: MIT

// Package hierarchy models nominal class hierarchies as directed acyclic
// graphs and exposes their classes as typesys.Class values, so fundamental
// types can be ordered by declared subclassing instead of Go assignability.
//
// 🚀 What is a hierarchy?
//
//	A set of class names with "extends" edges from subclass to superclass:
//
//	        Entity
//	        /    \
//	    Person  Place
//	       |
//	    Student
//
//	Extends is reflexive and transitive: Student extends Person and Entity.
//
// ✨ Key features:
//   - Acyclic by construction: supers must exist before a class names them.
//   - Optional implicit root (WithRoot) extended by every parentless class.
//   - Deterministic enumeration: Names() sorted, TopologicalOrder() supers first.
//   - Thread-safe: one sync.RWMutex guards classes and edges.
//
// ⚙️ Usage:
//
//	h := hierarchy.New(hierarchy.WithRoot("Entity"))
//	person, _ := h.Declare("Person")
//	student, _ := h.Declare("Student", "Person")
//
//	ts := typesys.Default()
//	P := ts.Fundamental(person, "")
//	S := ts.Fundamental(student, "")
//	ok, _ := typesys.SubtypeOf(S, P) // true
//
// Membership:
//
//	A value belongs to a class when it implements Instance and its ClassName
//	extends the class.
//
// Complexity:
//
//   - Declare: O(k) for k supers.
//   - Extends / Ancestors: O(V + E) depth-first search.
//   - TopologicalOrder: O(V + E).
package hierarchy
