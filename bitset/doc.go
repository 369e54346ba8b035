// Package bitset provides a fixed-capacity set of bit indices with O(1)
// insert, remove and "return any member".
//
// The index space is partitioned into 64-bit limbs. Limbs holding at least
// one set bit are chained into a doubly linked list, so Any finds a member
// by reading the head limb's lowest set bit instead of scanning empty limbs.
// This is what makes the zero search of the matching engine (package kuhn)
// sub-quadratic between cover changes.
//
// Operations:
//
//   - New(size)  — allocate ⌈size/64⌉ zeroed limbs; O(size/64)
//   - Set(i)     — insert index i; O(1)
//   - Unset(i)   — remove index i; O(1)
//   - Any()      — any current member, or NoBit if empty; O(1), pure
//
// Both Set and Unset detect the zero↔nonzero limb transition with a single
// before/after comparison and splice the limb into or out of the list; they
// never rescan a limb's bits.
//
// The set is not safe for concurrent use; each solver run owns its own
// instance.
//
// Complexity:
//
//   - Time:   O(1) per operation
//   - Memory: O(size/64)
package bitset
