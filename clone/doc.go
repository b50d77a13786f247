// Package clone builds indirect.Copier values for the common duplication
// strategies, so call sites of indirect.AdoptWithPolicies read as intent:
//
//	indirect.AdoptWithPolicies(rec, clone.Deep[record](), closeRecord)
//
// Shallow and ByCloner mirror the two halves of the default copy policy,
// Func lifts an existing pure copy function, and Deep walks the value with
// reflection for types whose referenced state has no hand-written copy.
package clone
