// Package tree defines the in-memory filesystem tree.
//
// A Node is either a *File or a *Directory. Node is a closed interface: the
// marker method is unexported, so no other package can add variants, and the
// variant-specific accessors live only on the concrete types. Callers inspect
// a node with a type switch, Kind, AsFile or AsDirectory.
//
// Trees are built bottom-up through NewFile and NewDirectory and are never
// mutated afterwards.
package tree
