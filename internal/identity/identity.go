// Package identity derives stable identifiers for tree nodes.
package identity

import (
	"strings"

	"github.com/google/uuid"
)

// NamespaceNodeIdentity is the UUID namespace for node identities, derived
// from "ufind/node-identity/v1" under the standard URL namespace.
var NamespaceNodeIdentity = uuid.NewSHA1(uuid.NameSpaceURL, []byte("ufind/node-identity/v1"))

// NodeID returns a deterministic UUID v5 for an absolute tree path.
//
// The same path always yields the same ID, across runs and across trees, so
// IDs printed by `ufind find --json` can be compared between invocations.
// A missing leading slash is added before hashing; case is preserved because
// paths are case sensitive.
//
// Examples:
//   - "/examples/learn/book1.pdf" -> uuid_v5(namespace, "/examples/learn/book1.pdf")
//   - "examples/learn/book1.pdf"  -> same as above
func NodeID(path string) uuid.UUID {
	return uuid.NewSHA1(NamespaceNodeIdentity, []byte(normalizePath(path)))
}

func normalizePath(path string) string {
	if !strings.HasPrefix(path, "/") {
		return "/" + path
	}
	return path
}
