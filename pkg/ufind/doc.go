// Package ufind holds the public contract shared by the ufind packages:
// sentinel errors, exit codes and the Logger interface.
package ufind
