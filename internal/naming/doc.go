// Package naming rewrites the keys of a parsed Define-XML tree into the
// lower-camel-case names the mappers read.
//
// Key functions:
//   - StripNamespace: drops the def: and arm: prefixes
//   - NormalizeKey: rewrites one key to lower camel case
//   - Normalize: applies both rewrites to every key of a tree
package naming
