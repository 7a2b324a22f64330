// Package xmltree turns XML text into a loosely typed tree and exposes the
// single typed view the mapping layer reads it through.
//
// The tree follows a fixed convention:
//   - every element's attributes live in a Mapping under the key "$";
//   - element children are always Sequences, even when singular;
//   - text content is stored under "value" when the element also carries
//     attributes or children, otherwise the element is a bare Scalar.
//
// Key functions:
//   - Parse: builds the tree from XML text
//   - Element: read-only view over one parsed element
package xmltree
