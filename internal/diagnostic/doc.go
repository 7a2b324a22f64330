// Package diagnostic provides the error values reported while mapping a
// Define-XML document.
//
// Key capabilities:
//   - Sentinel errors for each failure class, matched with errors.Is
//   - Literal errors naming the element, field and offending value
//   - Shape errors naming where the parsed tree broke the expected layout
package diagnostic
