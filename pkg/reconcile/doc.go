/*
Package reconcile keeps the hierarchy fields of vault documents (program, course, class)
consistent with the hierarchy resolved from their location.

An Engine reconciles one document at a time. A Walker runs the engine over a directory
tree and aggregates results into Stats. Each walk uses its own marker cache, so marker
documents are read once per directory and per walk.

Marker documents are never rewritten. Fields unrelated to the hierarchy, and the body of
documents, are preserved byte for byte.
*/
package reconcile
