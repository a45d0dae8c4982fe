/*
Package hierarchy resolves the program, course and class a vault document belongs to.

Marker documents declare a level of the hierarchy in their header, e.g.

	---
	type: course-index
	title: Accounting
	---

The resolver walks the ancestor directories of a document up to the vault root and
collects the markers found there. Which marker wins for a level is decided by a Policy:
by default the outermost program marker and the nearest course and class markers.
Levels without any marker are inferred from the directory names of the document path.
*/
package hierarchy
