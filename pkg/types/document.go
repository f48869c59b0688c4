// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the pdfbridge service.
// Implements: prd003-inspection (DocumentInfo, R2.1-R2.3);
//
//	prd001-conversion, prd004-upload-api (Config sections).
//
// See docs/ARCHITECTURE.md § Data Structures.
package types

// DocumentInfo is a read-only metadata snapshot of a PDF document.
// The JSON keys match the wire shape of the /api/pdf-info response,
// so renaming a field here is an API change.
type DocumentInfo struct {
	// Pages is the number of pages in the document.
	Pages int `json:"pages" yaml:"pages"`

	// Title is the document title from the PDF info dictionary, or "".
	Title string `json:"title" yaml:"title"`

	// Author is the document author, or "".
	Author string `json:"author" yaml:"author"`

	// Subject is the document subject, or "".
	Subject string `json:"subject" yaml:"subject"`

	// Creator names the tool that produced the document, or "".
	Creator string `json:"creator" yaml:"creator"`

	// FileSize is the on-disk size formatted as "12.34 MB".
	FileSize string `json:"file_size" yaml:"file_size"`
}
