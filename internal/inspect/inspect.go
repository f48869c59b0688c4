// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package inspect reads PDF page counts and metadata without
// converting anything.
// Implements: prd003-inspection (R1, R2);
//
//	docs/ARCHITECTURE § Inspection.
package inspect

import (
	"fmt"
	"os"
	"time"

	"github.com/klippa-app/go-pdfium"
	"github.com/klippa-app/go-pdfium/references"
	"github.com/klippa-app/go-pdfium/requests"
	"github.com/klippa-app/go-pdfium/webassembly"
	"github.com/pkg/errors"

	"github.com/pdiddy/pdfbridge/pkg/types"
)

// instanceTimeout bounds the wait for a pdfium worker. Concurrent
// callers queue on the single-worker pool.
const instanceTimeout = 30 * time.Second

// Inspector reads document properties through an in-process pdfium
// build. Safe for concurrent use; each call borrows a pooled worker.
type Inspector struct {
	pool pdfium.Pool
}

// New boots the pdfium webassembly pool. Call Close when done.
func New() (*Inspector, error) {
	pool, err := webassembly.Init(webassembly.Config{
		MinIdle:  1,
		MaxIdle:  1,
		MaxTotal: 1,
	})
	if err != nil {
		return nil, errors.Wrap(err, "initializing pdfium")
	}
	return &Inspector{pool: pool}, nil
}

// Close shuts down the pdfium pool.
func (i *Inspector) Close() error {
	return i.pool.Close()
}

// Info reads the page count, standard metadata tags, and file size of
// the PDF at path. Missing metadata tags come back as empty strings;
// an unreadable or malformed file is an error.
func (i *Inspector) Info(path string) (*types.DocumentInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading PDF")
	}

	instance, err := i.pool.GetInstance(instanceTimeout)
	if err != nil {
		return nil, errors.Wrap(err, "acquiring pdfium instance")
	}
	defer instance.Close()

	doc, err := instance.OpenDocument(&requests.OpenDocument{
		FilePath: &path,
	})
	if err != nil {
		return nil, errors.Wrap(err, "opening PDF document")
	}
	defer instance.FPDF_CloseDocument(&requests.FPDF_CloseDocument{
		Document: doc.Document,
	})

	pageCount, err := instance.FPDF_GetPageCount(&requests.FPDF_GetPageCount{
		Document: doc.Document,
	})
	if err != nil {
		return nil, errors.Wrap(err, "reading page count")
	}

	return &types.DocumentInfo{
		Pages:    pageCount.PageCount,
		Title:    metaText(instance, doc.Document, "Title"),
		Author:   metaText(instance, doc.Document, "Author"),
		Subject:  metaText(instance, doc.Document, "Subject"),
		Creator:  metaText(instance, doc.Document, "Creator"),
		FileSize: fmt.Sprintf("%.2f MB", float64(stat.Size())/(1024*1024)),
	}, nil
}

// metaText reads one metadata tag, treating any failure as an unset
// tag.
func metaText(instance pdfium.Pdfium, doc references.FPDF_DOCUMENT, tag string) string {
	resp, err := instance.FPDF_GetMetaText(&requests.FPDF_GetMetaText{
		Document: doc,
		Tag:      tag,
	})
	if err != nil {
		return ""
	}
	return resp.Value
}
