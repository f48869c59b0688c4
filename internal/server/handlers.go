// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pdiddy/pdfbridge/internal/convert"
	"github.com/pdiddy/pdfbridge/internal/pagerange"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// pdfInfo reads metadata from a single uploaded PDF.
func (s *Server) pdfInfo(c *gin.Context) {
	file, err := c.FormFile("pdf")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "msg": `upload a PDF file in field "pdf"`})
		return
	}

	tmpDir, err := os.MkdirTemp("", "pdfbridge-info-*")
	if err != nil {
		s.log.WithError(err).Error("creating temp directory")
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "msg": "internal error"})
		return
	}
	defer os.RemoveAll(tmpDir)

	pdfPath := filepath.Join(tmpDir, sanitizeFilename(file.Filename))
	if err := c.SaveUploadedFile(file, pdfPath); err != nil {
		s.log.WithError(err).Error("saving upload")
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "msg": "internal error"})
		return
	}

	info, err := s.info.Info(pdfPath)
	if err != nil {
		s.log.WithError(err).Errorf("reading PDF info: %s", file.Filename)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "msg": "failed to read PDF info"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": info})
}

// convertSingle converts one uploaded PDF and returns the DOCX as an
// attachment. An unparseable page range converts the whole document.
func (s *Server) convertSingle(c *gin.Context) {
	file, err := c.FormFile("pdf")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "msg": `upload a PDF file in field "pdf"`})
		return
	}
	pages, _ := pagerange.Parse(c.PostForm("range"))

	tmpDir, err := os.MkdirTemp("", "pdfbridge-single-*")
	if err != nil {
		s.log.WithError(err).Error("creating temp directory")
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "msg": "internal error"})
		return
	}
	defer os.RemoveAll(tmpDir)

	pdfPath := filepath.Join(tmpDir, sanitizeFilename(file.Filename))
	if err := c.SaveUploadedFile(file, pdfPath); err != nil {
		s.log.WithError(err).Error("saving upload")
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "msg": "internal error"})
		return
	}

	docxPath := convert.DocxPath(pdfPath, tmpDir)
	if !s.conv.ConvertFile(pdfPath, docxPath, pages) {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "msg": "conversion failed"})
		return
	}

	c.Writer.Header().Set("Content-Type", docxContentType)
	c.FileAttachment(docxPath, filepath.Base(docxPath))
}

// convertBatch converts every uploaded PDF with a shared page range
// and returns the results as a flat zip archive. Non-PDF uploads are
// skipped silently; the request fails only when nothing converts.
func (s *Server) convertBatch(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil || len(form.File["pdfs"]) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "msg": `upload at least one PDF file in field "pdfs"`})
		return
	}
	pages, _ := pagerange.Parse(c.PostForm("range"))

	tmpDir, err := os.MkdirTemp("", "pdfbridge-batch-*")
	if err != nil {
		s.log.WithError(err).Error("creating temp directory")
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "msg": "internal error"})
		return
	}
	defer os.RemoveAll(tmpDir)

	outDir := filepath.Join(tmpDir, "out")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		s.log.WithError(err).Error("creating output directory")
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "msg": "internal error"})
		return
	}

	var jobs []convert.Job
	for _, fh := range form.File["pdfs"] {
		if !strings.EqualFold(filepath.Ext(fh.Filename), ".pdf") {
			continue
		}
		pdfPath := filepath.Join(tmpDir, sanitizeFilename(fh.Filename))
		if err := c.SaveUploadedFile(fh, pdfPath); err != nil {
			s.log.WithError(err).Errorf("saving upload %s", fh.Filename)
			continue
		}
		jobs = append(jobs, convert.Job{
			Source: pdfPath,
			Dest:   convert.DocxPath(pdfPath, outDir),
			Pages:  pages,
		})
	}

	result := s.conv.RunJobs(jobs, s.cfg.Convert.Workers)
	if result.Converted == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "msg": "no files were converted"})
		return
	}

	buf, err := zipDir(outDir)
	if err != nil {
		s.log.WithError(err).Error("packaging archive")
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "msg": "internal error"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="converted_docx.zip"`)
	c.Data(http.StatusOK, "application/zip", buf.Bytes())
}

// sanitizeFilename reduces an uploaded filename to a safe basename.
// Path components are dropped and anything outside ASCII letters,
// digits, dot, dash, and underscore becomes an underscore. A name
// with nothing left falls back to "input.pdf".
func sanitizeFilename(name string) string {
	name = filepath.Base(filepath.Clean(name))
	// Browsers on Windows may send backslash-separated paths.
	if i := strings.LastIndexByte(name, '\\'); i >= 0 {
		name = name[i+1:]
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteByte(byte(r))
		default:
			b.WriteByte('_')
		}
	}

	out := strings.Trim(b.String(), "._")
	if out == "" {
		return "input.pdf"
	}
	return out
}
