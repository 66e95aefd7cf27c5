package web

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sheetbind/sheetbind/internal/catalog"
	"github.com/sheetbind/sheetbind/internal/logging"
)

// handleListSchemas returns the registered sheet definitions.
func (s *Server) handleListSchemas(w http.ResponseWriter, r *http.Request) {
	defs := catalog.All()
	infos := make([]catalog.Info, len(defs))
	for i, def := range defs {
		infos[i] = def.Info
	}
	writeJSON(w, http.StatusOK, infos)
}

// handleDownloadTemplate returns a blank workbook template for a schema:
// header row, required-column marking, and choice drop lists.
func (s *Server) handleDownloadTemplate(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "schemaKey")
	if key == "" {
		writeError(w, http.StatusBadRequest, "missing schema key")
		return
	}

	def, ok := catalog.Get(key)
	if !ok {
		writeError(w, http.StatusNotFound, "schema not found")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s_template.xlsx"`, key))

	if err := def.WriteTemplate(w); err != nil {
		// Headers are already written; all we can do is log.
		logging.FromContext(r.Context()).Error("template write failed", "schema", key, "error", err)
	}
}

// handleImport decodes an uploaded workbook against a registered schema and
// returns the import summary: decoded records, per-row validation reports,
// and whether the template matched at all.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "schemaKey")
	if key == "" {
		writeError(w, http.StatusBadRequest, "missing schema key")
		return
	}

	def, ok := catalog.Get(key)
	if !ok {
		writeError(w, http.StatusNotFound, "schema not found")
		return
	}

	maxSize := s.cfg.Import.MaxFileSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		writeError(w, http.StatusBadRequest, "file too large or invalid form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close()

	importID := uuid.NewString()
	logger := logging.WithFields(r.Context(),
		"import_id", importID,
		"schema", key,
		"file", header.Filename,
	)
	logger.Info("import started", "size", header.Size)

	summary, err := def.Import(file)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if !summary.TemplateValid {
		logger.Warn("import rejected: header does not match template")
	} else {
		logger.Info("import finished",
			"records", summary.Imported,
			"invalid_rows", len(summary.Reports),
		)
	}

	writeJSON(w, http.StatusOK, struct {
		ImportID string `json:"importId"`
		*catalog.ImportSummary
	}{ImportID: importID, ImportSummary: summary})
}
