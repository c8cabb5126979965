package application

import (
	"arbeit/pkg/serrors"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// resumeTypes are the accepted résumé formats and their canonical extension.
var resumeTypes = []struct { //nolint: gochecknoglobals
	mime string
	ext  string
}{
	{"application/pdf", ".pdf"},
	{"application/msword", ".doc"},
	{"application/vnd.openxmlformats-officedocument.wordprocessingml.document", ".docx"},
}

// sniffResume checks the content of an upload and returns its MIME type and a
// safe file name.
func sniffResume(upload *ResumeUpload, maxBytes int64) (string, string, error) {
	if int64(len(upload.Data)) > maxBytes {
		return "", "", serrors.With(serrors.ErrBadRequest, "resume must be at most %d MB", maxBytes>>20)
	}

	detected := mimetype.Detect(upload.Data)
	for _, t := range resumeTypes {
		if !detected.Is(t.mime) {
			continue
		}

		name := filepath.Base(strings.ReplaceAll(upload.FileName, `\`, "/"))
		if name == "." || name == "/" || name == "" {
			name = "resume"
		}
		if !strings.EqualFold(filepath.Ext(name), t.ext) {
			name = strings.TrimSuffix(name, filepath.Ext(name)) + t.ext
		}

		return t.mime, name, nil
	}

	return "", "", serrors.With(serrors.ErrBadRequest, "resume must be a PDF, DOC or DOCX file, got %s", detected.String())
}
