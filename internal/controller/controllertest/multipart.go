// Package controllertest holds request builders shared by the controller tests.
package controllertest

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
)

// GenerateRequest builds a multipart upload request. Files with nil content
// are left out of the form.
func GenerateRequest(target string, pdf, preview []byte, fields map[string]string) (*http.Request, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	for name, content := range map[string][]byte{"pdf": pdf, "preview": preview} {
		if content == nil {
			continue
		}
		part, err := w.CreateFormFile(name, name+".bin")
		if err != nil {
			return nil, err
		}
		if _, err := part.Write(content); err != nil {
			return nil, err
		}
	}

	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, err
		}
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())

	return req, nil
}
