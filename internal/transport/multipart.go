// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

package transport

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

// MultipartPayload assembles a multipart/form-data request body. The client
// never sets an explicit JSON content type for these; the multipart writer
// supplies the content type with its boundary.
type MultipartPayload struct {
	buf    bytes.Buffer
	writer *multipart.Writer
	err    error
}

// NewMultipartPayload returns an empty multipart payload builder.
func NewMultipartPayload() *MultipartPayload {
	p := &MultipartPayload{}
	p.writer = multipart.NewWriter(&p.buf)
	return p
}

// AddField appends a plain form field. Errors are deferred to Close.
func (p *MultipartPayload) AddField(name, value string) *MultipartPayload {
	if p.err != nil {
		return p
	}
	p.err = p.writer.WriteField(name, value)
	return p
}

// AddFile appends a file part read from r. Errors are deferred to Close.
func (p *MultipartPayload) AddFile(fieldName, fileName string, r io.Reader) *MultipartPayload {
	if p.err != nil {
		return p
	}
	part, err := p.writer.CreateFormFile(fieldName, fileName)
	if err != nil {
		p.err = err
		return p
	}
	if _, err := io.Copy(part, r); err != nil {
		p.err = err
	}
	return p
}

// Close finalizes the body and returns the reader and content type
// (including the boundary) for the request.
func (p *MultipartPayload) Close() (io.Reader, string, error) {
	if p.err != nil {
		return nil, "", fmt.Errorf("build multipart payload: %w", p.err)
	}
	if err := p.writer.Close(); err != nil {
		return nil, "", fmt.Errorf("finalize multipart payload: %w", err)
	}
	return &p.buf, p.writer.FormDataContentType(), nil
}
