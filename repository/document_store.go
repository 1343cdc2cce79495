package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// ErrDocumentNotFound is returned by a DocumentStore when nothing is stored under a name
var ErrDocumentNotFound = errors.New("document not found")

// DocumentStore persists named JSON documents. Writes replace the whole document;
// there is no locking between writers, so the last write wins.
type DocumentStore interface {
	// Read returns the raw document, or ErrDocumentNotFound
	Read(ctx context.Context, name string) ([]byte, error)

	// Write replaces the stored document
	Write(ctx context.Context, name string, data []byte) error
}

// LoadDocument reads and decodes a document. A missing or unparsable document yields
// the zero value of T and no error; any other storage failure is returned.
func LoadDocument[T any](ctx context.Context, store DocumentStore, name string) (T, error) {
	var doc T

	data, err := store.Read(ctx, name)
	if errors.Is(err, ErrDocumentNotFound) {
		log.WithField("document", name).Debug("Document not stored yet, treating it as empty")
		return doc, nil
	}
	if err != nil {
		return doc, fmt.Errorf("failed to read document %s: %w", name, err)
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		log.WithFields(log.Fields{
			"document": name,
			"error":    err,
		}).Warn("Document is unparsable, treating it as empty")
		var empty T
		return empty, nil
	}

	return doc, nil
}

// SaveDocument encodes a document as 4-space indented JSON and writes it
func SaveDocument(ctx context.Context, store DocumentStore, name string, doc any) error {
	data, err := encodeDocument(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document %s: %w", name, err)
	}

	if err := store.Write(ctx, name, data); err != nil {
		return fmt.Errorf("failed to write document %s: %w", name, err)
	}

	return nil
}

func encodeDocument(doc any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
