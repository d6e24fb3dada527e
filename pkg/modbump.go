package modbump

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"
)

// DefaultPath is the file bumped when no path is given on the command line.
const DefaultPath = "Mods/TweaksAndStuff/modinfo.json"

const versionKey = "version"

// VersionMeta holds metadata about a bump.
type VersionMeta struct {
	Path       string // The document that was read.
	OldVersion string // The version string as found in the document.
	NewVersion string // The version string after bumping the patch component.
	Written    bool   // False for dry runs.
}

// Bump increments the patch component of the "version" field in the JSON
// document at path, rewrites the document and returns the new version.
func Bump(path string) (string, error) {
	meta, err := Run(path)
	if err != nil {
		return "", err
	}
	return meta.NewVersion, nil
}

// Run bumps the patch version of the document at path and writes it back.
// Every other member of the document is preserved, including key order.
// The file is overwritten in place; nothing is written when an error is
// returned.
func Run(path string) (VersionMeta, error) {
	meta, data, perm, err := prepare(path)
	if err != nil {
		return meta, err
	}

	if err := os.WriteFile(path, data, perm); err != nil {
		return meta, fmt.Errorf("failed to write file: %w", err)
	}
	meta.Written = true
	logger.Debug("wrote document", "path", path, "bytes", len(data))
	return meta, nil
}

// DryRun computes the bump Run would perform without modifying the file.
func DryRun(path string) (VersionMeta, error) {
	meta, _, _, err := prepare(path)
	return meta, err
}

// prepare reads the document, bumps its version in memory and renders the
// bytes that Run would write.
func prepare(path string) (VersionMeta, []byte, fs.FileMode, error) {
	meta := VersionMeta{Path: path}

	doc, perm, err := readDocument(path)
	if err != nil {
		return meta, nil, 0, err
	}

	raw, ok := doc.Get(versionKey)
	if !ok {
		return meta, nil, 0, fmt.Errorf("%w: %q key not found in %s", ErrMissingVersion, versionKey, path)
	}
	if raw.Kind != KindString {
		return meta, nil, 0, &FormatError{
			Raw:    rawJSON(raw),
			Reason: fmt.Sprintf("expected a string, got %s", raw.Kind),
		}
	}
	meta.OldVersion = raw.Str

	current, err := ParseVersion(raw.Str)
	if err != nil {
		return meta, nil, 0, err
	}
	next, err := current.BumpPatch()
	if err != nil {
		return meta, nil, 0, err
	}
	meta.NewVersion = next.String()
	logger.Debug("bumped version", "old", meta.OldVersion, "new", meta.NewVersion)

	doc.Set(versionKey, StringValue(meta.NewVersion))
	data, err := doc.MarshalIndent()
	if err != nil {
		return meta, nil, 0, fmt.Errorf("encoding %s: %w", path, err)
	}
	return meta, data, perm, nil
}

// readDocument opens and decodes path, returning the permission bits the
// file should be rewritten with.
func readDocument(path string) (*Object, fs.FileMode, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, 0, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, 0, fmt.Errorf("failed to read file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read file: %w", err)
	}
	if info.IsDir() {
		return nil, 0, fmt.Errorf("failed to read file: %s is a directory", path)
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read file: %w", err)
	}
	if !utf8.Valid(data) {
		return nil, 0, fmt.Errorf("%w: %s: invalid UTF-8 content", ErrParse, path)
	}

	doc, err := DecodeDocument(bytes.NewReader(data))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}
	logger.Debug("read document", "path", path, "keys", doc.Len())
	return doc, info.Mode().Perm(), nil
}

// rawJSON renders v compactly for error messages.
func rawJSON(v Value) string {
	var buf bytes.Buffer
	if err := writeValue(&buf, v); err != nil {
		return v.Kind.String()
	}
	return buf.String()
}
