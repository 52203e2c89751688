// SPDX-License-Identifier: MPL-2.0

package sniff

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

// Archive kinds recognized by the sniffer.
const (
	// KindUnknown indicates the content type could not be determined.
	KindUnknown Kind = iota

	// KindTar indicates an uncompressed POSIX/GNU tar archive.
	KindTar

	// KindGzip indicates gzip-compressed content.
	KindGzip

	// KindBzip2 indicates bzip2-compressed content.
	KindBzip2

	// KindZip indicates a zip archive.
	KindZip

	// KindXz indicates xz-compressed content.
	KindXz

	// KindZstd indicates zstd-compressed content.
	KindZstd
)

// tar stores its magic deep in the header: "ustar" at offset 257. Reading
// this many bytes is enough for every signature we check.
const (
	tarMagicOffset = 257
	sniffLen       = 512
)

// Kind identifies a detected archive content type.
type Kind int

// String returns the short name of the kind.
func (k Kind) String() string {
	switch k {
	case KindTar:
		return "tar"
	case KindGzip:
		return "gzip"
	case KindBzip2:
		return "bzip2"
	case KindZip:
		return "zip"
	case KindXz:
		return "xz"
	case KindZstd:
		return "zstd"
	default:
		return "unknown"
	}
}

// MIME returns the MIME type reported for the kind. KindUnknown maps to
// application/octet-stream.
func (k Kind) MIME() string {
	switch k {
	case KindTar:
		return "application/x-tar"
	case KindGzip:
		return "application/x-gzip"
	case KindBzip2:
		return "application/x-bzip2"
	case KindZip:
		return "application/zip"
	case KindXz:
		return "application/x-xz"
	case KindZstd:
		return "application/zstd"
	default:
		return "application/octet-stream"
	}
}

// extensions maps filename suffixes to kinds. Longest suffix wins, so
// ".tar.gz" is checked before ".gz".
var extensions = []struct {
	suffix string
	kind   Kind
}{
	{".tar.gz", KindGzip},
	{".tar.bz2", KindBzip2},
	{".tar.xz", KindXz},
	{".tar.zst", KindZstd},
	{".tgz", KindGzip},
	{".tbz2", KindBzip2},
	{".txz", KindXz},
	{".tar", KindTar},
	{".gz", KindGzip},
	{".bz2", KindBzip2},
	{".zip", KindZip},
	{".xz", KindXz},
	{".zst", KindZstd},
}

// DetectBytes sniffs the content type from the first bytes of a stream.
// Inputs shorter than a signature never match it; short inputs are safe.
func DetectBytes(b []byte) Kind {
	switch {
	case hasPrefix(b, 0x1F, 0x8B):
		return KindGzip
	case bytes.HasPrefix(b, []byte("BZh")):
		return KindBzip2
	case hasPrefix(b, 0xFD, 0x37, 0x7A, 0x58, 0x5A, 0x00):
		return KindXz
	case hasPrefix(b, 0x28, 0xB5, 0x2F, 0xFD):
		return KindZstd
	case isZip(b):
		return KindZip
	case isTar(b):
		return KindTar
	default:
		return KindUnknown
	}
}

// DetectReader sniffs the content type from r, consuming at most sniffLen
// bytes.
func DetectReader(r io.Reader) (Kind, error) {
	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return KindUnknown, fmt.Errorf("failed to read content header: %w", err)
	}
	return DetectBytes(buf[:n]), nil
}

// DetectFile sniffs path by magic bytes first, falling back to the filename
// extension when the content is inconclusive. An unrecognized file yields
// KindUnknown with a nil error; only I/O failures are errors.
func DetectFile(path string) (Kind, error) {
	f, err := os.Open(path)
	if err != nil {
		return KindUnknown, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	kind, err := DetectReader(f)
	if err != nil {
		return KindUnknown, err
	}
	if kind != KindUnknown {
		return kind, nil
	}
	return DetectExtension(path), nil
}

// DetectExtension maps the filename suffix to a kind. Longest suffix wins.
func DetectExtension(path string) Kind {
	name := strings.ToLower(path)
	for _, ext := range extensions {
		if strings.HasSuffix(name, ext.suffix) {
			return ext.kind
		}
	}
	return KindUnknown
}

func hasPrefix(b []byte, magic ...byte) bool {
	return bytes.HasPrefix(b, magic)
}

// isZip matches the local-file, empty-archive, and spanned-archive
// signatures (PK\x03\x04, PK\x05\x06, PK\x07\x08).
func isZip(b []byte) bool {
	if len(b) < 4 || b[0] != 'P' || b[1] != 'K' {
		return false
	}
	switch {
	case b[2] == 0x03 && b[3] == 0x04,
		b[2] == 0x05 && b[3] == 0x06,
		b[2] == 0x07 && b[3] == 0x08:
		return true
	}
	return false
}

// isTar checks for "ustar" at the fixed header offset. Both the POSIX
// ("ustar\x00") and GNU ("ustar ") forms share the five-byte prefix.
func isTar(b []byte) bool {
	if len(b) < tarMagicOffset+5 {
		return false
	}
	return bytes.Equal(b[tarMagicOffset:tarMagicOffset+5], []byte("ustar"))
}
