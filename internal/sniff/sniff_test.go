// SPDX-License-Identifier: MPL-2.0

package sniff

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// tarHeader builds a minimal buffer carrying the ustar magic at offset 257.
func tarHeader(magic string) []byte {
	b := make([]byte, 512)
	copy(b[257:], magic)
	return b
}

func TestDetectBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
		want Kind
	}{
		{"gzip", []byte{0x1F, 0x8B, 0x08, 0x00}, KindGzip},
		{"bzip2", []byte("BZh91AY&SY"), KindBzip2},
		{"zip local file", []byte{'P', 'K', 0x03, 0x04, 0x14}, KindZip},
		{"zip empty archive", []byte{'P', 'K', 0x05, 0x06}, KindZip},
		{"zip spanned archive", []byte{'P', 'K', 0x07, 0x08}, KindZip},
		{"xz", []byte{0xFD, 0x37, 0x7A, 0x58, 0x5A, 0x00}, KindXz},
		{"zstd", []byte{0x28, 0xB5, 0x2F, 0xFD}, KindZstd},
		{"posix tar", tarHeader("ustar\x00"), KindTar},
		{"gnu tar", tarHeader("ustar  "), KindTar},
		{"plain text", []byte("hello world"), KindUnknown},
		{"empty", nil, KindUnknown},
		{"single byte", []byte{0x1F}, KindUnknown},
		{"pk but not zip", []byte{'P', 'K', 0xFF, 0xFF}, KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := DetectBytes(tt.data); got != tt.want {
				t.Errorf("DetectBytes(%s) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestDetectBytes_ShortTarBuffer(t *testing.T) {
	t.Parallel()

	// A truncated header that ends before the magic offset must not panic.
	if got := DetectBytes(make([]byte, 100)); got != KindUnknown {
		t.Errorf("DetectBytes(short buffer) = %v, want KindUnknown", got)
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want string
	}{
		{KindTar, "tar"},
		{KindGzip, "gzip"},
		{KindBzip2, "bzip2"},
		{KindZip, "zip"},
		{KindXz, "xz"},
		{KindZstd, "zstd"},
		{KindUnknown, "unknown"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}

func TestKind_MIME(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want string
	}{
		{KindTar, "application/x-tar"},
		{KindGzip, "application/x-gzip"},
		{KindBzip2, "application/x-bzip2"},
		{KindZip, "application/zip"},
		{KindXz, "application/x-xz"},
		{KindZstd, "application/zstd"},
		{KindUnknown, "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			if got := tt.kind.MIME(); got != tt.want {
				t.Errorf("Kind(%v).MIME() = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}

func TestDetectExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want Kind
	}{
		{"backup.tar", KindTar},
		{"backup.tar.gz", KindGzip},
		{"backup.tgz", KindGzip},
		{"backup.tar.bz2", KindBzip2},
		{"backup.tbz2", KindBzip2},
		{"backup.tar.xz", KindXz},
		{"backup.txz", KindXz},
		{"backup.tar.zst", KindZstd},
		{"site.zip", KindZip},
		{"dump.sql.gz", KindGzip},
		{"ARCHIVE.ZIP", KindZip},
		{"README.md", KindUnknown},
		{"tarball", KindUnknown},
		{"", KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			if got := DetectExtension(tt.path); got != tt.want {
				t.Errorf("DetectExtension(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestDetectReader(t *testing.T) {
	t.Parallel()

	kind, err := DetectReader(bytes.NewReader([]byte{0x1F, 0x8B}))
	if err != nil {
		t.Fatalf("DetectReader: %v", err)
	}
	if kind != KindGzip {
		t.Errorf("DetectReader = %v, want KindGzip", kind)
	}

	kind, err = DetectReader(bytes.NewReader(nil))
	if err != nil {
		t.Fatalf("DetectReader(empty): %v", err)
	}
	if kind != KindUnknown {
		t.Errorf("DetectReader(empty) = %v, want KindUnknown", kind)
	}
}

func TestDetectFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	write := func(name string, data []byte) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatalf("WriteFile(%s): %v", name, err)
		}
		return path
	}

	gzPath := write("data.bin", []byte{0x1F, 0x8B, 0x08, 0x00})
	kind, err := DetectFile(gzPath)
	if err != nil {
		t.Fatalf("DetectFile: %v", err)
	}
	if kind != KindGzip {
		t.Errorf("magic detection = %v, want KindGzip (extension must not matter)", kind)
	}

	// Content is inconclusive, extension decides.
	tarPath := write("notes.tar", []byte("not really a tar"))
	kind, err = DetectFile(tarPath)
	if err != nil {
		t.Fatalf("DetectFile: %v", err)
	}
	if kind != KindTar {
		t.Errorf("extension fallback = %v, want KindTar", kind)
	}

	// Neither magic nor extension matches.
	plainPath := write("notes.txt", []byte("plain text"))
	kind, err = DetectFile(plainPath)
	if err != nil {
		t.Fatalf("DetectFile: %v", err)
	}
	if kind != KindUnknown {
		t.Errorf("DetectFile(plain) = %v, want KindUnknown", kind)
	}

	if _, err := DetectFile(filepath.Join(dir, "missing.tar")); err == nil {
		t.Error("DetectFile of a missing file should return an error")
	}
}
