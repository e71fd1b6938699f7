package mp4probe

import (
	"bytes"
	"path/filepath"
	"testing"
)

func TestProbeReader_NotMP4(t *testing.T) {
	_, err := ProbeReader(bytes.NewReader([]byte("this is not an mp4 container")))
	if err == nil {
		t.Error("expected an error for a non-MP4 payload")
	}
}

func TestProbeReader_Empty(t *testing.T) {
	_, err := ProbeReader(bytes.NewReader(nil))
	if err == nil {
		t.Error("expected an error for empty input")
	}
}

func TestProbeFile_Missing(t *testing.T) {
	_, err := ProbeFile(filepath.Join(t.TempDir(), "missing.mp4"))
	if err == nil {
		t.Error("expected an error for a missing file")
	}
}
