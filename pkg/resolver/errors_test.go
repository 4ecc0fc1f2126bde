package resolver

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorClassification(t *testing.T) {
	missing := NewMissingFileError("/ws/App/Gone.xcdatamodeld")
	gated := NewFeatureNotSupportedError("watchOS targets are not supported yet")

	if !IsMissingFile(missing) || IsMissingFile(gated) {
		t.Error("IsMissingFile misclassifies")
	}
	if !IsFeatureNotSupported(gated) || IsFeatureNotSupported(missing) {
		t.Error("IsFeatureNotSupported misclassifies")
	}

	// Classification survives wrapping.
	wrapped := fmt.Errorf("target %q: %w", "App", missing)
	if !IsMissingFile(wrapped) {
		t.Error("classification lost through wrapping")
	}
	if !errors.Is(wrapped, &Error{Kind: KindMissingFile}) {
		t.Error("errors.Is does not match on kind")
	}
}

func TestErrorMessages(t *testing.T) {
	missing := NewMissingFileError("/ws/Model.xcdatamodeld")
	if !strings.Contains(missing.Error(), "/ws/Model.xcdatamodeld") {
		t.Errorf("missing-file message should carry the path: %s", missing)
	}

	gated := NewFeatureNotSupportedError("watchOS targets are not supported yet")
	if !strings.Contains(gated.Error(), "watchOS") {
		t.Errorf("feature message should carry the detail: %s", gated)
	}
}
