package registry

import (
	"context"
	"errors"
	"testing"

	"pdf-backend-bench/internal/domain"
)

// fakeBackend records whether its engine code was reached.
type fakeBackend struct {
	descriptor domain.Descriptor
	calls      int
}

func (f *fakeBackend) Descriptor() domain.Descriptor { return f.descriptor }

func (f *fakeBackend) ExtractText(ctx context.Context, payload []byte) (string, error) {
	f.calls++
	return "extracted", nil
}

func (f *fakeBackend) ExtractImages(ctx context.Context, payload []byte) ([]domain.Image, error) {
	f.calls++
	return nil, nil
}

func newTextBackend(name string) *fakeBackend {
	return &fakeBackend{descriptor: domain.Descriptor{
		Name:         name,
		Kind:         domain.BackendKindInProcess,
		Capabilities: []domain.Capability{domain.CapabilityText},
	}}
}

func TestRegister_Duplicate(t *testing.T) {
	r := New()
	if err := r.Register(newTextBackend("fitz")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Register(newTextBackend("fitz")); err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
}

func TestRegister_EmptyName(t *testing.T) {
	r := New()
	if err := r.Register(&fakeBackend{}); err == nil {
		t.Fatal("expected registration without a name to fail")
	}
}

func TestList_SortedDescriptors(t *testing.T) {
	r := New()
	for _, name := range []string{"tika", "fitz", "pdfcpu"} {
		if err := r.Register(newTextBackend(name)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	descriptors := r.List()
	if len(descriptors) != 3 {
		t.Fatalf("expected 3 descriptors, got %d", len(descriptors))
	}
	for i, want := range []string{"fitz", "pdfcpu", "tika"} {
		if descriptors[i].Name != want {
			t.Fatalf("expected descriptor %d to be %s, got %s", i, want, descriptors[i].Name)
		}
	}
}

func TestExtractText_Dispatches(t *testing.T) {
	r := New()
	b := newTextBackend("fitz")
	if err := r.Register(b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text, err := r.ExtractText(context.Background(), "fitz", []byte("pdf"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "extracted" {
		t.Fatalf("unexpected text %q", text)
	}
	if b.calls != 1 {
		t.Fatalf("expected exactly one engine call, got %d", b.calls)
	}
}

func TestUnsupportedCapability_RejectedBeforeEngine(t *testing.T) {
	r := New()
	b := newTextBackend("fitz")
	if err := r.Register(b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := r.ExtractImages(context.Background(), "fitz", []byte("pdf"))
	if !domain.IsCapabilityError(err) {
		t.Fatalf("expected CapabilityError, got %v", err)
	}
	if b.calls != 0 {
		t.Fatalf("engine was invoked %d times despite capability rejection", b.calls)
	}

	_, err = r.ApplyWatermark(context.Background(), "fitz", []byte("wm"), []byte("pdf"))
	if !domain.IsCapabilityError(err) {
		t.Fatalf("expected CapabilityError, got %v", err)
	}
	if b.calls != 0 {
		t.Fatalf("engine was invoked %d times despite capability rejection", b.calls)
	}
}

func TestUnknownBackend(t *testing.T) {
	r := New()
	_, err := r.ExtractText(context.Background(), "missing", []byte("pdf"))
	if !errors.Is(err, domain.ErrBackendNotFound) {
		t.Fatalf("expected ErrBackendNotFound, got %v", err)
	}
}
