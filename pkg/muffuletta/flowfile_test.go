package muffuletta

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

const sampleFlowFile = `title = "Checkout"
initial_step = "shipping"

[[steps]]
id = "cart"
label = "Cart"

[[steps]]
id = "shipping"
label = "Shipping"
icon = "truck.svg"

[[steps]]
id = "payment"
label = "Payment"
`

func writeFlowFile(t *testing.T, content string, extras map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "flow.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	for name, data := range extras {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return path
}

func TestLoadFlowFile(t *testing.T) {
	iconSVG := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"/>`
	path := writeFlowFile(t, sampleFlowFile, map[string]string{"truck.svg": iconSVG})

	definition, err := LoadFlowFile(path)
	if err != nil {
		t.Fatalf("LoadFlowFile() error = %v", err)
	}

	if definition.Title != "Checkout" {
		t.Errorf("Title = %q, want %q", definition.Title, "Checkout")
	}
	if definition.InitialStepID != "shipping" {
		t.Errorf("InitialStepID = %q, want %q", definition.InitialStepID, "shipping")
	}
	if len(definition.Steps) != 3 {
		t.Fatalf("got %d steps, want 3", len(definition.Steps))
	}
	if definition.Steps[1].ID != "shipping" || definition.Steps[1].Label != "Shipping" {
		t.Errorf("step 1 = %+v, want shipping/Shipping", definition.Steps[1])
	}
	if string(definition.Steps[1].Icon) != iconSVG {
		t.Errorf("step 1 icon not loaded from disk")
	}
	if definition.Steps[0].Icon != nil {
		t.Errorf("step 0 should have no icon")
	}
}

func TestLoadFlowFileDuplicateIDs(t *testing.T) {
	content := "[[steps]]\nid = \"cart\"\n\n[[steps]]\nid = \"cart\"\n"
	path := writeFlowFile(t, content, nil)

	if _, err := LoadFlowFile(path); !IsFlowMismatch(err) {
		t.Errorf("expected flow mismatch for duplicate ids, got %v", err)
	}
}

func TestLoadFlowFileUnknownInitialStep(t *testing.T) {
	content := "initial_step = \"ghost\"\n\n[[steps]]\nid = \"cart\"\n"
	path := writeFlowFile(t, content, nil)

	if _, err := LoadFlowFile(path); !IsFlowMismatch(err) {
		t.Errorf("expected flow mismatch for unknown initial step, got %v", err)
	}
}

func TestLoadFlowFileMissingIcon(t *testing.T) {
	content := "[[steps]]\nid = \"cart\"\nicon = \"missing.svg\"\n"
	path := writeFlowFile(t, content, nil)

	if _, err := LoadFlowFile(path); !IsInfrastructureError(err) {
		t.Errorf("expected infrastructure error for missing icon, got %v", err)
	}
}

func TestBindPanel(t *testing.T) {
	path := writeFlowFile(t, "[[steps]]\nid = \"cart\"\n", nil)
	definition, err := LoadFlowFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := definition.BindPanel("cart", func(_ *sdl.Renderer, _ sdl.Rect) {}); err != nil {
		t.Errorf("BindPanel(cart) error = %v", err)
	}
	if definition.Steps[0].Panel == nil {
		t.Error("panel not bound")
	}
	if err := definition.BindPanel("ghost", nil); !IsFlowMismatch(err) {
		t.Errorf("expected flow mismatch binding unknown step, got %v", err)
	}
}

func TestValidateFlow(t *testing.T) {
	if err := validateFlow(nil); !IsFlowMismatch(err) {
		t.Errorf("expected flow mismatch for empty flow, got %v", err)
	}
	if err := validateFlow([]FlowStep{{Label: "no id"}}); !IsFlowMismatch(err) {
		t.Errorf("expected flow mismatch for missing id, got %v", err)
	}
	if err := validateFlow([]FlowStep{{ID: "a"}, {ID: "b"}}); err != nil {
		t.Errorf("validateFlow() error = %v, want nil", err)
	}
}
