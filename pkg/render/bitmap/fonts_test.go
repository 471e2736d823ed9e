package bitmap

import (
	"bytes"
	"testing"

	"github.com/menuforge/menuforge/pkg/menu"
)

func TestWithFontCarriedThroughFlow(t *testing.T) {
	cat := menu.NewCategory("Drinks")
	cat.Items = append(cat.Items, menu.NewItem("Tea", "", 5))

	flow := BuildFlow(projectWith(cat), WithFont("Cairo"))
	if flow.Font != "Cairo" {
		t.Errorf("Flow.Font = %q, want %q", flow.Font, "Cairo")
	}

	flow = BuildFlow(projectWith(cat))
	if flow.Font != "" {
		t.Errorf("Flow.Font without option = %q, want empty", flow.Font)
	}
}

func TestFontCandidates(t *testing.T) {
	regular, bold := fontCandidates("")
	if len(regular) != len(regularCandidates) || regular[0] != regularCandidates[0] {
		t.Errorf("empty preference changed regular candidates: %v", regular)
	}
	if len(bold) != len(boldCandidates) || bold[0] != boldCandidates[0] {
		t.Errorf("empty preference changed bold candidates: %v", bold)
	}

	regular, bold = fontCandidates("Cairo")
	if regular[0] != "Cairo.ttf" || regular[1] != "Cairo" {
		t.Errorf("regular candidates = %v, want Cairo first", regular)
	}
	if bold[0] != "Cairo-Bold.ttf" || bold[1] != "Cairo Bold.ttf" {
		t.Errorf("bold candidates = %v, want Cairo first", bold)
	}
	// Host defaults must survive as the fallback tail.
	if regular[len(regular)-1] != regularCandidates[len(regularCandidates)-1] {
		t.Errorf("regular candidates lost the default tail: %v", regular)
	}
}

func TestRenderUnresolvableFontStillProducesPNG(t *testing.T) {
	data, err := Render(projectWith(categoryWithItems("Drinks", 1)),
		WithFont("No Such Family"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(data, []byte{0x89, 'P', 'N', 'G'}) {
		t.Errorf("output does not start with PNG magic: % x", data[:4])
	}
}
