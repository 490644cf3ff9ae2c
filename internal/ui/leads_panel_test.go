package ui

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"leadconsole/internal/lead"
	"leadconsole/internal/roster"
)

func testPool() lead.Pool {
	return lead.NewPool([]lead.Lead{
		{Name: "Ana", TaxID: "1", Phone: "a", ReleasedAmount: decimal.NewFromInt(100)},
		{Name: "Bruno", TaxID: "2", Phone: "b", ReleasedAmount: decimal.NewFromInt(50)},
	})
}

func TestLeadsPanel_QuantityStepper(t *testing.T) {
	p := NewLeadsPanel(0)
	if p.Quantity != 1 {
		t.Fatalf("quantity should start at least at 1, got %d", p.Quantity)
	}
	p.focus.SetFocus(fieldQuantity)

	p.Update(keyMsg("-"))
	if p.Quantity != 1 {
		t.Errorf("stepper must not go below 1, got %d", p.Quantity)
	}
	p.Update(keyMsg("+"))
	p.Update(keyMsg("right"))
	if p.Quantity != 3 {
		t.Errorf("expected 3, got %d", p.Quantity)
	}
	p.Update(keyMsg("5"))
	if p.Quantity != 35 {
		t.Errorf("typing a digit appends it, got %d", p.Quantity)
	}
	p.Update(keyMsg("backspace"))
	p.Update(keyMsg("backspace"))
	if p.Quantity != 1 {
		t.Errorf("backspace bottoms out at 1, got %d", p.Quantity)
	}
}

func TestLeadsPanel_FirstDigitReplacesQuantity(t *testing.T) {
	p := NewLeadsPanel(10)
	p.Update(keyMsg("tab"))
	p.Update(keyMsg("tab"))
	p.Update(keyMsg("tab"))
	if !p.focus.Is(fieldQuantity) {
		t.Fatalf("expected quantity focus, got %q", p.focus.Current)
	}

	p.Update(keyMsg("5"))
	if p.Quantity != 5 {
		t.Errorf("first digit should replace the default, got %d", p.Quantity)
	}
	p.Update(keyMsg("0"))
	if p.Quantity != 50 {
		t.Errorf("later digits extend the value, got %d", p.Quantity)
	}

	// Leaving and coming back starts a fresh entry.
	p.Update(keyMsg("tab"))
	p.Update(keyMsg("shift+tab"))
	p.Update(keyMsg("7"))
	if p.Quantity != 7 {
		t.Errorf("refocused field should be replaced, got %d", p.Quantity)
	}
}

func TestLeadsPanel_SellerCycleAndData(t *testing.T) {
	p := NewLeadsPanel(10)
	users := roster.DefaultSeed()
	p.SetData(users, testPool())
	p.focus.SetFocus(fieldSeller)

	p.Update(keyMsg("right"))
	if p.SellerID != users[0].ID {
		t.Errorf("first right selects the first user, got %q", p.SellerID)
	}
	p.Update(keyMsg("left"))
	if p.SellerID != users[2].ID {
		t.Errorf("left wraps to the last user, got %q", p.SellerID)
	}

	// The selected seller disappears from the roster.
	p.SetData(users[:2], testPool())
	if p.SellerID != "" {
		t.Errorf("removed seller should be deselected, got %q", p.SellerID)
	}
}

func TestLeadsPanel_DistributeButton(t *testing.T) {
	p := NewLeadsPanel(4)
	p.SetData(roster.DefaultSeed(), testPool())
	p.SellerID = "rafael-teste"
	p.focus.SetFocus(fieldDistribute)

	_, cmd := p.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("expected DistributeMsg")
	}
	msg, ok := cmd().(DistributeMsg)
	if !ok || msg.SellerID != "rafael-teste" || msg.Count != 4 {
		t.Errorf("unexpected %#v", cmd())
	}
}

func TestLeadsPanel_EscLeavesFileField(t *testing.T) {
	p := NewLeadsPanel(10)
	p.Update(keyMsg("tab"))
	if !p.CapturingText() || !p.Path.Focused() {
		t.Fatal("tab should focus the file field")
	}
	p.Update(keyMsg("esc"))
	if p.CapturingText() || p.Path.Focused() {
		t.Error("esc should release the file field")
	}
}

func TestLeadsPanel_View(t *testing.T) {
	p := NewLeadsPanel(10)
	if !strings.Contains(p.View(), "Nenhum lead importado") {
		t.Error("empty pool should show the empty state")
	}

	p.SetData(roster.DefaultSeed(), testPool())
	p.SellerID = "beatriz-ribeiro"
	view := p.View()
	for _, want := range []string{"NOME", "VALOR LIBERADO", "Ana", "R$ 100,00", "R$ 150,00", "Beatriz Ribeiro", "Desempenho da Equipe"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
}
