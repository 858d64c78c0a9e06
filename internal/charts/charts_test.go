package charts

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/thebase666/expo-expense-tracker/internal/model"
)

func TestGenerateExpenseBreakdown_Empty(t *testing.T) {
	g := NewChartGenerator()

	png, err := g.GenerateExpenseBreakdown(map[model.Category]decimal.Decimal{})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if png != nil {
		t.Error("Expected nil chart when there is no data")
	}
}

func TestGenerateExpenseBreakdown(t *testing.T) {
	g := NewChartGenerator()

	png, err := g.GenerateExpenseBreakdown(map[model.Category]decimal.Decimal{
		model.CategoryFoodDrinks: decimal.RequireFromString("14.50"),
		model.CategoryBills:      decimal.NewFromInt(120),
		model.CategoryShopping:   decimal.NewFromInt(42),
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(png) == 0 {
		t.Fatal("Expected rendered chart bytes")
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("Expected a PNG image")
	}
}
