package charts

import (
	"bytes"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/thebase666/expo-expense-tracker/internal/model"
)

// ChartGenerator генерирует графики по транзакциям пользователя
type ChartGenerator struct{}

// NewChartGenerator создает новый генератор графиков
func NewChartGenerator() *ChartGenerator {
	return &ChartGenerator{}
}

// GenerateExpenseBreakdown создает круговую диаграмму расходов по
// категориям в PNG. Возвращает nil, если расходов нет.
func (g *ChartGenerator) GenerateExpenseBreakdown(byCategory map[model.Category]decimal.Decimal) ([]byte, error) {
	if len(byCategory) == 0 {
		return nil, nil // Возвращаем nil, если нет данных для графика
	}

	values := make([]chart.Value, 0, len(byCategory))
	for category, amount := range byCategory {
		if !amount.IsPositive() {
			continue
		}
		values = append(values, chart.Value{
			Label: string(category),
			Value: amount.InexactFloat64(),
		})
	}
	if len(values) == 0 {
		return nil, nil
	}

	// Крупные категории первыми, чтобы подписи не перекрывались
	sort.Slice(values, func(i, j int) bool {
		return values[i].Value > values[j].Value
	})

	graph := chart.PieChart{
		Width:  800,
		Height: 800,
		Values: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
