package components

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestParameterSliderClamps(t *testing.T) {
	s := NewParameterSlider("시급", d("60000"), d("0"), d("50000"), d("100"))
	assert.True(t, s.Value.Equal(d("50000")))

	s.Increment()
	assert.True(t, s.Value.Equal(d("50000")))

	s.SetValue(d("-5"))
	assert.True(t, s.Value.Equal(d("0")))
	s.Decrement()
	assert.True(t, s.Value.Equal(d("0")))

	s.SetValue(d("25000"))
	assert.InDelta(t, 0.5, s.Percentage(), 1e-9)
}

func TestParameterSliderDecimalSteps(t *testing.T) {
	s := NewParameterSlider("산재보험료율", d("1.0"), d("0"), d("10"), d("0.05"))
	for i := 0; i < 3; i++ {
		s.Increment()
	}
	assert.True(t, s.Value.Equal(d("1.15")), s.Value.String())
}

func TestParameterSliderRender(t *testing.T) {
	s := NewParameterSlider("근로자 수", d("3"), d("1"), d("5"), d("1")).
		WithFormat(func(v decimal.Decimal) string { return v.String() + "명" }).
		WithDescription("설명").
		WithWidth(10)

	out := s.Render()
	assert.Contains(t, out, "근로자 수")
	assert.Contains(t, out, "3명")
	assert.Contains(t, out, "1명 ─ 5명")
	assert.NotContains(t, out, "설명", "description only shows when focused")

	s.SetFocused(true)
	assert.Contains(t, s.Render(), "설명")
	assert.Contains(t, s.RenderCompact(), "근로자 수:")

	empty := NewParameterSlider("x", d("1"), d("1"), d("1"), d("1"))
	assert.Zero(t, empty.Percentage())
}

func TestToggle(t *testing.T) {
	tg := NewToggle("퇴직금 적립 포함", true)
	assert.Contains(t, tg.Render(), "[x]")
	assert.False(t, tg.Flip())
	assert.Contains(t, tg.Render(), "[ ]")
}

func TestMetricCard(t *testing.T) {
	card := NewMetricCard("사업주 총 인건비", "2,600,000원").
		WithDescription("시간당 12,440원").
		WithTrend(true, false, "+100,000원").
		WithWidth(30)

	out := card.Render()
	assert.Contains(t, out, "사업주 총 인건비")
	assert.Contains(t, out, "2,600,000원")
	assert.Contains(t, out, "▲ +100,000원")
	assert.Contains(t, out, "시간당 12,440원")
	assert.Contains(t, card.RenderCompact(), "사업주 총 인건비:")

	assert.Empty(t, MetricGrid(nil, 2))
	grid := MetricGrid([]*MetricCard{card, NewMetricCard("a", "1"), NewMetricCard("b", "2")}, 2)
	assert.Contains(t, grid, "a")
	assert.Contains(t, grid, "b")
}

func TestShareBar(t *testing.T) {
	b := NewShareBar("목표 매출 대비 인건비", d("3000000"), d("12000000")).WithWidth(20)
	pct, ok := b.Percentage()
	assert.True(t, ok)
	assert.True(t, pct.Equal(d("25")))
	assert.Contains(t, b.Render(), "25.00%")

	b.Whole = decimal.Zero
	_, ok = b.Percentage()
	assert.False(t, ok)
	assert.Contains(t, b.Render(), "계산 불가")

	over := NewShareBar("", d("20"), d("10")).WithWidth(10)
	assert.Contains(t, over.Render(), "200.00%")
}
