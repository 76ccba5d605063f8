package compare

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/rgehrsitz/wonpay/internal/calculation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSet(t *testing.T) *ComparisonSet {
	t.Helper()
	ce := NewCompareEngine(calculation.NewEngine())
	set, err := ce.Compare(context.Background(), baseInput(), CompareOptions{
		BaseScenarioName: "store",
		Templates:        []string{"add_worker", "wage_up_5pct"},
	})
	require.NoError(t, err)
	set.ConfigPath = "examples/workbook.yaml"
	return set
}

func TestTableFormatter_Format(t *testing.T) {
	out := (&TableFormatter{}).Format(sampleSet(t))

	assert.Contains(t, out, "인건비 시나리오 비교")
	assert.Contains(t, out, "기준 시나리오: store")
	assert.Contains(t, out, "입력 파일: examples/workbook.yaml")
	assert.Contains(t, out, "store (base)")
	assert.Contains(t, out, "store_wage_up_5pct")
	assert.Contains(t, out, "기준 대비 변화")
	assert.Contains(t, out, "제안")
}

func TestTableFormatter_Format_EmptyAlternatives(t *testing.T) {
	set := &ComparisonSet{BaseScenarioName: "store", BaseResult: &ComparisonResult{ScenarioName: "store"}}

	out := (&TableFormatter{}).Format(set)

	assert.Contains(t, out, "store (base)")
	assert.NotContains(t, out, "기준 대비 변화")
}

func TestTableFormatter_Truncate(t *testing.T) {
	tf := &TableFormatter{}

	assert.Equal(t, "short", tf.truncate("short", 10))
	assert.Equal(t, "가나...", tf.truncate("가나다라마바", 5))
}

func TestTableFormatter_FormatCompact(t *testing.T) {
	out := (&TableFormatter{}).FormatCompact(sampleSet(t))

	assert.Contains(t, out, "Base: store | store_add_worker: +")
}

func TestCSVFormatter_Format(t *testing.T) {
	out, err := (&CSVFormatter{}).Format(sampleSet(t))
	require.NoError(t, err)

	var rows []*csvRow
	require.NoError(t, gocsv.UnmarshalString(out, &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, "base", rows[0].Type)
	assert.Equal(t, "alternative", rows[1].Type)
	assert.Equal(t, 3, rows[1].WorkerCount)
	assert.Equal(t, "50.00", rows[1].EmployerCostPctDiff)
}

func TestJSONFormatter_Format(t *testing.T) {
	set := sampleSet(t)

	compact, err := (&JSONFormatter{}).Format(set)
	require.NoError(t, err)
	pretty, err := (&JSONFormatter{Pretty: true}).Format(set)
	require.NoError(t, err)

	assert.True(t, json.Valid([]byte(compact)))
	assert.Greater(t, len(pretty), len(compact))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(compact), &decoded))
	assert.Equal(t, "store", decoded["baseScenarioName"])
	assert.Len(t, decoded["alternativeResults"], 2)
	assert.NotContains(t, decoded, "details")

	display, ok := decoded["display"].(map[string]interface{})
	require.True(t, ok)
	assert.Len(t, display, 3)
	store, ok := display["store"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, store["employerTotalCost"], "원")
}

func TestJSONFormatter_IncludeDetail(t *testing.T) {
	out, err := (&JSONFormatter{IncludeDetail: true}).Format(sampleSet(t))
	require.NoError(t, err)

	var decoded struct {
		Details map[string]map[string]interface{} `json:"details"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Len(t, decoded.Details, 3)
	assert.Contains(t, decoded.Details["store_add_worker"], "employer_items")
}
