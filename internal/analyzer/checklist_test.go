package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ats-match-go/internal/types"
)

// TestChecklistGrouping 洞察按优先级归入三个分组，顺序保持
func TestChecklistGrouping(t *testing.T) {
	b := NewChecklistBuilder()
	insights := []types.Insight{
		{Priority: types.PriorityHigh, Suggestion: "补充kubernetes经验"},
		{Priority: types.PriorityHigh, Suggestion: "补充量化指标"},
		{Priority: types.PriorityMedium, Suggestion: "经历中体现python"},
		{Priority: types.PriorityLow, Suggestion: "增加摘要"},
	}

	sections := b.Build(insights)
	require.Len(t, sections, 3)

	assert.Equal(t, types.PriorityHigh, sections[0].Priority)
	assert.Equal(t, []string{"补充kubernetes经验", "补充量化指标"}, sections[0].Items, "条目应保持洞察排序")
	assert.Equal(t, types.PriorityMedium, sections[1].Priority)
	assert.Equal(t, types.PriorityLow, sections[2].Priority)
}

// TestChecklistOmitsEmptyBuckets 空分组整体省略
func TestChecklistOmitsEmptyBuckets(t *testing.T) {
	b := NewChecklistBuilder()
	sections := b.Build([]types.Insight{
		{Priority: types.PriorityLow, Suggestion: "增加摘要"},
	})

	require.Len(t, sections, 1)
	assert.Equal(t, types.PriorityLow, sections[0].Priority)
}

// TestChecklistEmptyInput 无洞察时返回空清单
func TestChecklistEmptyInput(t *testing.T) {
	b := NewChecklistBuilder()
	assert.Empty(t, b.Build(nil))
}
