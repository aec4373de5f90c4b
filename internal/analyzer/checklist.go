package analyzer

import "ats-match-go/internal/types"

// ChecklistBuilder 把洞察按优先级归入行动清单的三个分组
type ChecklistBuilder struct{}

// NewChecklistBuilder 创建清单构建器
func NewChecklistBuilder() *ChecklistBuilder {
	return &ChecklistBuilder{}
}

var checklistBuckets = []struct {
	priority types.Priority
	title    string
}{
	{types.PriorityHigh, "必须处理"},
	{types.PriorityMedium, "建议处理"},
	{types.PriorityLow, "锦上添花"},
}

// Build 按high/medium/low三档分组，条目保持洞察排序后的顺序。
// 没有洞察的分组整体省略，不输出空区块
func (b *ChecklistBuilder) Build(insights []types.Insight) []types.ChecklistSection {
	out := make([]types.ChecklistSection, 0, len(checklistBuckets))
	for _, bucket := range checklistBuckets {
		var items []string
		for _, ins := range insights {
			if ins.Priority == bucket.priority {
				items = append(items, ins.Suggestion)
			}
		}
		if len(items) == 0 {
			continue
		}
		out = append(out, types.ChecklistSection{
			Priority: bucket.priority,
			Title:    bucket.title,
			Items:    items,
		})
	}
	return out
}
