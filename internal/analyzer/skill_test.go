package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ats-match-go/internal/dict"
)

// TestNormalize 同义词映射与大小写/空白处理
func TestNormalize(t *testing.T) {
	n := NewSkillNormalizer(dict.Default())

	tests := []struct {
		input    string
		expected string
	}{
		{"k8s", "kubernetes"},
		{"ReactJS", "react"},
		{"Node", "node.js"},
		{"  Python  ", "python"},
		{"golang", "go"},
		{"docker,", "docker"},
		{"unknown-skill", "unknown-skill"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, n.Normalize(tt.input), "Normalize(%q)", tt.input)
	}
}

// TestNormalizeIdempotent 归一化必须幂等：同义词表的值不得是其他键
func TestNormalizeIdempotent(t *testing.T) {
	d := dict.Default()
	n := NewSkillNormalizer(d)

	for key, canonical := range d.Synonyms {
		once := n.Normalize(key)
		assert.Equal(t, once, n.Normalize(once), "对%q的归一化结果再归一化不应改变", key)
		assert.Equal(t, canonical, once)
	}
}

// TestNormalizeAll 去重并保持首次出现顺序
func TestNormalizeAll(t *testing.T) {
	n := NewSkillNormalizer(dict.Default())

	got := n.NormalizeAll([]string{"k8s", "Python", "kubernetes", "", "python"})
	assert.Equal(t, []string{"kubernetes", "python"}, got)
}
