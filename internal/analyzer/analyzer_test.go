package analyzer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ats-match-go/internal/dict"
	"ats-match-go/internal/types"
)

const sampleResume = `John Doe
john@example.com

Skills
Python, AWS, Docker

Experience
Software Engineer | Acme | 2021
- Built services using Python`

const sampleJD = "Required: Python, 5+ years experience. AWS preferred."

// TestAnalyzeEndToEnd 完整管线：required/preferred判定、技能区块与经历佐证
func TestAnalyzeEndToEnd(t *testing.T) {
	a := New(dict.Default())
	result := a.Analyze(sampleResume, sampleJD)
	require.NotNil(t, result)

	var python *types.StrongMatch
	var aws *types.StrongMatch
	for i := range result.StrongMatches {
		switch result.StrongMatches[i].Skill {
		case "python":
			python = &result.StrongMatches[i]
		case "aws":
			aws = &result.StrongMatches[i]
		}
	}

	require.NotNil(t, python, "python应出现在强匹配中")
	assert.Equal(t, "required", python.Importance)
	assert.True(t, python.InSkillsSection)
	assert.True(t, python.Demonstrated, "经历要点中使用过python")

	require.NotNil(t, aws, "aws应出现在强匹配中")
	assert.Equal(t, "preferred", aws.Importance)
	assert.True(t, aws.InSkillsSection)
	assert.False(t, aws.Demonstrated)

	assert.GreaterOrEqual(t, result.ATSScore, 20)
	assert.LessOrEqual(t, result.ATSScore, 100)

	assert.True(t, result.SectionFeedback.HasSkillsSection)
	assert.True(t, result.SectionFeedback.HasExperienceSection)
	assert.Equal(t, 3, result.SectionFeedback.SkillCount)

	require.NotNil(t, result.Contact)
	assert.Equal(t, "john@example.com", result.Contact.Email)
}

// TestAnalyzePartitionInvariant 三类匹配之和等于JD关键词数
func TestAnalyzePartitionInvariant(t *testing.T) {
	a := New(dict.Default())
	result := a.Analyze(sampleResume, sampleJD)

	total := len(result.StrongMatches) + len(result.PartialMatches) + len(result.MissingSkills)
	assert.Greater(t, total, 0, "样例JD应提取出关键词")

	// 同一关键词不得同时出现在多个分类中
	seen := make(map[string]int)
	for _, m := range result.StrongMatches {
		seen[m.Skill]++
	}
	for _, m := range result.PartialMatches {
		seen[m.Skill]++
	}
	for _, m := range result.MissingSkills {
		seen[m.Skill]++
	}
	for skill, n := range seen {
		assert.Equal(t, 1, n, "关键词%q出现在多个分类中", skill)
	}
}

// TestAnalyzeUnstructuredResume 无结构简历经降级后仍产出有效结果
func TestAnalyzeUnstructuredResume(t *testing.T) {
	a := New(dict.Default())
	resume := "I am a software engineer who has worked with Python and AWS for several years building various services."
	result := a.Analyze(resume, sampleJD)

	assert.True(t, result.SectionFeedback.HasSkillsSection, "降级后技能区块视为存在")
	assert.True(t, result.SectionFeedback.HasExperienceSection, "降级后经历区块视为存在")
	assert.GreaterOrEqual(t, result.ATSScore, 0)
	assert.LessOrEqual(t, result.ATSScore, 100)
}

// TestAnalyzeTypoResume 简历中的错拼经纠错后不应落入missing
func TestAnalyzeTypoResume(t *testing.T) {
	a := New(dict.Default())
	resume := "Skills\nkuberntes, docker\n\nExperience\nEngineer | 2022\n- Deployed workloads"
	result := a.Analyze(resume, "Kubernetes experience required.")

	for _, m := range result.MissingSkills {
		assert.NotEqual(t, "kubernetes", m.Skill, "错拼的kubernetes不应判为缺失")
	}
}

// TestAnalyzeEmptyInputs 空输入产出退化但结构完整的结果，不panic
func TestAnalyzeEmptyInputs(t *testing.T) {
	a := New(dict.Default())
	result := a.Analyze("", "")

	require.NotNil(t, result)
	assert.NotNil(t, result.StrongMatches)
	assert.NotNil(t, result.PartialMatches)
	assert.NotNil(t, result.MissingSkills)
	assert.NotNil(t, result.Insights)
	assert.NotNil(t, result.Checklist)
	assert.GreaterOrEqual(t, result.ATSScore, 0)
	assert.LessOrEqual(t, result.ATSScore, 100)
}

// TestAnalyzeDeterministic 相同输入必须产生逐字节相同的结果
func TestAnalyzeDeterministic(t *testing.T) {
	a := New(dict.Default())

	first, err := json.Marshal(a.Analyze(sampleResume, sampleJD))
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := json.Marshal(a.Analyze(sampleResume, sampleJD))
		require.NoError(t, err)
		assert.Equal(t, string(first), string(again), "第%d次分析结果与首次不一致", i+1)
	}
}

// TestAnalyzeConcurrent 分析器可跨goroutine并发使用
func TestAnalyzeConcurrent(t *testing.T) {
	a := New(dict.Default())
	expected, err := json.Marshal(a.Analyze(sampleResume, sampleJD))
	require.NoError(t, err)

	done := make(chan []byte, 8)
	for i := 0; i < 8; i++ {
		go func() {
			b, _ := json.Marshal(a.Analyze(sampleResume, sampleJD))
			done <- b
		}()
	}
	for i := 0; i < 8; i++ {
		assert.Equal(t, string(expected), string(<-done))
	}
}
