package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ats-match-go/internal/dict"
	"ats-match-go/internal/types"
)

func jdTerm(raw string, required bool) types.Term {
	t := types.Term{Raw: raw, Normalized: raw, Weight: 1.0, Frequency: 1}
	if required {
		t.Required = true
	} else {
		t.Preferred = true
	}
	return t
}

// TestMatchPartition 每个JD关键词恰好产生一条记录，三档分类互斥完备
func TestMatchPartition(t *testing.T) {
	e := NewMatchEngine(dict.Default())
	in := MatchInput{
		JDTerms: []types.Term{
			jdTerm("python", true),
			jdTerm("kubernetes", true),
			jdTerm("snowflake", false),
		},
		ResumeTerms: []string{"python", "docker", "react"},
		SkillTerms:  []string{"python", "docker"},
	}

	records := e.Match(in)
	require.Len(t, records, len(in.JDTerms), "记录数必须等于JD关键词数")

	counts := map[types.MatchCategory]int{}
	for _, r := range records {
		counts[r.Category]++
	}
	assert.Equal(t, len(in.JDTerms), counts[types.MatchStrong]+counts[types.MatchPartial]+counts[types.MatchMissing])
}

// TestMatchExact 完全一致的词归为strong
func TestMatchExact(t *testing.T) {
	e := NewMatchEngine(dict.Default())
	records := e.Match(MatchInput{
		JDTerms:     []types.Term{jdTerm("python", true)},
		ResumeTerms: []string{"python"},
		SkillTerms:  []string{"python"},
		Experience: []types.ExperienceEntry{
			{Title: "Engineer | 2021", Bullets: []string{"Built services using Python"}},
		},
	})

	require.Len(t, records, 1)
	rec := records[0]
	assert.Equal(t, types.MatchStrong, rec.Category)
	assert.Equal(t, "python", rec.ResumeTerm)
	assert.Equal(t, 1.0, rec.Similarity)
	assert.True(t, rec.InSkillsSection)
	assert.True(t, rec.InExperience)
	assert.False(t, rec.TypoCorrected)
}

// TestMatchTypoCorrection 错拼的简历词经纠错后不应落入missing
func TestMatchTypoCorrection(t *testing.T) {
	e := NewMatchEngine(dict.Default())
	records := e.Match(MatchInput{
		JDTerms:     []types.Term{jdTerm("kubernetes", true)},
		ResumeTerms: []string{"kuberntes"},
		SkillTerms:  []string{"kuberntes"},
	})

	require.Len(t, records, 1)
	rec := records[0]
	assert.NotEqual(t, types.MatchMissing, rec.Category, "纠错后不应是missing")
	assert.Equal(t, types.MatchStrong, rec.Category)
	assert.True(t, rec.TypoCorrected)
	assert.Equal(t, "kuberntes", rec.ResumeTerm, "应保留简历原词")
}

// TestMatchMissing 无相似候选时为missing，且不带残留的候选信息
func TestMatchMissing(t *testing.T) {
	e := NewMatchEngine(dict.Default())
	records := e.Match(MatchInput{
		JDTerms:     []types.Term{jdTerm("snowflake", true)},
		ResumeTerms: []string{"python", "react"},
	})

	require.Len(t, records, 1)
	rec := records[0]
	assert.Equal(t, types.MatchMissing, rec.Category)
	assert.Empty(t, rec.ResumeTerm)
	assert.Zero(t, rec.Similarity)
	assert.False(t, rec.InSkillsSection)
	assert.False(t, rec.InExperience)
}

// TestMatchEmptyResume 简历侧无关键词时全部missing
func TestMatchEmptyResume(t *testing.T) {
	e := NewMatchEngine(dict.Default())
	records := e.Match(MatchInput{
		JDTerms: []types.Term{jdTerm("python", true), jdTerm("go", false)},
	})

	require.Len(t, records, 2)
	for _, rec := range records {
		assert.Equal(t, types.MatchMissing, rec.Category)
	}
}

// TestMatchExperienceFallback 无要点时退回经历原文做包含判断
func TestMatchExperienceFallback(t *testing.T) {
	e := NewMatchEngine(dict.Default())
	records := e.Match(MatchInput{
		JDTerms:       []types.Term{jdTerm("python", true)},
		ResumeTerms:   []string{"python"},
		RawExperience: "Worked on Python pipelines without bullet formatting",
	})

	require.Len(t, records, 1)
	assert.True(t, records[0].InExperience, "没有解析出要点时应在经历原文中查找")
}

// TestMatchInSkillsSubstring 技能列表的包含关系也算在技能区块内
func TestMatchInSkillsSubstring(t *testing.T) {
	e := NewMatchEngine(dict.Default())
	records := e.Match(MatchInput{
		JDTerms:     []types.Term{jdTerm("aws", false)},
		ResumeTerms: []string{"aws"},
		SkillTerms:  []string{"aws lambda"},
	})

	require.Len(t, records, 1)
	assert.Equal(t, types.MatchStrong, records[0].Category)
	assert.True(t, records[0].InSkillsSection, "aws应命中技能列表里的aws lambda")
}
