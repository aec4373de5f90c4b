package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ats-match-go/internal/dict"
	"ats-match-go/internal/types"
)

const structuredResume = `John Doe
john@example.com

Summary
Backend engineer with a focus on distributed systems.

Skills
Python, Go, Docker, PostgreSQL

Experience
Software Engineer | Acme Corp | 2020 - 2023
- Built payment services in Go
- Reduced API latency by 40%
1. Migrated batch jobs to Kubernetes

Education
B.S. Computer Science, 2019`

// TestDetectStructuredResume 验证标准分区简历的切分
func TestDetectStructuredResume(t *testing.T) {
	d := NewSectionDetector(dict.Default())
	set := d.Detect(structuredResume)

	require.False(t, set.Fallback, "结构完整的简历不应触发降级")
	assert.True(t, set.Has(types.SectionHeader))
	assert.True(t, set.Has(types.SectionSummary))
	assert.True(t, set.Has(types.SectionSkills))
	assert.True(t, set.Has(types.SectionExperience))
	assert.True(t, set.Has(types.SectionEducation))

	header := set.Get(types.SectionHeader)
	require.NotNil(t, header)
	assert.Contains(t, header.Content, "john@example.com", "第一个标题之前的内容应归入header")

	skills := set.Get(types.SectionSkills)
	require.NotNil(t, skills)
	assert.Contains(t, skills.Content, "PostgreSQL")

	// Position按出现顺序递增
	assert.Less(t, set.Get(types.SectionSummary).Position, set.Get(types.SectionSkills).Position)
	assert.Less(t, set.Get(types.SectionSkills).Position, set.Get(types.SectionExperience).Position)
}

// TestDetectColonSuffixHeader 冒号后缀的标题也应命中
func TestDetectColonSuffixHeader(t *testing.T) {
	d := NewSectionDetector(dict.Default())
	set := d.Detect("Intro line\n\nTechnical Skills:\nGo, Rust\n\nWork Experience:\nEngineer | 2021\n- Shipped things")

	assert.True(t, set.Has(types.SectionSkills))
	assert.True(t, set.Has(types.SectionExperience))
}

// TestDetectFallback 无结构文本应降级：全文既是skills又是experience
func TestDetectFallback(t *testing.T) {
	d := NewSectionDetector(dict.Default())
	text := "I am a software engineer who has worked with Python and AWS for several years building various services."
	set := d.Detect(text)

	require.True(t, set.Fallback, "单段落文本应触发降级")
	assert.True(t, set.Has(types.SectionSkills))
	assert.True(t, set.Has(types.SectionExperience))
	assert.Equal(t, set.Get(types.SectionSkills).Content, set.Get(types.SectionExperience).Content, "降级时两个区块共享全文")
}

// TestDetectEmpty 空输入返回空结果，不报错
func TestDetectEmpty(t *testing.T) {
	d := NewSectionDetector(dict.Default())
	set := d.Detect("   \n  ")
	assert.Empty(t, set.Ordered)
	assert.False(t, set.Has(types.SectionSkills))
}

// TestBodyLineNotHeader 含句子标点的正文行不应被当作标题
func TestBodyLineNotHeader(t *testing.T) {
	d := NewSectionDetector(dict.Default())
	// "experience"出现在正文句子里，但该行带句号且较长
	text := "Summary\nI have years of experience building things, mostly in Go.\n\nSkills\nGo, Docker\n\nExperience\nEngineer | 2022\n- Built stuff"
	set := d.Detect(text)

	summary := set.Get(types.SectionSummary)
	require.NotNil(t, summary)
	assert.Contains(t, summary.Content, "mostly in Go", "正文行应留在summary内")
}

// TestParseExperience 验证职位行与要点的归属
func TestParseExperience(t *testing.T) {
	d := NewSectionDetector(dict.Default())
	content := `Software Engineer | Acme Corp | 2020 - 2023
- Built payment services in Go
- Reduced API latency by 40%
Senior Developer, Beta Inc, 2023
* Led a team of four
1. Launched the mobile app`

	entries := d.ParseExperience(content)
	require.Len(t, entries, 2)

	assert.Equal(t, "Software Engineer | Acme Corp | 2020 - 2023", entries[0].Title)
	assert.Equal(t, []string{"Built payment services in Go", "Reduced API latency by 40%"}, entries[0].Bullets)

	assert.Equal(t, "Senior Developer, Beta Inc, 2023", entries[1].Title)
	assert.Equal(t, []string{"Led a team of four", "Launched the mobile app"}, entries[1].Bullets)
}

// TestParseExperienceOrphanBullets 职位行之前的孤立要点归入无标题条目
func TestParseExperienceOrphanBullets(t *testing.T) {
	d := NewSectionDetector(dict.Default())
	entries := d.ParseExperience("- Did something useful\n- Did another thing")

	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].Title)
	assert.Len(t, entries[0].Bullets, 2)
}

// TestParseExperienceEmpty 空内容返回nil
func TestParseExperienceEmpty(t *testing.T) {
	d := NewSectionDetector(dict.Default())
	assert.Nil(t, d.ParseExperience(""))
	assert.Nil(t, d.ParseExperience("  \n "))
}

// TestParseSkills 验证技能列表解析
func TestParseSkills(t *testing.T) {
	d := NewSectionDetector(dict.Default())

	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{
			"逗号分隔",
			"Python, Go, Docker",
			[]string{"python", "go", "docker"},
		},
		{
			"label前缀剥离",
			"Languages: Python, Java\nTools: Docker; Git",
			[]string{"python", "java", "docker", "git"},
		},
		{
			"竖线与列表符号",
			"Go | Rust • Kubernetes",
			[]string{"go", "rust", "kubernetes"},
		},
		{
			"过滤过短片段并去重",
			"Go, R, Go, Python",
			[]string{"go", "python"},
		},
		{
			"空内容",
			"",
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, d.ParseSkills(tt.content), "技能解析结果与预期不符")
		})
	}
}

// TestHasMetrics 验证量化指标识别
func TestHasMetrics(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{"百分比", "Improved latency by 40%", true},
		{"货币", "Saved $50k annually", true},
		{"数量加单位", "Served 10000 users daily", true},
		{"倍数", "Achieved 3x throughput", true},
		{"by N", "Cut costs by 12", true},
		{"量级词", "Processed 2 million events", true},
		{"无指标", "Worked on backend services", false},
		{"空文本", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HasMetrics(tt.text), "指标识别结果与预期不符")
		})
	}
}
