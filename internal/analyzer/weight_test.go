package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ats-match-go/internal/dict"
	"ats-match-go/internal/types"
)

func newWeighter() *ImportanceWeighter {
	d := dict.Default()
	return NewImportanceWeighter(d, NewTermExtractor(d), NewSkillNormalizer(d))
}

func findTerm(terms []types.Term, normalized string) *types.Term {
	for i := range terms {
		if terms[i].Normalized == normalized {
			return &terms[i]
		}
	}
	return nil
}

// TestAnalyzeJDClassification 就近提示词决定required/preferred
func TestAnalyzeJDClassification(t *testing.T) {
	w := newWeighter()
	terms := w.AnalyzeJD("Required: Python, 5+ years experience. AWS preferred.")

	python := findTerm(terms, "python")
	require.NotNil(t, python, "应提取出python")
	assert.True(t, python.Required, "紧邻required提示的词应为硬性要求")
	assert.False(t, python.Preferred)
	assert.Equal(t, "required", python.Importance())

	aws := findTerm(terms, "aws")
	require.NotNil(t, aws, "应提取出aws")
	assert.True(t, aws.Preferred, "紧邻preferred提示的词应为加分项")
	assert.False(t, aws.Required)
	assert.Equal(t, "preferred", aws.Importance())
}

// TestAnalyzeJDDefaultRequired 无提示词时默认required
func TestAnalyzeJDDefaultRequired(t *testing.T) {
	w := newWeighter()
	terms := w.AnalyzeJD("We build services in Go with Kubernetes.")

	kube := findTerm(terms, "kubernetes")
	require.NotNil(t, kube)
	assert.True(t, kube.Required, "未标注的词应默认按硬性要求对待")
	assert.False(t, kube.Preferred)
}

// TestAnalyzeJDWeightOrdering required权重高于preferred，结果按权重降序
func TestAnalyzeJDWeightOrdering(t *testing.T) {
	w := newWeighter()
	terms := w.AnalyzeJD("Python is required. Docker is nice to have.")

	python := findTerm(terms, "python")
	docker := findTerm(terms, "docker")
	require.NotNil(t, python)
	require.NotNil(t, docker)
	assert.Greater(t, python.Weight, docker.Weight, "required词应比preferred词权重高")

	for i := 1; i < len(terms); i++ {
		assert.LessOrEqual(t, terms[i].Weight, terms[i-1].Weight, "结果应按权重降序排列")
	}
}

// TestAnalyzeJDFrequencyBoost 字面频次>2触发加成
func TestAnalyzeJDFrequencyBoost(t *testing.T) {
	w := newWeighter()
	terms := w.AnalyzeJD("Python services. Python pipelines. Python tooling. Also some Go.")

	python := findTerm(terms, "python")
	require.NotNil(t, python)
	assert.Equal(t, 3, python.Frequency)

	goTerm := findTerm(terms, "go")
	require.NotNil(t, goTerm)
	assert.Greater(t, python.Weight, goTerm.Weight, "高频词应获得更高权重")
}

// TestAnalyzeJDDedup 同义变体按归一化形式去重，保留首次出现
func TestAnalyzeJDDedup(t *testing.T) {
	w := newWeighter()
	terms := w.AnalyzeJD("Experience with k8s and kubernetes deployments.")

	count := 0
	for _, term := range terms {
		if term.Normalized == "kubernetes" {
			count++
		}
	}
	assert.Equal(t, 1, count, "k8s与kubernetes应合并为一个归一化词")
}

// TestAnalyzeJDEmpty 空输入返回nil，不报错
func TestAnalyzeJDEmpty(t *testing.T) {
	w := newWeighter()
	assert.Nil(t, w.AnalyzeJD(""))
}
