// Package dict 提供分析管线使用的全部静态查找表。
// 表在进程启动时构建一次，之后只读，可在并发分析间安全共享。
package dict

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"ats-match-go/internal/types"
)

// Dictionaries 聚合所有查找表。构建完成后不得修改。
type Dictionaries struct {
	// Synonyms 同义词/变体 → 规范形式
	Synonyms map[string]string
	// KnownSkills 常见技术技能词典（规范形式）
	KnownSkills map[string]bool
	// GenericWords 通用词/停用词，作为关键词时会被拒绝或降权
	GenericWords map[string]bool
	// TypoMap 常见拼写错误 → 规范形式
	TypoMap map[string]string
	// typoKeys TypoMap键的有序副本，保证模糊查找的确定性
	typoKeys []string
	// RequirementCues 表示硬性要求的上下文短语
	RequirementCues []string
	// PreferenceCues 表示加分项的上下文短语
	PreferenceCues []string
	// SectionHeaders 区块名称 → 标题关键词列表
	SectionHeaders map[types.SectionType][]string
	// sectionOrder SectionHeaders键的固定遍历顺序
	sectionOrder []types.SectionType
	// RoleKeywords 职位行中常见的角色词
	RoleKeywords []string
	// ActionVerbs 经历要点中的动作动词
	ActionVerbs []string
	// TechContextWords 技术上下文提示词
	TechContextWords []string
	// CompoundSkills 直接按模式识别的多词技术短语
	CompoundSkills []string
}

// Override 词典覆盖文件的YAML结构。所有字段可选，
// map类字段与默认表合并，切片类字段追加到默认表之后。
type Override struct {
	Synonyms       map[string]string `yaml:"synonyms"`
	KnownSkills    []string          `yaml:"known_skills"`
	GenericWords   []string          `yaml:"generic_words"`
	TypoMap        map[string]string `yaml:"typo_map"`
	CompoundSkills []string          `yaml:"compound_skills"`
}

// Default 构建内置默认词典
func Default() *Dictionaries {
	d := &Dictionaries{
		Synonyms:     defaultSynonyms(),
		KnownSkills:  toSet(defaultKnownSkills),
		GenericWords: toSet(defaultGenericWords),
		TypoMap:      defaultTypoMap(),
		RequirementCues: []string{
			"required", "must have", "mandatory", "essential", "must be", "need to",
		},
		PreferenceCues: []string{
			"preferred", "nice to have", "bonus", "plus", "desired", "ideal",
		},
		SectionHeaders:   defaultSectionHeaders(),
		RoleKeywords:     defaultRoleKeywords,
		ActionVerbs:      defaultActionVerbs,
		TechContextWords: defaultTechContextWords,
		CompoundSkills:   defaultCompoundSkills,
	}
	d.finalize()
	return d
}

// Load 在默认词典基础上合并可选的YAML覆盖文件。
// path为空时直接返回默认词典。
func Load(path string) (*Dictionaries, error) {
	d := Default()
	if path == "" {
		return d, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取词典覆盖文件失败: %w", err)
	}

	var ov Override
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return nil, fmt.Errorf("解析词典覆盖文件失败: %w", err)
	}

	for k, v := range ov.Synonyms {
		d.Synonyms[strings.ToLower(strings.TrimSpace(k))] = strings.ToLower(strings.TrimSpace(v))
	}
	for _, s := range ov.KnownSkills {
		d.KnownSkills[strings.ToLower(strings.TrimSpace(s))] = true
	}
	for _, s := range ov.GenericWords {
		d.GenericWords[strings.ToLower(strings.TrimSpace(s))] = true
	}
	for k, v := range ov.TypoMap {
		d.TypoMap[strings.ToLower(strings.TrimSpace(k))] = strings.ToLower(strings.TrimSpace(v))
	}
	d.CompoundSkills = append(d.CompoundSkills, ov.CompoundSkills...)

	d.finalize()
	return d, nil
}

// finalize 重建派生的有序视图。map遍历顺序不确定，
// 模糊查找必须走有序键列表，否则同一输入可能产生不同输出。
func (d *Dictionaries) finalize() {
	d.typoKeys = make([]string, 0, len(d.TypoMap))
	for k := range d.TypoMap {
		d.typoKeys = append(d.typoKeys, k)
	}
	sort.Strings(d.typoKeys)

	d.sectionOrder = []types.SectionType{
		types.SectionSummary,
		types.SectionSkills,
		types.SectionExperience,
		types.SectionEducation,
		types.SectionProjects,
		types.SectionCertifications,
		types.SectionAchievements,
	}
}

// TypoKeys 返回TypoMap键的确定性有序列表
func (d *Dictionaries) TypoKeys() []string {
	return d.typoKeys
}

// SectionOrder 返回区块类型的固定检测顺序
func (d *Dictionaries) SectionOrder() []types.SectionType {
	return d.sectionOrder
}

func toSet(words []string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

func defaultSynonyms() map[string]string {
	return map[string]string{
		"js":            "javascript",
		"ts":            "typescript",
		"reactjs":       "react",
		"react.js":      "react",
		"vuejs":         "vue",
		"vue.js":        "vue",
		"angularjs":     "angular",
		"nodejs":        "node.js",
		"node":          "node.js",
		"golang":        "go",
		"py":            "python",
		"k8s":           "kubernetes",
		"postgres":      "postgresql",
		"psql":          "postgresql",
		"mongo":         "mongodb",
		"ms sql":        "sql server",
		"mssql":         "sql server",
		"amazon web services": "aws",
		"google cloud platform": "gcp",
		"google cloud":  "gcp",
		"ml":            "machine learning",
		"ai":            "artificial intelligence",
		"ci/cd":         "continuous integration",
		"cicd":          "continuous integration",
		"tf":            "terraform",
		"es":            "elasticsearch",
		"elastic search": "elasticsearch",
		"gql":           "graphql",
		"oop":           "object oriented programming",
		"tdd":           "test driven development",
	}
}

var defaultKnownSkills = []string{
	"python", "java", "javascript", "typescript", "go", "rust", "ruby",
	"php", "scala", "kotlin", "swift", "c", "c++", "c#", "sql", "html",
	"css", "bash", "perl", "r", "matlab",
	"react", "angular", "vue", "node.js", "django", "flask", "spring",
	"rails", "express", "laravel", ".net", "fastapi", "graphql",
	"aws", "gcp", "azure", "docker", "kubernetes", "terraform", "ansible",
	"jenkins", "git", "linux", "nginx", "kafka", "rabbitmq", "redis",
	"postgresql", "mysql", "mongodb", "elasticsearch", "cassandra",
	"sqlite", "oracle", "dynamodb", "snowflake",
	"spark", "hadoop", "airflow", "tableau", "pandas", "numpy",
	"tensorflow", "pytorch", "scikit-learn",
	"machine learning", "deep learning", "data science",
	"microservices", "rest api", "grpc", "oauth", "jira", "agile", "scrum",
}

var defaultGenericWords = []string{
	"experience", "experienced", "work", "working", "team", "teams",
	"strong", "ability", "abilities", "skill", "skills", "knowledge",
	"years", "year", "excellent", "good", "great", "proficient",
	"familiar", "including", "include", "plus", "etc", "using", "used",
	"with", "and", "the", "for", "this", "that", "have", "will", "are",
	"you", "our", "your", "role", "job", "position", "candidate",
	"responsibilities", "requirements", "qualifications", "preferred",
	"required", "must", "should", "able", "environment", "development",
	"developer", "engineer", "engineering", "company", "business",
	"understanding", "communication", "written", "verbal", "degree",
	"bachelor", "master", "related", "field", "equivalent", "minimum",
	"looking", "join", "help", "build", "design", "solutions", "tools",
	"best", "practices", "new", "other", "various", "multiple",
}

func defaultTypoMap() map[string]string {
	return map[string]string{
		"kuberntes":   "kubernetes",
		"kubernets":   "kubernetes",
		"kubernetess": "kubernetes",
		"pyhton":      "python",
		"pythn":       "python",
		"phyton":      "python",
		"javascirpt":  "javascript",
		"javscript":   "javascript",
		"javasript":   "javascript",
		"typescirpt":  "typescript",
		"dokcer":      "docker",
		"dcoker":      "docker",
		"postgress":   "postgresql",
		"postgre":     "postgresql",
		"mongdb":      "mongodb",
		"mongodh":     "mongodb",
		"angluar":     "angular",
		"anglar":      "angular",
		"recat":       "react",
		"jenkings":    "jenkins",
		"elasticsearh": "elasticsearch",
		"terrafrom":   "terraform",
		"mircoservices": "microservices",
		"microservies": "microservices",
	}
}

func defaultSectionHeaders() map[types.SectionType][]string {
	return map[types.SectionType][]string{
		types.SectionSummary: {
			"summary", "professional summary", "objective", "profile",
			"about", "about me", "overview",
		},
		types.SectionSkills: {
			"skills", "technical skills", "core competencies", "technologies",
			"tech stack", "core skills", "key skills", "expertise",
		},
		types.SectionExperience: {
			"experience", "work experience", "professional experience",
			"employment", "employment history", "work history", "career history",
		},
		types.SectionEducation: {
			"education", "academic background", "qualifications", "academics",
		},
		types.SectionProjects: {
			"projects", "personal projects", "selected projects", "portfolio",
		},
		types.SectionCertifications: {
			"certifications", "certificates", "licenses", "licenses and certifications",
		},
		types.SectionAchievements: {
			"achievements", "accomplishments", "awards", "honors",
		},
	}
}

var defaultRoleKeywords = []string{
	"engineer", "developer", "manager", "analyst", "consultant",
	"architect", "intern", "lead", "director", "specialist",
	"administrator", "scientist", "designer", "coordinator", "officer",
}

var defaultActionVerbs = []string{
	"led", "built", "developed", "designed", "implemented", "created",
	"managed", "improved", "reduced", "increased", "launched", "delivered",
	"architected", "optimized", "automated", "migrated", "mentored",
	"established", "drove", "owned", "shipped", "scaled", "streamlined",
	"spearheaded", "refactored", "deployed", "maintained", "integrated",
}

var defaultTechContextWords = []string{
	"language", "languages", "framework", "frameworks", "library",
	"libraries", "tool", "tools", "platform", "platforms", "database",
	"databases", "technology", "technologies", "stack", "cloud",
	"software", "system", "systems", "infrastructure", "api", "apis",
}

var defaultCompoundSkills = []string{
	"machine learning", "deep learning", "data science", "data engineering",
	"full stack", "front end", "back end", "rest api", "unit testing",
	"continuous integration", "continuous delivery", "version control",
	"cloud computing", "web development", "object oriented programming",
	"test driven development", "natural language processing",
	"computer vision", "distributed systems", "event driven",
}
