// Package emotion 实现情绪分类、强度评分与情绪趋势计算等纯逻辑。
package emotion

import (
	"fmt"
	"strings"
)

// Category 表示系统支持的五种情绪类别。
type Category uint8

const (
	Joy Category = iota
	Sadness
	Anxiety
	Anger
	Neutral

	numCategories
)

// Metadata 描述情绪类别的展示信息。
type Metadata struct {
	Name   string `json:"name"`
	Label  string `json:"label"`
	Accent string `json:"accent"`
	Icon   string `json:"icon"`
}

var metadata = [numCategories]Metadata{
	Joy:     {Name: "joy", Label: "Joyful", Accent: "green", Icon: "😊"},
	Sadness: {Name: "sadness", Label: "Sad", Accent: "blue", Icon: "😢"},
	Anxiety: {Name: "anxiety", Label: "Anxious", Accent: "yellow", Icon: "😰"},
	Anger:   {Name: "anger", Label: "Angry", Accent: "red", Icon: "😠"},
	Neutral: {Name: "neutral", Label: "Neutral", Accent: "gray", Icon: "😐"},
}

// Categories returns every category, non-neutral ones first in classifier priority order.
func Categories() []Category {
	return []Category{Joy, Sadness, Anxiety, Anger, Neutral}
}

// Valid reports whether c is one of the five defined categories.
func (c Category) Valid() bool {
	return c < numCategories
}

// Metadata 返回类别的展示信息，未知值按 neutral 处理。
func (c Category) Metadata() Metadata {
	if !c.Valid() {
		return metadata[Neutral]
	}
	return metadata[c]
}

func (c Category) String() string {
	return c.Metadata().Name
}

// MarshalText encodes the category as its symbolic name.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText accepts a symbolic category name.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, ok := ParseCategory(string(text))
	if !ok {
		return fmt.Errorf("unknown emotion category %q", string(text))
	}
	*c = parsed
	return nil
}

// ParseCategory 解析类别名称（忽略大小写与首尾空白）。
func ParseCategory(raw string) (Category, bool) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	for _, c := range Categories() {
		if metadata[c].Name == normalized {
			return c, true
		}
	}
	return Neutral, false
}

// AllMetadata returns the descriptors of every category in Categories order.
func AllMetadata() []Metadata {
	out := make([]Metadata, 0, numCategories)
	for _, c := range Categories() {
		out = append(out, metadata[c])
	}
	return out
}

// Result 是一次分类的结果。
type Result struct {
	Category  Category `json:"category"`
	Intensity int      `json:"intensity"`
}

// Metadata returns the display descriptor of the result's category.
func (r Result) Metadata() Metadata {
	return r.Category.Metadata()
}
