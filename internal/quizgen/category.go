package quizgen

import (
	"fmt"
	"strings"
)

// Category is one of the fixed quiz topics.
type Category string

const (
	CategoryHTTP     Category = "HTTP"
	CategoryNetwork  Category = "NETWORK"
	CategoryOS       Category = "OS"
	CategorySecurity Category = "SECURITY"
)

// AllCategories lists the topics in picker order.
var AllCategories = []Category{
	CategoryHTTP,
	CategoryNetwork,
	CategoryOS,
	CategorySecurity,
}

type categoryInfo struct {
	display     string
	description string
}

var categoryInfos = map[Category]categoryInfo{
	CategoryHTTP:     {"HTTP Status Codes", "REST, Status Codes, Methods, and Header semantics."},
	CategoryNetwork:  {"Networking", "TCP/IP, OSI Layers, Routing, and Protocols."},
	CategoryOS:       {"Operating Systems", "Kernels, Processes, Threads, Memory Management."},
	CategorySecurity: {"Cybersecurity", "Encryption, Vulnerabilities, Auth, and Protocols."},
}

// DisplayName is the human-readable topic name. It is also the text
// embedded in prompts.
func (c Category) DisplayName() string {
	if info, ok := categoryInfos[c]; ok {
		return info.display
	}
	return string(c)
}

// Description is the one-line summary shown on the topic picker.
func (c Category) Description() string {
	return categoryInfos[c].description
}

// Valid reports whether c is one of AllCategories.
func (c Category) Valid() bool {
	_, ok := categoryInfos[c]
	return ok
}

func (c Category) String() string { return string(c) }

// ParseCategory accepts a category key (case-insensitive) or its display name.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range AllCategories {
		if strings.EqualFold(s, string(c)) || strings.EqualFold(s, c.DisplayName()) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q (want one of %s)", s, categoryKeys())
}

func categoryKeys() string {
	keys := make([]string, len(AllCategories))
	for i, c := range AllCategories {
		keys[i] = string(c)
	}
	return strings.Join(keys, ", ")
}
