package docs

import (
	"bufio"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
)

//go:embed *.md
var docs embed.FS

// index is the topic listing; it is not a topic itself.
const index = "readme"

// GetTopic returns the content of a documentation topic. The topic "*" is
// every topic.
func GetTopic(topic string) (string, error) {
	if topic == "*" {
		topics, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		return GetTopics(topics...)
	}
	content, err := docs.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics returns the content of several topics, concatenated.
func GetTopics(topics ...string) (string, error) {
	var b strings.Builder
	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// Index returns the topic listing.
func Index() string {
	content, err := docs.ReadFile(index + ".md")
	if err != nil {
		// embedded
		panic(err)
	}
	return string(content)
}

// GetAllTopics returns the sorted names of all available topics.
func GetAllTopics() ([]string, error) {
	files, err := fs.Glob(docs, "*.md")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, f := range files {
		base := strings.TrimSuffix(path.Base(f), ".md")
		if base == index {
			continue
		}
		topics = append(topics, base)
	}
	slices.Sort(topics)
	return topics, nil
}

// Title returns the first heading of a topic, or its name if it has none.
func Title(topic string) string {
	content, err := GetTopic(topic)
	if err != nil {
		return topic
	}
	sc := bufio.NewScanner(strings.NewReader(content))
	for sc.Scan() {
		if line, ok := strings.CutPrefix(sc.Text(), "# "); ok {
			return strings.TrimSpace(line)
		}
	}
	return topic
}
