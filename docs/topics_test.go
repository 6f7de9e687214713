package docs

import (
	"bufio"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TestTopics checks that the index lists exactly the available topics.
func TestTopics(t *testing.T) {
	readme, err := Topic(index)
	if err != nil {
		t.Fatalf("failed to read the index: %v", err)
	}

	var listed []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(strings.NewReader(readme))
	for scanner.Scan() {
		if m := topicRegex.FindStringSubmatch(scanner.Text()); len(m) > 1 {
			listed = append(listed, strings.TrimSpace(m[1]))
		}
	}

	all, err := All()
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	slices.Sort(listed)
	if !slices.Equal(listed, all) {
		t.Errorf("index lists %v, available topics are %v", listed, all)
	}
}

// TestTopicsHaveTitle checks that every topic starts with a level 1 heading.
func TestTopicsHaveTitle(t *testing.T) {
	all, err := All()
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	for _, name := range append(all, index) {
		t.Run(name, func(t *testing.T) {
			content, err := Topic(name)
			if err != nil {
				t.Fatalf("Topic(%q) error = %v", name, err)
			}
			root := goldmark.DefaultParser().Parse(text.NewReader([]byte(content)))
			h, ok := root.FirstChild().(*ast.Heading)
			if !ok || h.Level != 1 {
				t.Errorf("topic %q does not start with a title", name)
			}
		})
	}
}

func TestTopicsStar(t *testing.T) {
	got, err := Topics("*")
	if err != nil {
		t.Fatalf("Topics(*) error = %v", err)
	}
	for _, want := range []string{"# Rules", "# Histories", "# Replay files"} {
		if !strings.Contains(got, want) {
			t.Errorf("Topics(*) does not contain %q", want)
		}
	}
	if _, err := Topic("nope"); err == nil {
		t.Errorf("Topic(nope) returned no error")
	}
}
