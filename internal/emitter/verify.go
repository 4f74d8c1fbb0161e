package emitter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/unity-forge/backend/internal/models"
	"gopkg.in/yaml.v3"
)

type rawBlock struct {
	block models.DocumentBlock
	body  strings.Builder
}

// Verify checks the structure of a Unity YAML document: every block body
// must be valid YAML, handles must be unique and every local {fileID: n}
// reference must point at a block of the same document. References that
// carry a guid point into other assets and are not checked.
func Verify(document string) *models.DocumentReport {
	report := &models.DocumentReport{
		HasHeader: strings.HasPrefix(document, "%YAML"),
	}

	var blocks []*rawBlock
	var current *rawBlock
	for i, line := range strings.Split(document, "\n") {
		if m := blockHeaderRe.FindStringSubmatch(line); m != nil {
			classID, _ := strconv.Atoi(m[1])
			handle, err := strconv.ParseInt(m[2], 10, 64)
			if err != nil {
				report.Errors = append(report.Errors, fmt.Sprintf("line %d: bad handle %q", i+1, m[2]))
				current = nil
				continue
			}
			current = &rawBlock{block: models.DocumentBlock{ClassID: classID, Handle: handle, Line: i + 1}}
			blocks = append(blocks, current)
			continue
		}
		if current == nil {
			trimmed := strings.TrimSpace(line)
			if trimmed != "" && !strings.HasPrefix(trimmed, "%") && !strings.HasPrefix(trimmed, "#") {
				report.Errors = append(report.Errors, fmt.Sprintf("line %d: content outside of a block", i+1))
			}
			continue
		}
		current.body.WriteString(line)
		current.body.WriteByte('\n')
	}

	seen := make(map[int64]bool)
	dup := make(map[int64]bool)
	refs := make(map[int64]bool)
	for _, rb := range blocks {
		h := rb.block.Handle
		if seen[h] && !dup[h] {
			dup[h] = true
			report.DuplicateHandles = append(report.DuplicateHandles, h)
		}
		seen[h] = true
		if h > report.MaxHandle {
			report.MaxHandle = h
		}

		var body map[string]any
		if err := yaml.Unmarshal([]byte(rb.body.String()), &body); err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("block &%d (line %d): %v", h, rb.block.Line, err))
		} else if len(body) != 1 {
			report.Errors = append(report.Errors, fmt.Sprintf("block &%d (line %d): expected one top-level key, found %d", h, rb.block.Line, len(body)))
		}
		for typeName, v := range body {
			rb.block.Type = typeName
			collectRefs(v, refs)
		}
		report.Blocks = append(report.Blocks, rb.block)
	}

	for id := range refs {
		if !seen[id] {
			report.UnresolvedRefs = append(report.UnresolvedRefs, id)
		}
	}
	sort.Slice(report.UnresolvedRefs, func(i, j int) bool { return report.UnresolvedRefs[i] < report.UnresolvedRefs[j] })
	return report
}

// collectRefs records the fileID of every local reference found under v.
func collectRefs(v any, refs map[int64]bool) {
	switch t := v.(type) {
	case map[string]any:
		if raw, ok := t["fileID"]; ok {
			if _, external := t["guid"]; !external {
				if id, ok := toInt64(raw); ok && id != 0 {
					refs[id] = true
				}
			}
		}
		for _, child := range t {
			collectRefs(child, refs)
		}
	case []any:
		for _, child := range t {
			collectRefs(child, refs)
		}
	}
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		return int64(n), true
	}
	return 0, false
}
