// Copyright 2025 Clinsight Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package citations validates that every source and chunk citation in a
// report refers to actually retrieved evidence. Validation is advisory:
// it reports issues, it never fails.
package citations

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/clinsight/clinsight/core"
)

var (
	sourcePattern = regexp.MustCompile(`(?i)\[source:\s*([^\]]+)\]`)
	chunkPattern  = regexp.MustCompile(`(?i)\[chunk:\s*([^\]]+)\]`)
)

// Validate checks every [Source: ...] and [Chunk: ...] citation in the
// report against the retrieved evidence. Source citations match a title by
// case-insensitive substring in either direction; chunk citations must
// match a passage ID exactly, ignoring case. CitationsFound counts every
// citation seen, valid or not.
func Validate(report string, evidence []core.ScoredPassage) core.ValidationResult {
	titles := make([]string, 0, len(evidence))
	ids := make(map[string]bool, len(evidence))
	for _, passage := range evidence {
		titles = append(titles, strings.ToLower(passage.SourceTitle))
		ids[strings.ToLower(passage.ID)] = true
	}

	var issues []string

	cited := sourcePattern.FindAllStringSubmatch(report, -1)
	for _, m := range cited {
		cite := strings.TrimSpace(m[1])
		citeLower := strings.ToLower(cite)
		found := false
		for _, title := range titles {
			if strings.Contains(title, citeLower) || strings.Contains(citeLower, title) {
				found = true
				break
			}
		}
		if !found {
			issues = append(issues, fmt.Sprintf("Citation not found in retrieved literature: '%s'", cite))
		}
	}

	chunkRefs := chunkPattern.FindAllStringSubmatch(report, -1)
	for _, m := range chunkRefs {
		ref := strings.TrimSpace(m[1])
		if !ids[strings.ToLower(ref)] {
			issues = append(issues, fmt.Sprintf("Chunk reference not found: '%s'", ref))
		}
	}

	return core.ValidationResult{
		Valid:          len(issues) == 0,
		Issues:         issues,
		CitationsFound: len(cited) + len(chunkRefs),
	}
}
