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


package core

import "fmt"

// ValidatePassage validates a Passage according to domain rules.
//
// Validation rules:
//   - ID must not be empty and must match PassageID(SourceID, Ordinal)
//   - SourceID must not be empty
//   - Text must not be empty
//   - Ordinal must not be negative
//
// NOT validated:
//   - SourceTitle and SourceURL (metadata, may legitimately be empty)
func ValidatePassage(p *Passage) error {
	if p == nil {
		return fmt.Errorf("%w: passage is nil", ErrInvalidPassage)
	}

	if p.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPassage, ErrEmptyPassageID)
	}

	if p.SourceID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPassage, ErrEmptySourceID)
	}

	if p.Text == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPassage, ErrEmptyPassageText)
	}

	if p.Ordinal < 0 {
		return fmt.Errorf("%w: ordinal %d is negative", ErrInvalidPassage, p.Ordinal)
	}

	if want := PassageID(p.SourceID, p.Ordinal); p.ID != want {
		return fmt.Errorf("%w: id %q does not match derived id %q", ErrInvalidPassage, p.ID, want)
	}

	return nil
}

// ValidateCondition validates a Condition according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//   - Keywords must contain at least one keyword, none of them empty
//
// NOT validated:
//   - Description and SourceAffinity (may legitimately be empty)
func ValidateCondition(c *Condition) error {
	if c == nil {
		return fmt.Errorf("%w: condition is nil", ErrInvalidCondition)
	}

	if c.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCondition, ErrEmptyConditionName)
	}

	if len(c.Keywords) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidCondition, ErrEmptyKeywords)
	}

	for i, kw := range c.Keywords {
		if kw == "" {
			return fmt.Errorf("%w: keyword %d is empty", ErrInvalidCondition, i)
		}
	}

	return nil
}

// ValidateFinding validates a Finding according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//
// NOT validated:
//   - Value and Context (may legitimately be empty)
func ValidateFinding(f *Finding) error {
	if f == nil {
		return fmt.Errorf("%w: finding is nil", ErrInvalidFinding)
	}

	if f.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidFinding, ErrEmptyFindingName)
	}

	return nil
}
