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

import "errors"

// Domain validation errors
var (
	// ErrInvalidPassage indicates a Passage failed validation.
	ErrInvalidPassage = errors.New("invalid passage")

	// ErrInvalidCondition indicates a Condition failed validation.
	ErrInvalidCondition = errors.New("invalid condition")

	// ErrInvalidFinding indicates a Finding failed validation.
	ErrInvalidFinding = errors.New("invalid finding")

	// ErrEmptyPassageID indicates the passage ID field is empty.
	ErrEmptyPassageID = errors.New("passage id cannot be empty")

	// ErrEmptyPassageText indicates the passage Text field is empty.
	ErrEmptyPassageText = errors.New("passage text cannot be empty")

	// ErrEmptySourceID indicates the passage SourceID field is empty.
	ErrEmptySourceID = errors.New("source id cannot be empty")

	// ErrEmptyConditionName indicates the condition Name field is empty.
	ErrEmptyConditionName = errors.New("condition name cannot be empty")

	// ErrEmptyKeywords indicates the condition keyword list is empty.
	ErrEmptyKeywords = errors.New("condition keywords cannot be empty")

	// ErrEmptyFindingName indicates the finding Name field is empty.
	ErrEmptyFindingName = errors.New("finding name cannot be empty")
)
