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


package pipeline

import "errors"

var (
	// ErrExtractorRequired is returned when a finding extractor is not provided.
	ErrExtractorRequired = errors.New("finding extractor required")

	// ErrRetrievalEngineRequired is returned when a retrieval engine is not provided.
	ErrRetrievalEngineRequired = errors.New("retrieval engine required")

	// ErrFallbackGeneratorRequired is returned when a fallback report generator is not provided.
	ErrFallbackGeneratorRequired = errors.New("fallback report generator required")

	// ErrNoFindings indicates the notes yielded no clinical findings.
	// The pipeline stops after extraction when this happens.
	ErrNoFindings = errors.New("no clinical findings could be extracted, provide more detailed clinical notes")
)
