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


package corpus

import "errors"

var (
	// ErrEmbedderRequired indicates a builder was created without an embedder.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrNoArticles indicates a build was attempted over an empty corpus.
	ErrNoArticles = errors.New("no articles to build from")

	// ErrEmbeddingMismatch indicates the embedder returned a different number
	// of vectors than texts submitted.
	ErrEmbeddingMismatch = errors.New("embedding result count mismatch")
)
