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


package store

import "errors"

var (
	// ErrEmptyStore indicates an attempt to build a store with no passages.
	ErrEmptyStore = errors.New("evidence store has no passages")

	// ErrDuplicatePassage indicates two records share a passage ID.
	ErrDuplicatePassage = errors.New("duplicate passage id")

	// ErrDimensionMismatch indicates a vector whose dimensionality differs
	// from the rest of the store.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")

	// ErrVectorMissing indicates a record without an embedding vector.
	ErrVectorMissing = errors.New("passage record has no vector")

	// ErrStoreNotFound indicates no persisted store exists in the backend.
	ErrStoreNotFound = errors.New("no persisted evidence store found")

	// ErrManifestMismatch indicates persisted records disagree with the
	// persisted manifest.
	ErrManifestMismatch = errors.New("persisted store does not match its manifest")
)
