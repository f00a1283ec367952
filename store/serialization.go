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

import (
	"github.com/clinsight/clinsight/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalPassageRecord serializes a PassageRecord to bytes.
func MarshalPassageRecord(record *core.PassageRecord) []byte {
	buf := make([]byte, core.PassageRecordMUS.Size(*record))
	core.PassageRecordMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalPassageRecord deserializes a PassageRecord from bytes.
func UnmarshalPassageRecord(data []byte) (*core.PassageRecord, error) {
	record, _, err := core.PassageRecordMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// MarshalManifest serializes a StoreManifest to bytes.
func MarshalManifest(manifest *core.StoreManifest) []byte {
	buf := make([]byte, core.StoreManifestMUS.Size(*manifest))
	core.StoreManifestMUS.Marshal(*manifest, buf)
	return buf
}

// UnmarshalManifest deserializes a StoreManifest from bytes.
func UnmarshalManifest(data []byte) (*core.StoreManifest, error) {
	manifest, _, err := core.StoreManifestMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &manifest, nil
}
