// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	slicenNXTESo3Q2pEqV2YwuGnVwΞΞ = ord.NewSliceSer[float32](varint.Float32)
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var PassageMUS = passageMUS{}

type passageMUS struct{}

func (s passageMUS) Marshal(v Passage, bs []byte) (n int) {
	n = ord.String.Marshal(v.ID, bs)
	n += ord.String.Marshal(v.SourceID, bs[n:])
	n += ord.String.Marshal(v.SourceTitle, bs[n:])
	n += ord.String.Marshal(v.SourceURL, bs[n:])
	n += varint.Int.Marshal(v.Ordinal, bs[n:])
	return n + ord.String.Marshal(v.Text, bs[n:])
}

func (s passageMUS) Unmarshal(bs []byte) (v Passage, n int, err error) {
	v.ID, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.SourceID, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.SourceTitle, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.SourceURL, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Ordinal, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Text, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s passageMUS) Size(v Passage) (size int) {
	size = ord.String.Size(v.ID)
	size += ord.String.Size(v.SourceID)
	size += ord.String.Size(v.SourceTitle)
	size += ord.String.Size(v.SourceURL)
	size += varint.Int.Size(v.Ordinal)
	return size + ord.String.Size(v.Text)
}

func (s passageMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}

var PassageRecordMUS = passageRecordMUS{}

type passageRecordMUS struct{}

func (s passageRecordMUS) Marshal(v PassageRecord, bs []byte) (n int) {
	n = PassageMUS.Marshal(v.Passage, bs)
	return n + slicenNXTESo3Q2pEqV2YwuGnVwΞΞ.Marshal(v.Vector, bs[n:])
}

func (s passageRecordMUS) Unmarshal(bs []byte) (v PassageRecord, n int, err error) {
	v.Passage, n, err = PassageMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Vector, n1, err = slicenNXTESo3Q2pEqV2YwuGnVwΞΞ.Unmarshal(bs[n:])
	n += n1
	return
}

func (s passageRecordMUS) Size(v PassageRecord) (size int) {
	size = PassageMUS.Size(v.Passage)
	return size + slicenNXTESo3Q2pEqV2YwuGnVwΞΞ.Size(v.Vector)
}

func (s passageRecordMUS) Skip(bs []byte) (n int, err error) {
	n, err = PassageMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = slicenNXTESo3Q2pEqV2YwuGnVwΞΞ.Skip(bs[n:])
	n += n1
	return
}

var StoreManifestMUS = storeManifestMUS{}

type storeManifestMUS struct{}

func (s storeManifestMUS) Marshal(v StoreManifest, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Fingerprint, bs)
	n += varint.Int.Marshal(v.Dimensions, bs[n:])
	n += varint.Int.Marshal(v.Passages, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.BuiltAt, bs[n:])
}

func (s storeManifestMUS) Unmarshal(bs []byte) (v StoreManifest, n int, err error) {
	v.Fingerprint, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Dimensions, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Passages, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.BuiltAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s storeManifestMUS) Size(v StoreManifest) (size int) {
	size = IDMUS.Size(v.Fingerprint)
	size += varint.Int.Size(v.Dimensions)
	size += varint.Int.Size(v.Passages)
	return size + raw.TimeUnixMicro.Size(v.BuiltAt)
}

func (s storeManifestMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}
