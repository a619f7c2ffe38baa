// Package cache stores the scores of groups so that unchanged groups need not be scored again.
package cache

import (
	"bytes"
	"encoding/gob"
	"github.com/hscells/wsieval/eval"
	"github.com/hscells/wsieval/record"
	"github.com/peterbourgon/diskv"
	"github.com/pkg/errors"
	"hash/fnv"
	"strconv"
	"sync"
)

// ErrCacheMiss is returned when a group has not been cached.
var ErrCacheMiss = errors.New("cache miss error")

// BlockTransform determines how diskv should partition folders.
func BlockTransform(blockSize int) func(string) []string {
	return func(s string) []string {
		var (
			sliceSize = len(s) / blockSize
			pathSlice = make([]string, sliceSize)
		)
		for i := 0; i < sliceSize; i++ {
			from, to := i*blockSize, (i*blockSize)+blockSize
			pathSlice[i] = s[from:to]
		}
		return pathSlice
	}
}

// Key hashes everything that can influence the score of a group: the head, and the senses and cluster of every
// record in order.
func Key(g record.Group) string {
	h := fnv.New64a()
	h.Write([]byte(g.Head))
	for _, r := range g.Records {
		h.Write([]byte{0})
		for _, s := range r.Senses {
			h.Write([]byte(s))
			h.Write([]byte{'\t'})
		}
		h.Write([]byte{'\t'})
		h.Write([]byte(r.Cluster))
	}
	return strconv.FormatUint(h.Sum64(), 10)
}

// ResultToBytes encodes a group result to bytes.
func ResultToBytes(result eval.GroupResult) ([]byte, error) {
	var buff bytes.Buffer
	enc := gob.NewEncoder(&buff)
	err := enc.Encode(result)
	if err != nil {
		return nil, err
	}
	return buff.Bytes(), nil
}

// ResultCacher models a way to cache (either persistent or not) the result of scoring a group.
type ResultCacher interface {
	Get(g record.Group) (eval.GroupResult, error)
	Set(g record.Group, result eval.GroupResult) error
}

// ResultCache embeds a privately defined result cacher into a public struct.
type ResultCache struct {
	ResultCacher
}

type mapResultCache struct {
	sync.RWMutex
	m map[string]eval.GroupResult
}

func (m *mapResultCache) Get(g record.Group) (eval.GroupResult, error) {
	m.RLock()
	defer m.RUnlock()
	if r, ok := m.m[Key(g)]; ok {
		return r, nil
	}
	return eval.GroupResult{}, ErrCacheMiss
}

func (m *mapResultCache) Set(g record.Group, result eval.GroupResult) error {
	m.Lock()
	defer m.Unlock()
	m.m[Key(g)] = result
	return nil
}

// NewMapResultCache creates a result cache out of a regular go map.
func NewMapResultCache() ResultCache {
	return ResultCache{&mapResultCache{m: make(map[string]eval.GroupResult)}}
}

type diskvResultCache struct {
	*diskv.Diskv
}

func (d diskvResultCache) Get(g record.Group) (eval.GroupResult, error) {
	b, err := d.Read(Key(g))
	if err != nil {
		return eval.GroupResult{}, ErrCacheMiss
	}
	dec := gob.NewDecoder(bytes.NewReader(b))
	var r eval.GroupResult
	err = dec.Decode(&r)
	if err != nil {
		return eval.GroupResult{}, errors.Wrapf(err, "decode cached %s", g.Head)
	}
	return r, nil
}

func (d diskvResultCache) Set(g record.Group, result eval.GroupResult) error {
	b, err := ResultToBytes(result)
	if err != nil {
		return err
	}
	return d.Write(Key(g), b)
}

// NewDiskvResultCache creates a new on-disk cache with the specified diskv parameters.
func NewDiskvResultCache(dv *diskv.Diskv) ResultCache {
	return ResultCache{diskvResultCache{dv}}
}

// NewDirResultCache creates an on-disk, gzip compressed cache rooted at dir.
func NewDirResultCache(dir string) ResultCache {
	return NewDiskvResultCache(diskv.New(diskv.Options{
		BasePath:     dir,
		Transform:    BlockTransform(4),
		CacheSizeMax: 4096 * 1024,
		Compression:  diskv.NewGzipCompression(),
	}))
}
