package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// TestPayloadKey returns the cache key for a test's learner-facing payload.
func (r *CacheKeyStruct) TestPayloadKey(slug string) string {
	return fmt.Sprintf("test:%s:payload", slug)
}

var CacheKey = NewCacheKeyStruct()
