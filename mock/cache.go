package mock

import (
	cdpagent "github.com/pswitchy/CDP-Support-Chatbot"
)

var _ cdpagent.DocumentCache = (*DocumentCache)(nil)

// DocumentCache is a mock implementation of cdpagent.DocumentCache.
type DocumentCache struct {
	GetFn func(url string) (string, bool)
	SetFn func(url, text string)
}

func (c *DocumentCache) Get(url string) (string, bool) {
	return c.GetFn(url)
}

func (c *DocumentCache) Set(url, text string) {
	c.SetFn(url, text)
}
