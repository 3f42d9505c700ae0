package config

import (
	"net"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// These helpers are the only place facts are turned into text. Renderers
// must go through them so every document spells a fact the same way.

// HostPort renders the endpoint as "ip:port".
func (s Service) HostPort() string {
	return net.JoinHostPort(s.ExternalIP, strconv.Itoa(s.Port))
}

// URL renders the endpoint as an http URL.
func (s Service) URL() string {
	return "http://" + s.HostPort()
}

// Label returns the human name of the service stored under key.
func (s Service) Label(key string) string {
	if s.DisplayName != "" {
		return s.DisplayName
	}
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}

// JoinList renders an ordered list inline, keeping order and duplicates.
func JoinList(items []string) string {
	return strings.Join(items, ", ")
}

// Service looks up a service by key.
func (c *Config) Service(key string) (Service, bool) {
	s, ok := c.Services[key]
	return s, ok
}

// ServiceKeys returns the service keys in stable (sorted) order.
func (c *Config) ServiceKeys() []string {
	keys := make([]string, 0, len(c.Services))
	for k := range c.Services {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
