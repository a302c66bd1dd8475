// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package linkcheck

import "strings"

// DomainPolicy decides whether a host may be fetched at all, independent of
// whether its URL is well formed.
type DomainPolicy interface {
	Allowed(host string) bool
}

type allowAll struct{}

func (allowAll) Allowed(string) bool { return true }

// AllowAll is the policy used when no allow-list is configured.
var AllowAll DomainPolicy = allowAll{}

type allowList map[string]struct{}

// NewAllowList returns a policy that accepts only the given hostnames
// (exact, case-insensitive match, port ignored). With no domains it falls
// back to [AllowAll].
func NewAllowList(domains ...string) DomainPolicy {
	list := make(allowList, len(domains))
	for _, d := range domains {
		d = strings.ToLower(strings.TrimSpace(d))
		if d != "" {
			list[d] = struct{}{}
		}
	}
	if len(list) == 0 {
		return AllowAll
	}
	return list
}

func (a allowList) Allowed(host string) bool {
	host = strings.ToLower(host)
	if h, _, found := strings.Cut(host, ":"); found && !strings.HasPrefix(host, "[") {
		host = h
	}
	_, ok := a[host]
	return ok
}
