// Package entity contains the core business objects of the storefront domain.
package entity

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	tempEmailDomain     = "@temp.local"
	tempEmailPrefix     = "chatbot_"
	archivedEmailPrefix = "archived_"
)

// Customer represents a storefront customer. Chatbot conversations may create
// phone-only customers with a placeholder email until a real one is learned.
type Customer struct {
	ID                  uuid.UUID      `json:"id"`
	Email               string         `json:"email"`
	Phone               string         `json:"phone"`
	Name                string         `json:"name"`
	Allergies           []string       `json:"allergies"`
	DietaryRestrictions []string       `json:"dietary_restrictions"`
	Preferences         map[string]any `json:"preferences"`
	AuthUserID          *uuid.UUID     `json:"auth_user_id,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

// HasAuth reports whether the customer is linked to an external auth identity.
func (c *Customer) HasAuth() bool {
	return c.AuthUserID != nil && *c.AuthUserID != uuid.Nil
}

// IsTempEmail reports whether the email is a generated placeholder for a
// phone-only account.
func (c *Customer) IsTempEmail() bool {
	return strings.HasSuffix(c.Email, tempEmailDomain)
}

// IsArchivedEmail reports whether the email was renamed by an account merge.
func (c *Customer) IsArchivedEmail() bool {
	return strings.HasPrefix(c.Email, archivedEmailPrefix)
}

// ArchivedEmail returns the placeholder email used to archive this record
// after a merge. The original email stays embedded so the merge can be
// inspected or rolled back by hand.
func (c *Customer) ArchivedEmail() string {
	return fmt.Sprintf("%s%s_%s", archivedEmailPrefix, c.ID, c.Email)
}

// NewTempEmail generates a placeholder email for phone-only accounts.
func NewTempEmail(now time.Time) string {
	return fmt.Sprintf("%s%d%s", tempEmailPrefix, now.UnixMilli(), tempEmailDomain)
}

// MergeStringSets returns the union of two string sets, case-preserving but
// deduplicated case-insensitively, sorted for order-independence.
func MergeStringSets(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	merged := make([]string, 0, len(a)+len(b))

	for _, list := range [][]string{a, b} {
		for _, item := range list {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}
			key := strings.ToLower(item)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, item)
		}
	}

	sort.Strings(merged)

	return merged
}

// NamesCompatible reports whether two customer names can belong to the same
// person. Blank names never conflict; non-blank names must match
// case-insensitively.
func NamesCompatible(a, b string) bool {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == "" || b == "" {
		return true
	}

	return strings.EqualFold(a, b)
}
