package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCustomer_IsTempEmail(t *testing.T) {
	temp := &Customer{Email: "chatbot_1700000000000@temp.local"}
	assert.True(t, temp.IsTempEmail())

	real := &Customer{Email: "alice@example.com"}
	assert.False(t, real.IsTempEmail())
}

func TestNewTempEmail(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	email := NewTempEmail(now)

	assert.Equal(t, "chatbot_1700000000000@temp.local", email)
	assert.True(t, (&Customer{Email: email}).IsTempEmail())
}

func TestCustomer_ArchivedEmail(t *testing.T) {
	customer := &Customer{ID: uuid.New(), Email: "alice@example.com"}
	archived := customer.ArchivedEmail()

	assert.True(t, strings.HasPrefix(archived, "archived_"+customer.ID.String()))
	assert.True(t, strings.HasSuffix(archived, "alice@example.com"))
	assert.True(t, (&Customer{Email: archived}).IsArchivedEmail())
}

func TestCustomer_HasAuth(t *testing.T) {
	assert.False(t, (&Customer{}).HasAuth())

	nilID := uuid.Nil
	assert.False(t, (&Customer{AuthUserID: &nilID}).HasAuth())

	authID := uuid.New()
	assert.True(t, (&Customer{AuthUserID: &authID}).HasAuth())
}

func TestMergeStringSets(t *testing.T) {
	tests := []struct {
		name   string
		a      []string
		b      []string
		expect []string
	}{
		{name: "both nil", a: nil, b: nil, expect: []string{}},
		{name: "case-insensitive dedupe", a: []string{"Peanuts"}, b: []string{"peanuts", "Shellfish"}, expect: []string{"Peanuts", "Shellfish"}},
		{name: "blank entries dropped", a: []string{" ", "Dairy"}, b: []string{""}, expect: []string{"Dairy"}},
		{name: "sorted output", a: []string{"walnuts", "Almonds"}, b: nil, expect: []string{"Almonds", "walnuts"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, MergeStringSets(tt.a, tt.b))
		})
	}
}

func TestNamesCompatible(t *testing.T) {
	assert.True(t, NamesCompatible("Alice", "alice"))
	assert.True(t, NamesCompatible("", "Alice"))
	assert.True(t, NamesCompatible("  ", "Alice"))
	assert.False(t, NamesCompatible("Alice", "Bob"))
}
