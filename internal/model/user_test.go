package model

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

// MySQL's default utf8mb4 collations compare case-insensitively, which would
// make foo@x.com and Foo@x.com the same account. The email column pins a
// binary collation so the unique index and lookups match bytes as stored.
func TestUserEmailColumnUsesBinaryCollation(t *testing.T) {
	field, ok := reflect.TypeOf(User{}).FieldByName("Email")
	assert.True(t, ok)

	tag := field.Tag.Get("gorm")
	assert.Contains(t, tag, "collate utf8mb4_bin")
	assert.Contains(t, tag, "uniqueIndex")
	assert.Contains(t, tag, "not null")
}
