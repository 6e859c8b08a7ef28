// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

package article

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

/*
TestEscapeLike verifies user queries match literally in the SQL search: the
pattern metacharacters must not turn a query like "%" into match-everything.
*/
func TestEscapeLike(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"plain", "golang", "golang"},
		{"percent", "100%", `100\%`},
		{"bare_percent", "%", `\%`},
		{"underscore", "snake_case", `snake\_case`},
		{"backslash", `C:\temp`, `C:\\temp`},
		{"mixed", `%_\`, `\%\_\\`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeLike(tt.query))
		})
	}
}
