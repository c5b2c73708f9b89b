// Copyright (c) 2020 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/gobuffalo/envy"

	"github.com/devblok/argon/core"
)

func TestValidationFromEnv(t *testing.T) {
	c := qt.New(t)

	for _, tc := range []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"0", false},
		{"yes", false},
		{"TRUE", false},
		{"", false},
	} {
		envy.Temp(func() {
			envy.Set(core.ValidationEnvKey, tc.value)
			c.Assert(core.ValidationFromEnv(), qt.Equals, tc.want,
				qt.Commentf("%s=%q", core.ValidationEnvKey, tc.value))
		})
	}
}

func TestValidationFromEnvUnset(t *testing.T) {
	c := qt.New(t)

	envy.Temp(func() {
		envy.Set(core.ValidationEnvKey, "")
		c.Assert(core.ValidationFromEnv(), qt.IsFalse)
	})
}
