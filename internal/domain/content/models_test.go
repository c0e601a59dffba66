package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPubliclyVisible(t *testing.T) {
	for _, tc := range []struct {
		status string
		active bool
		want   bool
	}{
		{StatusPublished, true, true},
		{StatusPublished, false, false},
		{StatusDraft, true, false},
		{StatusDraft, false, false},
	} {
		p := Page{Status: tc.status, Active: tc.active}
		assert.Equal(t, tc.want, p.PubliclyVisible(), "status=%s active=%v", tc.status, tc.active)
	}
}
