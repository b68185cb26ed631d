package identity_test

import (
	"testing"

	"github.com/vkleen/zorn/pkg/identity"
)

// FuzzParse guards Property 12: the identity decoder must terminate
// without panicking for every byte sequence, including non-UTF-8,
// oversized, and adversarial inputs, always returning either a parsed
// Identity or one of the documented error kinds.
func FuzzParse(f *testing.F) {
	f.Add(testVectorIdentity)
	f.Add("")
	f.Add("zornv1-")
	f.Add("ZORNV1-1GJFS6R7X5FMYDHGRZ9CNWRDKDNNVT3W7ZHWYA6DWVRP528QJMD3S04FC4W")
	f.Add("other1-qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqq")
	f.Add(string([]byte{0xff, 0xfe, 0x00, 0x01}))

	f.Fuzz(func(t *testing.T, s string) {
		id, err := identity.Parse(s)
		if err != nil {
			if id != nil {
				t.Errorf("Parse(%q) returned both a non-nil Identity and an error", s)
			}
			return
		}
		if id == nil {
			t.Errorf("Parse(%q) returned nil Identity with no error", s)
		}
	})
}
