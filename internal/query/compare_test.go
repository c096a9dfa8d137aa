package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want Ordering
	}{
		{"webgpu:a,*", "webgpu:b,*", Unordered},
		{"webgpu:a,*", "other:a,*", Unordered},
		{"webgpu:*", "webgpu:*", Equal},
		{"webgpu:*", "webgpu:a,*", StrictSuperset},
		{"webgpu:a,*", "webgpu:a:*", StrictSuperset},
		{"webgpu:a,*", "webgpu:a,b:*", StrictSuperset},
		{"webgpu:a:*", "webgpu:a,b:*", Unordered},
		{"webgpu:a:*", "webgpu:a:*", Equal},
		{"webgpu:a:*", "webgpu:a:t,*", StrictSuperset},
		{"webgpu:a:t,*", "webgpu:a:t:*", StrictSuperset},
		{"webgpu:a:t:*", "webgpu:a:t,u:*", Unordered},
		{"webgpu:a:t,*", "webgpu:a:t,u:*", StrictSuperset},
		{"webgpu:a:t:*", "webgpu:a:t:", StrictSuperset},
		{"webgpu:a,b:c:k=1;*", "webgpu:a,b:c:k=1", StrictSuperset},
		{"webgpu:a,b:c:k=1", "webgpu:a,b:c:k=1;*", StrictSubset},
		{"webgpu:a,b:c:k=1", "webgpu:a,b:c:k=1", Equal},
		{"webgpu:a,b:c:k=1", "webgpu:a,b:c:k=2", Unordered},
		{"webgpu:a,b:c:k=1", "webgpu:a,b:c:k=1;j=2", Unordered},
		{"webgpu:a,b:c:k=1;*", "webgpu:a,b:c:k=1;j=2", StrictSuperset},
		{"webgpu:a,b:c:k=1;*", "webgpu:a,b:c:j=2;k=1", Unordered},
		{"webgpu:a,b:c:k=1;*", "webgpu:a,b:c:k=2;*", Unordered},
		{"webgpu:a,b:c:k=[1,2]", "webgpu:a,b:c:k=[1,2]", Equal},
		{"webgpu:a,b:c:", "webgpu:a,b:c:k=1", Unordered},
		{"webgpu:a,b:c:", "webgpu:a,b:c:*", StrictSubset},
		{"webgpu:a:*", "webgpu:a:t:k=1", StrictSuperset},
		{"webgpu:a,b,*", "webgpu:a:*", Unordered},
	}

	for _, tt := range tests {
		t.Run(tt.a+" vs "+tt.b, func(t *testing.T) {
			a, b := MustParse(tt.a), MustParse(tt.b)
			assert.Equal(t, tt.want, Compare(a, b), "%s", Compare(a, b))
			assert.Equal(t, tt.want.Inverse(), Compare(b, a), "inverse")
		})
	}
}

func TestCompare_InverseOverAllPairs(t *testing.T) {
	queries := []string{
		"s:*", "s:a,*", "s:a,b,*", "s:b,*",
		"s:a:*", "s:a,b:*", "s:a:t,*", "s:a:t:*", "s:a:t,u:*", "s:a:t,u,*",
		"s:a:t:", "s:a:t:x=1;*", "s:a:t:x=1", "s:a:t:x=1;y=2", "s:a:t:x=1;y=2;*",
		"s:a:t:y=2;x=1", "s:a:t:x=2", "t:a:*",
	}

	for _, as := range queries {
		for _, bs := range queries {
			a, b := MustParse(as), MustParse(bs)
			ab, ba := Compare(a, b), Compare(b, a)
			assert.Equal(t, ab.Inverse(), ba, "%s vs %s", as, bs)

			if as == bs {
				assert.Equal(t, Equal, ab, as)
			}
		}
	}
}

func TestCompare_Transitive(t *testing.T) {
	chain := []string{"s:*", "s:a,*", "s:a,b:*", "s:a,b:t,*", "s:a,b:t:*", "s:a,b:t:x=1;*", "s:a,b:t:x=1"}

	for i := range chain {
		for j := i + 1; j < len(chain); j++ {
			assert.Equal(t, StrictSuperset, Compare(MustParse(chain[i]), MustParse(chain[j])), "%s vs %s", chain[i], chain[j])
		}
	}
}

func TestSubsetOf(t *testing.T) {
	assert.Equal(t, SubsetEqual, SubsetOf(MustParse("s:a:*"), MustParse("s:a:*")))
	assert.Equal(t, SubsetStrict, SubsetOf(MustParse("s:a:t:"), MustParse("s:a:*")))
	assert.Equal(t, SubsetNo, SubsetOf(MustParse("s:a:*"), MustParse("s:a:t:")))
	assert.Equal(t, SubsetNo, SubsetOf(MustParse("s:a:*"), MustParse("s:b:*")))

	assert.True(t, Contains(MustParse("s:*"), MustParse("s:a:t:x=1")))
	assert.False(t, Contains(MustParse("s:a:t:x=1"), MustParse("s:*")))
}

func TestOrdering_String(t *testing.T) {
	assert.Equal(t, "unordered", Unordered.String())
	assert.Equal(t, "superset", StrictSuperset.String())
	assert.Equal(t, "equal", Equal.String())
	assert.Equal(t, "subset", StrictSubset.String())
}
