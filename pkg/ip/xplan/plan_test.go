package xplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/ipkit/pkg/ip/xaddr"
	"github.com/omeyang/ipkit/pkg/ip/xmask"
	"github.com/omeyang/ipkit/pkg/ip/xsubnet"
)

const samplePlanYAML = `
networks:
  office: { address: 192.168.1.0, cidr: 24 }
  lab:    { address: 10.4.0.0, mask: 255.255.0.0 }
  guests: { address: 172.16.4.0, hosts: 500 }
options:
  forbid-overlap: true
`

func TestLoadYAML(t *testing.T) {
	plan, err := Load([]byte(samplePlanYAML), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, []string{"guests", "lab", "office"}, plan.Networks())

	office, ok := plan.Get("office")
	require.True(t, ok)
	assert.Equal(t, "192.168.1.0/24", office.String())

	lab, ok := plan.Get("lab")
	require.True(t, ok)
	assert.Equal(t, "10.4.0.0/16", lab.String())

	// hosts: 500 → 最小能容纳的子网是 /23（510 台）
	guests, ok := plan.Get("guests")
	require.True(t, ok)
	assert.Equal(t, "172.16.4.0/23", guests.String())

	_, ok = plan.Get("absent")
	assert.False(t, ok)
}

func TestLoadJSON(t *testing.T) {
	data := []byte(`{
		"networks": {
			"backbone": {"address": "2001:db8::", "cidr": 48},
			"edge":     {"address": "192.0.2.0", "cidr": 25}
		}
	}`)
	plan, err := Load(data, FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, []string{"backbone", "edge"}, plan.Networks())

	backbone, ok := plan.Get("backbone")
	require.True(t, ok)
	assert.Equal(t, "2001:db8::/48", backbone.String())

	edge, ok := plan.Get("edge")
	require.True(t, ok)
	assert.Equal(t, "192.0.2.0/25", edge.String())
}

func TestLoadCIDRZero(t *testing.T) {
	// cidr: 0 是合法取值，不等于未给出
	data := []byte("networks:\n  all: { address: 0.0.0.0, cidr: 0 }\n")
	plan, err := Load(data, FormatYAML)
	require.NoError(t, err)

	all, ok := plan.Get("all")
	require.True(t, ok)
	assert.Equal(t, "0.0.0.0/0", all.String())
}

func TestLoadFormatErrors(t *testing.T) {
	_, err := Load([]byte(samplePlanYAML), Format("toml"))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Load([]byte("networks: [unclosed"), FormatYAML)
	assert.ErrorIs(t, err, ErrBadPlan)

	_, err = Load([]byte("{not json"), FormatJSON)
	assert.ErrorIs(t, err, ErrBadPlan)

	_, err = Load(nil, FormatYAML)
	assert.ErrorIs(t, err, ErrBadPlan)

	_, err = Load([]byte("options:\n  forbid-overlap: true\n"), FormatYAML)
	assert.ErrorIs(t, err, ErrBadPlan)
}

func TestLoadAmbiguousMask(t *testing.T) {
	// 一个都没给
	data := []byte("networks:\n  m0: { address: 10.0.0.0 }\n")
	_, err := Load(data, FormatYAML)
	assert.ErrorIs(t, err, ErrAmbiguousMask)
	assert.ErrorContains(t, err, `"m0"`)

	// 给了两个
	data = []byte("networks:\n  m2: { address: 10.0.0.0, cidr: 24, mask: 255.255.255.0 }\n")
	_, err = Load(data, FormatYAML)
	assert.ErrorIs(t, err, ErrAmbiguousMask)
	assert.ErrorContains(t, err, `"m2"`)

	// 三个全给
	data = []byte("networks:\n  m3: { address: 10.0.0.0, cidr: 24, mask: 255.255.255.0, hosts: 10 }\n")
	_, err = Load(data, FormatYAML)
	assert.ErrorIs(t, err, ErrAmbiguousMask)
}

func TestLoadBadNetwork(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		inner   error
	}{
		{
			name:  "bad address octet",
			doc:   "networks:\n  n: { address: 10.0.0.300, cidr: 24 }\n",
			inner: xaddr.ErrAddressItem,
		},
		{
			name:  "cidr out of range",
			doc:   "networks:\n  n: { address: 10.0.0.0, cidr: 33 }\n",
			inner: xmask.ErrInvalidCIDR,
		},
		{
			name:  "non-contiguous mask",
			doc:   "networks:\n  n: { address: 10.0.0.0, mask: 255.0.255.0 }\n",
			inner: xmask.ErrNonContiguous,
		},
		{
			name:  "mask version mismatch",
			doc:   "networks:\n  n: { address: 10.0.0.0, mask: \"ffff::\" }\n",
			inner: xsubnet.ErrVersionMismatch,
		},
		{
			name:  "hosts exceed V4 space",
			doc:   "networks:\n  n: { address: 10.0.0.0, hosts: 4294967295 }\n",
			inner: xmask.ErrHostCountRange,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.doc), FormatYAML)
			assert.ErrorIs(t, err, ErrBadPlan)
			// 内层错误保持可判定，且报错点带网络名
			assert.ErrorIs(t, err, tt.inner)
			assert.ErrorContains(t, err, `"n"`)
		})
	}
}

func TestLoadOverlap(t *testing.T) {
	overlapping := `
networks:
  all: { address: 10.0.0.0, cidr: 8 }
  pod: { address: 10.1.0.0, cidr: 16 }
`
	// 默认允许重叠
	plan, err := Load([]byte(overlapping), FormatYAML)
	require.NoError(t, err)
	assert.Len(t, plan.Networks(), 2)

	// forbid-overlap 下拒绝，错误点出两个网络名
	_, err = Load([]byte(overlapping+"options:\n  forbid-overlap: true\n"), FormatYAML)
	assert.ErrorIs(t, err, ErrOverlap)
	assert.ErrorContains(t, err, `"all"`)
	assert.ErrorContains(t, err, `"pod"`)
}

func TestLoadOverlapCrossVersion(t *testing.T) {
	// 不同版本的前缀不构成重叠
	data := []byte(`
networks:
  v4: { address: 10.0.0.0, cidr: 8 }
  v6: { address: "2001:db8::", cidr: 32 }
options:
  forbid-overlap: true
`)
	plan, err := Load(data, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, []string{"v4", "v6"}, plan.Networks())
}
