package xplan

import (
	"fmt"
	"sort"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"go4.org/netipx"

	"github.com/omeyang/ipkit/pkg/ip/xaddr"
	"github.com/omeyang/ipkit/pkg/ip/xmask"
	"github.com/omeyang/ipkit/pkg/ip/xsubnet"
)

// Format 定义计划文档格式。
type Format string

// 支持的计划文档格式。
const (
	// FormatYAML YAML 格式。
	FormatYAML Format = "yaml"

	// FormatJSON JSON 格式。
	FormatJSON Format = "json"
)

// networkSpec 是文档里一条网络定义的原始形态。
// cidr 与 hosts 用指针区分「未给出」与合法的 0。
type networkSpec struct {
	Address string  `koanf:"address"`
	CIDR    *int    `koanf:"cidr"`
	Mask    string  `koanf:"mask"`
	Hosts   *uint64 `koanf:"hosts"`
}

// planDoc 是计划文档的整体结构。
type planDoc struct {
	Networks map[string]networkSpec `koanf:"networks"`
	Options  struct {
		ForbidOverlap bool `koanf:"forbid-overlap"`
	} `koanf:"options"`
}

// Plan 是一份已校验的子网规划：一组命名网络及其合并地址集。
// Load 之后不可变，可并发读取。
type Plan struct {
	names    []string // 按字典序排序
	networks map[string]*xsubnet.Subnet
	set      *netipx.IPSet
}

// Load 从原始字节加载并校验计划文档。
// 本包不做文件 I/O，调用方负责读取文件并传入字节。
func Load(data []byte, f Format) (*Plan, error) {
	parser, err := parserFor(f)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadPlan, err)
	}

	var doc planDoc
	if err := k.UnmarshalWithConf("", &doc, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadPlan, err)
	}
	return build(doc)
}

// parserFor 把格式映射到 koanf 解析器。
func parserFor(f Format) (koanf.Parser, error) {
	switch f {
	case FormatYAML:
		return yaml.Parser(), nil
	case FormatJSON:
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// build 把原始文档转换为已校验的 Plan。
// 网络按名字典序处理，同一份文档的报错顺序稳定。
func build(doc planDoc) (*Plan, error) {
	if len(doc.Networks) == 0 {
		return nil, fmt.Errorf("%w: plan defines no networks", ErrBadPlan)
	}

	names := make([]string, 0, len(doc.Networks))
	for name := range doc.Networks {
		names = append(names, name)
	}
	sort.Strings(names)

	networks := make(map[string]*xsubnet.Subnet, len(names))
	for _, name := range names {
		sn, err := buildNetwork(name, doc.Networks[name])
		if err != nil {
			return nil, err
		}
		networks[name] = sn
	}

	if doc.Options.ForbidOverlap {
		if err := checkOverlap(names, networks); err != nil {
			return nil, err
		}
	}

	all := make([]*xsubnet.Subnet, 0, len(names))
	for _, name := range names {
		all = append(all, networks[name])
	}
	set, err := xsubnet.SubnetsToIPSet(all)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadPlan, err)
	}

	return &Plan{names: names, networks: networks, set: set}, nil
}

// buildNetwork 校验并构造一条网络定义。
func buildNetwork(name string, spec networkSpec) (*xsubnet.Subnet, error) {
	given := 0
	if spec.CIDR != nil {
		given++
	}
	if spec.Mask != "" {
		given++
	}
	if spec.Hosts != nil {
		given++
	}
	if given != 1 {
		return nil, fmt.Errorf("%w: network %q sets %d of cidr/mask/hosts, want exactly 1",
			ErrAmbiguousMask, name, given)
	}

	addr, err := xaddr.Parse(spec.Address)
	if err != nil {
		return nil, fmt.Errorf("%w: network %q: %w", ErrBadPlan, name, err)
	}

	var mask xmask.Mask
	switch {
	case spec.CIDR != nil:
		mask, err = xmask.FromCIDR(addr.Version(), *spec.CIDR)
	case spec.Mask != "":
		mask, err = xmask.Parse(spec.Mask)
	default:
		mask, err = xmask.FromHosts(addr.Version(), *spec.Hosts)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: network %q: %w", ErrBadPlan, name, err)
	}

	sn, err := xsubnet.New(addr, mask)
	if err != nil {
		return nil, fmt.Errorf("%w: network %q: %w", ErrBadPlan, name, err)
	}
	return sn, nil
}

// checkOverlap 对网络做两两前缀重叠检测（跨版本前缀不会重叠）。
func checkOverlap(names []string, networks map[string]*xsubnet.Subnet) error {
	for i, a := range names {
		pa, _ := networks[a].Prefix()
		for _, b := range names[i+1:] {
			pb, _ := networks[b].Prefix()
			if pa.Overlaps(pb) {
				return fmt.Errorf("%w: %q and %q", ErrOverlap, a, b)
			}
		}
	}
	return nil
}
