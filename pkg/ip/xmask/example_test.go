package xmask_test

import (
	"fmt"

	"github.com/omeyang/ipkit/pkg/ip/xaddr"
	"github.com/omeyang/ipkit/pkg/ip/xmask"
)

func ExampleParse() {
	m, err := xmask.Parse("255.255.255.0")
	if err != nil {
		panic(err)
	}
	fmt.Println(m.CIDR())
	fmt.Println(m.Hosts())
	fmt.Println(m.Wildcard())
	// Output:
	// 24
	// 254
	// 0.0.0.255
}

func ExampleFromHosts() {
	// 300 台主机装不进 /24（254 可用），取最小能装下的 /23
	m, err := xmask.FromHosts(xaddr.V4, 300)
	if err != nil {
		panic(err)
	}
	fmt.Println(m)
	fmt.Println(m.CIDR())
	// Output:
	// 255.255.254.0
	// 23
}

func ExampleFromAddr() {
	_, err := xmask.FromAddr(xaddr.MustParse("255.0.255.0"))
	fmt.Println(err)
	// Output:
	// xmask: non-contiguous mask: set bit after zero at word 2
}

func ExampleDefaultFor() {
	m, err := xmask.DefaultFor(xaddr.MustParse("192.168.1.25"))
	if err != nil {
		panic(err)
	}
	fmt.Println(m)
	// Output:
	// 255.255.255.0
}
