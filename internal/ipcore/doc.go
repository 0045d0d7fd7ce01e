// Package ipcore 提供 IP 地址的版本描述符与固定宽度字数组位运算内核。
//
// 地址统一表示为大端序的 [Words]（[8]uint16）：IPv4 占用前 4 个字，
// 每字一个八位段（0..255）；IPv6 占用全部 8 个字，每字一个 16 位组。
// 未使用的字必须为零。所有运算按 [Desc] 描述符定义的字数与字宽进行，
// 各字是独立的固定宽度 lane，取反不跨字进位。
//
// 本包是 pkg/ip 下各包的共享内核，不做任何输入校验之外的策略判断；
// 语义校验（取值范围、掩码连续性等）由上层包负责。
package ipcore
