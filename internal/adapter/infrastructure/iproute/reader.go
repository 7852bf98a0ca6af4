// Package iproute provides an AddressReader adapter backed by the JSON output of ip(8).
package iproute

import (
	"context"
	"encoding/json"
	"fmt"
	"net/netip"

	"golang-netswitch/internal/port"
	"golang-netswitch/internal/types"
)

// ReaderAdapter is an adapter that implements the AddressReader port with `ip -4 -j addr show`.
type ReaderAdapter struct {
	exec port.CommandExecutor
}

// Ensure ReaderAdapter implements the AddressReader port
var _ port.AddressReader = (*ReaderAdapter)(nil)

// NewReaderAdapter creates a new ip(8) reader on top of the given executor.
func NewReaderAdapter(exec port.CommandExecutor) *ReaderAdapter {
	return &ReaderAdapter{exec: exec}
}

type linkRecord struct {
	IfName   string       `json:"ifname"`
	AddrInfo []addrRecord `json:"addr_info"`
}

type addrRecord struct {
	Family    string  `json:"family"`
	Local     *string `json:"local"`
	PrefixLen *int    `json:"prefixlen"`
}

// ReadIPv4 returns the IPv4 addresses of the first record reported for interfaceName.
func (r *ReaderAdapter) ReadIPv4(ctx context.Context, interfaceName string) (types.InterfaceState, error) {
	state := types.InterfaceState{Name: interfaceName}

	out, err := r.exec.Output(ctx, "ip", "-4", "-j", "addr", "show", "dev", interfaceName)
	if err != nil {
		return state, fmt.Errorf("%w: %w", types.ErrQueryFailed, err)
	}
	if out == "" {
		return state, fmt.Errorf("%w: empty output for %s", types.ErrQueryFailed, interfaceName)
	}

	addrs, err := ParseAddrShow([]byte(out))
	if err != nil {
		return state, err
	}
	state.Addresses = addrs
	return state, nil
}

// ParseAddrShow parses `ip -j addr show` output. Only the first address entry of the first
// record is read; later entries are not inspected.
func ParseAddrShow(data []byte) ([]netip.Prefix, error) {
	var records []linkRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrParseFailed, err)
	}
	if len(records) == 0 || len(records[0].AddrInfo) == 0 {
		return nil, nil
	}

	info := records[0].AddrInfo[0]
	if info.Local == nil || info.PrefixLen == nil {
		return nil, fmt.Errorf("%w: address entry without local or prefixlen", types.ErrParseFailed)
	}
	ip, err := netip.ParseAddr(*info.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrParseFailed, err)
	}
	prefix := netip.PrefixFrom(ip, *info.PrefixLen)
	if !prefix.IsValid() {
		return nil, fmt.Errorf("%w: invalid prefix length %d", types.ErrParseFailed, *info.PrefixLen)
	}
	return []netip.Prefix{prefix}, nil
}
