// Package network provides netlink adapter implementations.
package network

import (
	"context"
	"fmt"
	"net/netip"

	"golang-netswitch/internal/port"
	"golang-netswitch/internal/types"

	"github.com/vishvananda/netlink"
)

// ManagerAdapter is an adapter that implements the NetworkManager port using vishvananda/netlink library.
type ManagerAdapter struct{}

// Ensure ManagerAdapter implements the NetworkManager port
var _ port.NetworkManager = (*ManagerAdapter)(nil)

// NewManagerAdapter creates a new network manager adapter.
func NewManagerAdapter() *ManagerAdapter {
	return &ManagerAdapter{}
}

// GetLinkByName returns a network link by interface name.
func (n *ManagerAdapter) GetLinkByName(interfaceName string) (netlink.Link, error) {
	link, err := netlink.LinkByName(interfaceName)
	if err != nil {
		return nil, fmt.Errorf("failed to get netlink interface %s: %w", interfaceName, err)
	}
	return link, nil
}

// ListAddresses returns IPv4 addresses configured on the link.
func (n *ManagerAdapter) ListAddresses(link netlink.Link) ([]netlink.Addr, error) {
	addrs, err := netlink.AddrList(link, netlink.FAMILY_V4)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	return addrs, nil
}

// ReaderAdapter is an adapter that implements the AddressReader port over a NetworkManager.
type ReaderAdapter struct {
	networkMgr port.NetworkManager
}

// Ensure ReaderAdapter implements the AddressReader port
var _ port.AddressReader = (*ReaderAdapter)(nil)

// NewReaderAdapter creates a netlink-backed address reader.
func NewReaderAdapter(networkMgr port.NetworkManager) *ReaderAdapter {
	return &ReaderAdapter{networkMgr: networkMgr}
}

// ReadIPv4 returns the IPv4 addresses netlink reports for interfaceName.
func (r *ReaderAdapter) ReadIPv4(ctx context.Context, interfaceName string) (types.InterfaceState, error) {
	state := types.InterfaceState{Name: interfaceName}

	link, err := r.networkMgr.GetLinkByName(interfaceName)
	if err != nil {
		return state, fmt.Errorf("%w: %w", types.ErrQueryFailed, err)
	}

	addrs, err := r.networkMgr.ListAddresses(link)
	if err != nil {
		return state, fmt.Errorf("%w: %w", types.ErrQueryFailed, err)
	}

	for _, addr := range addrs {
		if addr.IPNet == nil {
			return state, fmt.Errorf("%w: address without network", types.ErrParseFailed)
		}
		ip, ok := netip.AddrFromSlice(addr.IPNet.IP.To4())
		if !ok {
			return state, fmt.Errorf("%w: non IPv4 address %s", types.ErrParseFailed, addr.IPNet.IP)
		}
		ones, _ := addr.IPNet.Mask.Size()
		state.Addresses = append(state.Addresses, netip.PrefixFrom(ip, ones))
	}
	return state, nil
}

// InterfaceExists reports whether netlink knows interfaceName.
func InterfaceExists(networkMgr port.NetworkManager, interfaceName string) error {
	if _, err := networkMgr.GetLinkByName(interfaceName); err != nil {
		return err
	}
	return nil
}
